package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tipos de contratação de um funcionário
const (
	EmploymentFullTime  = "full-time"
	EmploymentPartTime  = "part-time"
	EmploymentFreelance = "freelancer"
	EmploymentPerTask   = "per-task"
)

// Tipos de configuração de comissão de um funcionário
const (
	CommissionTypePercentage = "percentage"
	CommissionTypeFixed      = "fixed"
)

// CommissionConfig é a configuração de comissão vinculada ao funcionário.
// O valor nunca é negativo; ausência normaliza para percentage/0.
type CommissionConfig struct {
	Type  string  `json:"type"`
	Value float64 `json:"value" validate:"gte=0"`
}

type Employee struct {
	ID             int              `json:"id"`
	Name           string           `json:"name" validate:"required"`
	Lastname       string           `json:"lastname"`
	Email          string           `json:"email" validate:"required,email"`
	Department     string           `json:"department"`
	JobTitle       string           `json:"job_title"`
	EmploymentType string           `json:"employment_type"`
	Status         string           `json:"status"`
	Commission     CommissionConfig `json:"commission"`
	PasswordHash   string           `json:"password,omitempty"`
	Active         bool             `json:"active"`
	RoleID         int              `json:"role_id"`
	Deleted        bool             `json:"deleted"`
	DeletedAt      *time.Time       `json:"deleted_at"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// FullName retorna o nome completo para exibição e exportação
func (e *Employee) FullName() string {
	if e.Lastname == "" {
		return e.Name
	}
	return e.Name + " " + e.Lastname
}

type UpdateEmployeeRequest struct {
	ID             int               `json:"id"`
	Name           *string           `json:"name"`
	Lastname       *string           `json:"lastname"`
	Email          *string           `json:"email"`
	Department     *string           `json:"department"`
	JobTitle       *string           `json:"job_title"`
	EmploymentType *string           `json:"employment_type"`
	Status         *string           `json:"status"`
	Commission     *CommissionConfig `json:"commission"`
	Active         *bool             `json:"active"`
	RoleID         *int              `json:"role_id"`
	Deleted        *bool             `json:"deleted"`
}

// EmployeeFilters é o FilterSpec da listagem de funcionários
type EmployeeFilters struct {
	Search         string
	Department     string
	EmploymentType string
	Status         string
	SortBy         string
	SortDir        string
}

// Claims carrega os dados da sessão do funcionário autenticado
type Claims struct {
	EmployeeID       int
	EmployeeName     string
	EmployeeLastname string
	EmployeeEmail    string
	EmployeeActive   bool
	EmployeeRoleID   int
	jwt.RegisteredClaims
}
