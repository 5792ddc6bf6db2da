package domain

import (
	"time"
)

// Tipos de tarefa de conteúdo
const (
	TaskTypePost        = "post"
	TaskTypeAd          = "ad"
	TaskTypeReel        = "reel"
	TaskTypeProduct     = "product"
	TaskTypeLandingPage = "landing_page"
	TaskTypeOther       = "other"
)

// Status de uma tarefa de conteúdo. As transições são sempre explícitas,
// acionadas pelo usuário: in-progress -> delivered, in-progress -> delayed
// e retorno para in-progress. Não existe transição automática.
const (
	TaskStatusInProgress = "in-progress"
	TaskStatusDelivered  = "delivered"
	TaskStatusDelayed    = "delayed"
)

type ContentTask struct {
	ID           string    `json:"id"`
	EmployeeID   int       `json:"employee_id" validate:"required"`
	EmployeeName string    `json:"employee_name,omitempty"`
	BrandID      string    `json:"brand_id" validate:"required"`
	BrandName    string    `json:"brand_name,omitempty"`
	TaskType     string    `json:"task_type"`
	Deadline     time.Time `json:"deadline"`
	Status       string    `json:"status"`
	DeliveryLink string    `json:"delivery_link,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidTaskTransition informa se a mudança de status é permitida
func ValidTaskTransition(from, to string) bool {
	switch from {
	case TaskStatusInProgress:
		return to == TaskStatusDelivered || to == TaskStatusDelayed
	case TaskStatusDelivered, TaskStatusDelayed:
		return to == TaskStatusInProgress
	}
	return false
}

type UpdateContentTaskRequest struct {
	ID           string     `json:"id"`
	EmployeeID   *int       `json:"employee_id"`
	BrandID      *string    `json:"brand_id"`
	TaskType     *string    `json:"task_type"`
	Deadline     *time.Time `json:"deadline"`
	Status       *string    `json:"status"`
	DeliveryLink *string    `json:"delivery_link"`
	Notes        *string    `json:"notes"`
}

// ContentTaskFilters é o FilterSpec da listagem de tarefas de conteúdo
type ContentTaskFilters struct {
	Search     string
	TaskType   string
	Status     string
	BrandID    string
	EmployeeID string
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortDir    string
}
