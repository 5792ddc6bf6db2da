package domain

import (
	"time"
)

// Gatilhos de apuração de comissão
const (
	CommissionOnConfirmation = "confirmation"
	CommissionOnDelivery     = "delivery"
)

// Commission representa a comissão apurada de um funcionário em um período.
// TotalCommission é derivado e recalculado a cada escrita.
type Commission struct {
	ID              string    `json:"id"`
	EmployeeID      int       `json:"employee_id" validate:"required"`
	EmployeeName    string    `json:"employee_name,omitempty"`
	CommissionType  string    `json:"commission_type"`
	ValueType       string    `json:"value_type"`
	ValueAmount     float64   `json:"value_amount" validate:"gte=0"`
	OrdersCount     int       `json:"orders_count" validate:"gte=0"`
	TotalCommission float64   `json:"total_commission"`
	DueDate         time.Time `json:"due_date"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// RecomputeDerived recalcula o total da comissão a partir dos campos
// independentes. Sempre sobrescreve: o total nunca fica defasado em relação
// aos insumos.
func (c *Commission) RecomputeDerived() {
	c.TotalCommission = TotalCommission(c.ValueType, c.ValueAmount, c.OrdersCount)
}

type UpdateCommissionRequest struct {
	ID             string     `json:"id"`
	EmployeeID     *int       `json:"employee_id"`
	CommissionType *string    `json:"commission_type"`
	ValueType      *string    `json:"value_type"`
	ValueAmount    *float64   `json:"value_amount"`
	OrdersCount    *int       `json:"orders_count"`
	DueDate        *time.Time `json:"due_date"`
}

// CommissionFilters é o FilterSpec da listagem de comissões
type CommissionFilters struct {
	Search         string
	CommissionType string
	ValueType      string
	EmployeeID     string
	StartDate      *time.Time
	EndDate        *time.Time
	SortBy         string
	SortDir        string
}
