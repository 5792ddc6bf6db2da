package domain

import (
	"time"
)

// Categorias de despesa
const (
	ExpenseAds      = "ads"
	ExpenseSalaries = "salaries"
	ExpenseRent     = "rent"
	ExpenseSupplies = "supplies"
	ExpenseOther    = "other"
)

type Expense struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount" validate:"gte=0"`
	Date        time.Time `json:"date"`
	BrandID     string    `json:"brand_id,omitempty"`
	BrandName   string    `json:"brand_name,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type UpdateExpenseRequest struct {
	ID          string     `json:"id"`
	Category    *string    `json:"category"`
	Amount      *float64   `json:"amount"`
	Date        *time.Time `json:"date"`
	BrandID     *string    `json:"brand_id"`
	Description *string    `json:"description"`
}

// ExpenseFilters é o FilterSpec da listagem de despesas
type ExpenseFilters struct {
	Search    string
	Category  string
	BrandID   string
	StartDate *time.Time
	EndDate   *time.Time
	SortBy    string
	SortDir   string
}
