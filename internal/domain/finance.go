package domain

import (
	"time"
)

// FinanceSummary agrega receitas e despesas de um período, com as métricas
// derivadas de lucro já arredondadas para exibição.
type FinanceSummary struct {
	StartDate          string             `json:"start_date"`
	EndDate            string             `json:"end_date"`
	BrandID            string             `json:"brand_id,omitempty"`
	TotalRevenue       float64            `json:"total_revenue"`
	TotalExpenses      float64            `json:"total_expenses"`
	Profit             float64            `json:"profit"`
	ProfitMargin       float64            `json:"profit_margin"`
	ExpensesByCategory map[string]float64 `json:"expenses_by_category"`
	RevenueByBrand     map[string]float64 `json:"revenue_by_brand"`
}

// FinanceSnapshot é o fechamento mensal por marca gravado pelo agendador e
// servido pelo relatório. Month usa o formato MM-YYYY.
type FinanceSnapshot struct {
	ID            int64     `json:"id"`
	BrandID       string    `json:"brand_id"`
	BrandName     string    `json:"brand_name"`
	Month         string    `json:"month"`
	TotalRevenue  float64   `json:"total_revenue"`
	TotalExpenses float64   `json:"total_expenses"`
	Profit        float64   `json:"profit"`
	ProfitMargin  float64   `json:"profit_margin"`
	GeneratedAt   time.Time `json:"generated_at"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AvailablePeriods lista os meses com fechamento disponível
type AvailablePeriods struct {
	Periods []string `json:"periods"`
}
