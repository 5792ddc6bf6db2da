package domain

import (
	"time"
)

// Revenue representa a receita de uma marca em uma data. TotalRevenue é
// derivado (units_sold * unit_price) e recalculado a cada escrita.
type Revenue struct {
	ID           string    `json:"id"`
	BrandID      string    `json:"brand_id" validate:"required"`
	BrandName    string    `json:"brand_name,omitempty"`
	Date         time.Time `json:"date"`
	UnitsSold    int       `json:"units_sold" validate:"gte=0"`
	UnitPrice    float64   `json:"unit_price" validate:"gte=0"`
	TotalRevenue float64   `json:"total_revenue"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RecomputeDerived recalcula o total a partir dos insumos atuais
func (r *Revenue) RecomputeDerived() {
	r.TotalRevenue = TotalRevenue(r.UnitsSold, r.UnitPrice)
}

type UpdateRevenueRequest struct {
	ID        string     `json:"id"`
	BrandID   *string    `json:"brand_id"`
	Date      *time.Time `json:"date"`
	UnitsSold *int       `json:"units_sold"`
	UnitPrice *float64   `json:"unit_price"`
	Notes     *string    `json:"notes"`
}

// RevenueFilters é o FilterSpec da listagem de receitas
type RevenueFilters struct {
	Search    string
	BrandID   string
	StartDate *time.Time
	EndDate   *time.Time
	SortBy    string
	SortDir   string
}
