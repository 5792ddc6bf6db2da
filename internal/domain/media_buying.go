package domain

import (
	"time"
)

// Plataformas de mídia suportadas
const (
	PlatformFacebook  = "facebook"
	PlatformInstagram = "instagram"
	PlatformTikTok    = "tiktok"
	PlatformSnapchat  = "snapchat"
	PlatformGoogle    = "google"
	PlatformOther     = "other"
)

// MediaBuyingRecord representa um registro diário de compra de mídia de uma
// marca em uma plataforma. OrderCost e ROAS são campos derivados.
type MediaBuyingRecord struct {
	ID           string    `json:"id"`
	Platform     string    `json:"platform"`
	Date         time.Time `json:"date"`
	BrandID      string    `json:"brand_id" validate:"required"`
	BrandName    string    `json:"brand_name,omitempty"`
	EmployeeID   int       `json:"employee_id"`
	EmployeeName string    `json:"employee_name,omitempty"`
	Spend        float64   `json:"spend" validate:"gte=0"`
	OrdersCount  int       `json:"orders_count" validate:"gte=0"`
	OrderCost    float64   `json:"order_cost"`
	ROAS         *float64  `json:"roas,omitempty"`
	CampaignLink string    `json:"campaign_link,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RecomputeDerived atualiza os campos derivados a partir dos campos
// independentes. OrderCost fornecido explicitamente é preservado; quando
// zerado, é recalculado como spend/orders_count (0 quando não há pedidos).
func (m *MediaBuyingRecord) RecomputeDerived() {
	if m.OrderCost == 0 {
		m.OrderCost = OrderCost(m.Spend, m.OrdersCount)
	}
}

type UpdateMediaBuyingRequest struct {
	ID           string     `json:"id"`
	Platform     *string    `json:"platform"`
	Date         *time.Time `json:"date"`
	BrandID      *string    `json:"brand_id"`
	EmployeeID   *int       `json:"employee_id"`
	Spend        *float64   `json:"spend"`
	OrdersCount  *int       `json:"orders_count"`
	OrderCost    *float64   `json:"order_cost"`
	ROAS         *float64   `json:"roas"`
	CampaignLink *string    `json:"campaign_link"`
	Notes        *string    `json:"notes"`
}

// MediaBuyingFilters é o FilterSpec da listagem de compra de mídia
type MediaBuyingFilters struct {
	Search     string
	Platform   string
	BrandID    string
	EmployeeID string
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortDir    string
}
