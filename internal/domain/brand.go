package domain

import (
	"time"
)

// Status possíveis de uma marca. Valores desconhecidos não são rejeitados,
// apenas exibidos com o rótulo de fallback.
const (
	BrandStatusActive   = "active"
	BrandStatusInactive = "inactive"
	BrandStatusPending  = "pending"
)

// StatusFallbackLabel é o rótulo exibido para status fora do enum
const StatusFallbackLabel = "-"

// SocialLinks agrupa os links opcionais de redes sociais de uma marca.
// Todos os campos são opcionais e armazenados como documento JSON.
type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	Snapchat  string `json:"snapchat,omitempty"`
	Website   string `json:"website,omitempty"`
}

type Brand struct {
	ID          string      `json:"id"`
	Name        string      `json:"name" validate:"required"`
	Category    string      `json:"category"`
	Status      string      `json:"status"`
	SocialLinks SocialLinks `json:"social_links"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// StatusLabel retorna o status para exibição, com fallback para valores
// fora do enum
func (b *Brand) StatusLabel() string {
	switch b.Status {
	case BrandStatusActive, BrandStatusInactive, BrandStatusPending:
		return b.Status
	}
	return StatusFallbackLabel
}

type UpdateBrandRequest struct {
	ID          string       `json:"id"`
	Name        *string      `json:"name"`
	Category    *string      `json:"category"`
	Status      *string      `json:"status"`
	SocialLinks *SocialLinks `json:"social_links"`
}

// BrandFilters é o FilterSpec da listagem de marcas. Campos vazios ou com o
// sentinela "all" não restringem o resultado.
type BrandFilters struct {
	Search   string
	Status   string
	Category string
	SortBy   string
	SortDir  string
}
