package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBrand(t *testing.T) {
	tests := []struct {
		name     string
		row      Row
		validate func(t *testing.T, brand *Brand)
	}{
		{
			name: "Campos completos",
			row: Row{
				"name":     "  Marca X  ",
				"category": "fashion",
				"status":   "active",
				"social_links": map[string]any{
					"instagram": "https://instagram.com/marcax",
				},
			},
			validate: func(t *testing.T, brand *Brand) {
				assert.Equal(t, "Marca X", brand.Name)
				assert.Equal(t, "fashion", brand.Category)
				assert.Equal(t, BrandStatusActive, brand.Status)
				assert.Equal(t, "https://instagram.com/marcax", brand.SocialLinks.Instagram)
				assert.Equal(t, "", brand.SocialLinks.Facebook)
			},
		},
		{
			name: "Status ausente vira pending",
			row:  Row{"name": "Marca Y"},
			validate: func(t *testing.T, brand *Brand) {
				assert.Equal(t, BrandStatusPending, brand.Status)
			},
		},
		{
			name: "Status fora do enum é preservado para o fallback de exibição",
			row:  Row{"name": "Marca Z", "status": "archived"},
			validate: func(t *testing.T, brand *Brand) {
				assert.Equal(t, "archived", brand.Status)
				assert.Equal(t, StatusFallbackLabel, brand.StatusLabel())
			},
		},
		{
			name: "Links sociais ausentes viram strings vazias",
			row:  Row{"name": "Marca W"},
			validate: func(t *testing.T, brand *Brand) {
				assert.Equal(t, SocialLinks{}, brand.SocialLinks)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, NormalizeBrand(tt.row))
		})
	}
}

func TestNormalizeEmployee(t *testing.T) {
	t.Run("Comissão ausente vira percentage/0", func(t *testing.T) {
		employee := NormalizeEmployee(Row{"name": "Ana", "email": "ana@ecomistry.com"})

		assert.Equal(t, CommissionTypePercentage, employee.Commission.Type)
		assert.Equal(t, 0.0, employee.Commission.Value)
		assert.Equal(t, EmploymentFullTime, employee.EmploymentType)
	})

	t.Run("Valor de comissão negativo é zerado", func(t *testing.T) {
		employee := NormalizeEmployee(Row{
			"name": "Ana",
			"commission": map[string]any{
				"type":  "fixed",
				"value": -10.0,
			},
		})

		assert.Equal(t, CommissionTypeFixed, employee.Commission.Type)
		assert.Equal(t, 0.0, employee.Commission.Value)
	})
}

func TestNormalizeMediaBuying(t *testing.T) {
	t.Run("Campos derivados recalculados a partir dos insumos", func(t *testing.T) {
		record := NormalizeMediaBuying(Row{
			"platform":     "facebook",
			"date":         "2026-02-10",
			"brand_id":     "Ab12Cd",
			"employee_id":  7.0,
			"spend":        300.0,
			"orders_count": 10.0,
		})

		assert.Equal(t, PlatformFacebook, record.Platform)
		assert.Equal(t, 30.0, record.OrderCost)
		assert.Nil(t, record.ROAS)
		assert.Equal(t, time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), record.Date)
	})

	t.Run("Spend e pedidos negativos são zerados", func(t *testing.T) {
		record := NormalizeMediaBuying(Row{
			"spend":        -50.0,
			"orders_count": -3.0,
		})

		assert.Equal(t, 0.0, record.Spend)
		assert.Equal(t, 0, record.OrdersCount)
		assert.Equal(t, 0.0, record.OrderCost)
	})

	t.Run("ROAS presente é carregado como ponteiro", func(t *testing.T) {
		record := NormalizeMediaBuying(Row{
			"spend":        100.0,
			"orders_count": 5.0,
			"roas":         3.2,
		})

		if assert.NotNil(t, record.ROAS) {
			assert.Equal(t, 3.2, *record.ROAS)
		}
	})

	t.Run("Plataforma fora do enum vira other", func(t *testing.T) {
		record := NormalizeMediaBuying(Row{"platform": "pinterest"})
		assert.Equal(t, PlatformOther, record.Platform)
	})
}

func TestNormalizeContentTask(t *testing.T) {
	task := NormalizeContentTask(Row{
		"employee_id": 3.0,
		"brand_id":    "Ab12Cd",
		"task_type":   "banner",
	})

	assert.Equal(t, TaskTypeOther, task.TaskType)
	assert.Equal(t, TaskStatusInProgress, task.Status)
}

func TestNormalizeCommission(t *testing.T) {
	commission := NormalizeCommission(Row{
		"employee_id":  3.0,
		"value_type":   "fixed",
		"value_amount": 2.0,
		"orders_count": 5.0,
	})

	assert.Equal(t, 10.0, commission.TotalCommission)

	negative := NormalizeCommission(Row{
		"value_type":   "fixed",
		"value_amount": -2.0,
		"orders_count": 5.0,
	})
	assert.Equal(t, 0.0, negative.ValueAmount)
	assert.Equal(t, 0.0, negative.TotalCommission)
}

func TestValidTaskTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{"Em produção pode ser entregue", TaskStatusInProgress, TaskStatusDelivered, true},
		{"Em produção pode atrasar", TaskStatusInProgress, TaskStatusDelayed, true},
		{"Entregue pode voltar para produção", TaskStatusDelivered, TaskStatusInProgress, true},
		{"Atrasada pode voltar para produção", TaskStatusDelayed, TaskStatusInProgress, true},
		{"Entregue não vira atrasada diretamente", TaskStatusDelivered, TaskStatusDelayed, false},
		{"Atrasada não vira entregue diretamente", TaskStatusDelayed, TaskStatusDelivered, false},
		{"Status desconhecido não transiciona", "archived", TaskStatusInProgress, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, ValidTaskTransition(tt.from, tt.to))
		})
	}
}
