package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderCost(t *testing.T) {
	tests := []struct {
		name        string
		spend       float64
		ordersCount int
		expected    float64
	}{
		{
			name:        "Divisão normal",
			spend:       300,
			ordersCount: 10,
			expected:    30,
		},
		{
			name:        "Zero pedidos não divide: custo zero, nunca NaN",
			spend:       300,
			ordersCount: 0,
			expected:    0,
		},
		{
			name:        "Pedidos negativos tratados como zero",
			spend:       300,
			ordersCount: -5,
			expected:    0,
		},
		{
			name:        "Sem investimento o custo é zero",
			spend:       0,
			ordersCount: 10,
			expected:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, OrderCost(tt.spend, tt.ordersCount))
		})
	}
}

func TestTotalRevenue(t *testing.T) {
	assert.Equal(t, 250.0, TotalRevenue(10, 25))
	assert.Equal(t, 0.0, TotalRevenue(0, 25))
	assert.Equal(t, 0.0, TotalRevenue(10, 0))
}

func TestTotalCommission(t *testing.T) {
	tests := []struct {
		name        string
		valueType   string
		valueAmount float64
		ordersCount int
		expected    float64
	}{
		{
			name:        "Percentual por pedido",
			valueType:   CommissionTypePercentage,
			valueAmount: 10,
			ordersCount: 50,
			expected:    5,
		},
		{
			name:        "Valor fixo por pedido",
			valueType:   CommissionTypeFixed,
			valueAmount: 2.5,
			ordersCount: 4,
			expected:    10,
		},
		{
			name:        "Tipo desconhecido é tratado como fixo",
			valueType:   "bonus",
			valueAmount: 3,
			ordersCount: 2,
			expected:    6,
		},
		{
			name:        "Zero pedidos zera o total",
			valueType:   CommissionTypeFixed,
			valueAmount: 100,
			ordersCount: 0,
			expected:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TotalCommission(tt.valueType, tt.valueAmount, tt.ordersCount))
		})
	}
}

func TestProfitAndMargin(t *testing.T) {
	profit := Profit(1000, 400)
	assert.Equal(t, 600.0, profit)

	assert.Equal(t, 60.0, ProfitMargin(profit, 1000))

	// Receita zero não divide: margem zero, nunca NaN
	assert.Equal(t, 0.0, ProfitMargin(600, 0))
	assert.Equal(t, 0.0, ProfitMargin(600, -100))

	// Prejuízo gera margem negativa
	assert.Equal(t, -50.0, ProfitMargin(-500, 1000))
}

func TestROAS(t *testing.T) {
	assert.Equal(t, 4.0, ROAS(400, 100))
	assert.Equal(t, 0.0, ROAS(400, 0))
}

func TestConversionRate(t *testing.T) {
	assert.Equal(t, 10.0, ConversionRate(10, 100))
	assert.Equal(t, 0.0, ConversionRate(10, 0))
}
