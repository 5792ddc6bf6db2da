package domain

// Funções puras de cálculo dos campos derivados. Todas são totais: divisor
// zero resulta em 0, nunca NaN ou Inf. O arredondamento para duas casas é
// responsabilidade da camada de apresentação/exportação; o armazenamento
// mantém a precisão completa.

// OrderCost calcula o custo por pedido (CPP): spend dividido pela
// quantidade de pedidos
func OrderCost(spend float64, ordersCount int) float64 {
	if ordersCount <= 0 {
		return 0
	}
	return spend / float64(ordersCount)
}

// TotalRevenue calcula a receita total: unidades vendidas vezes preço
// unitário
func TotalRevenue(unitsSold int, unitPrice float64) float64 {
	return float64(unitsSold) * unitPrice
}

// TotalCommission calcula o total de comissão. Para value_type percentage o
// valor é interpretado como percentual por pedido; qualquer outro valor é
// tratado como fixo por pedido.
func TotalCommission(valueType string, valueAmount float64, ordersCount int) float64 {
	if valueType == CommissionTypePercentage {
		return (valueAmount / 100) * float64(ordersCount)
	}
	return valueAmount * float64(ordersCount)
}

// Profit calcula o lucro: receita menos despesas
func Profit(revenue, expenses float64) float64 {
	return revenue - expenses
}

// ProfitMargin calcula a margem de lucro percentual sobre a receita
func ProfitMargin(profit, revenue float64) float64 {
	if revenue <= 0 {
		return 0
	}
	return profit / revenue * 100
}

// ConversionRate calcula a taxa de conversão de pedidos sobre o investimento
func ConversionRate(ordersCount int, spend float64) float64 {
	if spend <= 0 {
		return 0
	}
	return float64(ordersCount) / spend * 100
}

// ROAS calcula o retorno sobre o investimento em anúncios
func ROAS(revenue, spend float64) float64 {
	if spend <= 0 {
		return 0
	}
	return revenue / spend
}
