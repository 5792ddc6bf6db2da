package utils

import (
	"math"
	"strconv"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatMoney formata um valor monetário com duas casas para exibição e
// exportação. O arredondamento acontece aqui, nunca no armazenamento.
func FormatMoney(f float64) string {
	return strconv.FormatFloat(RoundWithTwoDecimalPlace(f), 'f', 2, 64)
}

// FormatNumber formata um número sem casas decimais desnecessárias
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
