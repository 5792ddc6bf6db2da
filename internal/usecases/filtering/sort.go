package filtering

import (
	"sort"
	"strings"
	"time"
)

// Direções de ordenação
const (
	Asc  = "asc"
	Desc = "desc"
)

// SortText ordena por chave textual, case-insensitive e estável
func SortText[T any](records []T, key func(record T) string, direction string) {
	sort.SliceStable(records, func(i, j int) bool {
		a := strings.ToLower(key(records[i]))
		b := strings.ToLower(key(records[j]))
		if descending(direction) {
			return a > b
		}
		return a < b
	})
}

// SortNumeric ordena por chave numérica, estável
func SortNumeric[T any](records []T, key func(record T) float64, direction string) {
	sort.SliceStable(records, func(i, j int) bool {
		if descending(direction) {
			return key(records[i]) > key(records[j])
		}
		return key(records[i]) < key(records[j])
	})
}

// SortDate ordena por chave de data, estável
func SortDate[T any](records []T, key func(record T) time.Time, direction string) {
	sort.SliceStable(records, func(i, j int) bool {
		if descending(direction) {
			return key(records[i]).After(key(records[j]))
		}
		return key(records[i]).Before(key(records[j]))
	})
}

func descending(direction string) bool {
	return strings.EqualFold(direction, Desc)
}
