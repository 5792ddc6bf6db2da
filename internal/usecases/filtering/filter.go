// Package filtering implementa o motor genérico de busca e filtro em memória
// usado por todas as listagens. Os predicados são conjuntivos (AND) e
// predicados ausentes ou com o sentinela "all" não restringem nada.
package filtering

import (
	"strings"
	"time"
)

// All é o valor sentinela de filtro categórico que significa "sem restrição"
const All = "all"

// Predicate decide se um registro permanece no resultado
type Predicate[T any] func(record T) bool

// Search cria um predicado de busca textual: substring case-insensitive
// sobre o conjunto de campos configurado. Termo vazio aceita tudo.
func Search[T any](term string, fields func(record T) []string) Predicate[T] {
	term = strings.ToLower(strings.TrimSpace(term))
	return func(record T) bool {
		if term == "" {
			return true
		}
		for _, field := range fields(record) {
			if strings.Contains(strings.ToLower(field), term) {
				return true
			}
		}
		return false
	}
}

// Equals cria um predicado de igualdade categórica. Valor vazio ou "all"
// aceita tudo; a comparação ignora caixa.
func Equals[T any](value string, field func(record T) string) Predicate[T] {
	value = strings.TrimSpace(value)
	return func(record T) bool {
		if value == "" || strings.EqualFold(value, All) {
			return true
		}
		return strings.EqualFold(field(record), value)
	}
}

// DateRange cria um predicado de intervalo de datas inclusivo. Limites nulos
// ou zerados não restringem o lado correspondente.
func DateRange[T any](start, end *time.Time, field func(record T) time.Time) Predicate[T] {
	return func(record T) bool {
		date := field(record)
		if start != nil && !start.IsZero() && date.Before(*start) {
			return false
		}
		if end != nil && !end.IsZero() && date.After(endOfDay(*end)) {
			return false
		}
		return true
	}
}

// endOfDay estende o limite superior até o fim do dia para que filtros por
// data pura incluam registros com horário
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// Apply devolve o subconjunto dos registros que satisfazem todos os
// predicados, preservando a ordem original. Sem predicados ativos, o
// resultado é igual à entrada.
func Apply[T any](records []T, predicates ...Predicate[T]) []T {
	if len(predicates) == 0 {
		return records
	}

	result := make([]T, 0, len(records))
	for _, record := range records {
		if matchesAll(record, predicates) {
			result = append(result, record)
		}
	}
	return result
}

func matchesAll[T any](record T, predicates []Predicate[T]) bool {
	for _, predicate := range predicates {
		if predicate == nil {
			continue
		}
		if !predicate(record) {
			return false
		}
	}
	return true
}
