package filtering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type item struct {
	Name     string
	Category string
	Date     time.Time
}

func names(items []item) []string {
	result := make([]string, 0, len(items))
	for _, i := range items {
		result = append(result, i.Name)
	}
	return result
}

func TestApply(t *testing.T) {
	records := []item{
		{Name: "Alfa", Category: "fashion"},
		{Name: "Beta", Category: "beauty"},
		{Name: "Gama", Category: "fashion"},
		{Name: "Delta", Category: "tech"},
	}

	t.Run("Sem predicados o resultado é idêntico à entrada", func(t *testing.T) {
		result := Apply(records)
		assert.Equal(t, names(records), names(result))
	})

	t.Run("Predicados são conjuntivos e preservam a ordem original", func(t *testing.T) {
		result := Apply(records,
			Equals("fashion", func(i item) string { return i.Category }),
			Search("a", func(i item) []string { return []string{i.Name} }),
		)
		assert.Equal(t, []string{"Alfa", "Gama"}, names(result))
	})

	t.Run("Predicado nil é ignorado", func(t *testing.T) {
		result := Apply(records, nil, Equals("tech", func(i item) string { return i.Category }))
		assert.Equal(t, []string{"Delta"}, names(result))
	})
}

func TestSearch(t *testing.T) {
	records := []item{
		{Name: "Loja Nova", Category: "fashion"},
		{Name: "Outra", Category: "beauty"},
	}

	t.Run("Busca por substring ignora caixa", func(t *testing.T) {
		result := Apply(records, Search("NOVA", func(i item) []string { return []string{i.Name, i.Category} }))
		assert.Equal(t, []string{"Loja Nova"}, names(result))
	})

	t.Run("Termo vazio aceita tudo", func(t *testing.T) {
		result := Apply(records, Search("  ", func(i item) []string { return []string{i.Name} }))
		assert.Len(t, result, 2)
	})

	t.Run("Busca cobre qualquer campo configurado", func(t *testing.T) {
		result := Apply(records, Search("beauty", func(i item) []string { return []string{i.Name, i.Category} }))
		assert.Equal(t, []string{"Outra"}, names(result))
	})
}

func TestEquals(t *testing.T) {
	records := []item{
		{Name: "A", Category: "fashion"},
		{Name: "B", Category: "tech"},
	}

	t.Run("Sentinela all não restringe", func(t *testing.T) {
		result := Apply(records, Equals("all", func(i item) string { return i.Category }))
		assert.Len(t, result, 2)
	})

	t.Run("Comparação ignora caixa", func(t *testing.T) {
		result := Apply(records, Equals("FASHION", func(i item) string { return i.Category }))
		assert.Equal(t, []string{"A"}, names(result))
	})
}

func TestDateRange(t *testing.T) {
	jan10 := time.Date(2026, 1, 10, 15, 30, 0, 0, time.UTC)
	jan20 := time.Date(2026, 1, 20, 8, 0, 0, 0, time.UTC)
	feb05 := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)

	records := []item{
		{Name: "A", Date: jan10},
		{Name: "B", Date: jan20},
		{Name: "C", Date: feb05},
	}

	t.Run("Intervalo inclusivo nas duas pontas", func(t *testing.T) {
		start := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)

		result := Apply(records, DateRange(&start, &end, func(i item) time.Time { return i.Date }))

		// O limite superior se estende até o fim do dia: o registro das 08h
		// do dia 20 entra mesmo com end à meia-noite
		assert.Equal(t, []string{"A", "B"}, names(result))
	})

	t.Run("Limites nulos não restringem", func(t *testing.T) {
		start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

		result := Apply(records, DateRange(&start, nil, func(i item) time.Time { return i.Date }))
		assert.Equal(t, []string{"C"}, names(result))

		result = Apply(records, DateRange(nil, nil, func(i item) time.Time { return i.Date }))
		assert.Len(t, result, 3)
	})
}

func TestSort(t *testing.T) {
	t.Run("Ordenação textual ignora caixa", func(t *testing.T) {
		records := []item{{Name: "beta"}, {Name: "Alfa"}, {Name: "gama"}}

		SortText(records, func(i item) string { return i.Name }, Asc)
		assert.Equal(t, []string{"Alfa", "beta", "gama"}, names(records))

		SortText(records, func(i item) string { return i.Name }, Desc)
		assert.Equal(t, []string{"gama", "beta", "Alfa"}, names(records))
	})

	t.Run("Ordenação por data", func(t *testing.T) {
		records := []item{
			{Name: "B", Date: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
			{Name: "A", Date: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		}

		SortDate(records, func(i item) time.Time { return i.Date }, Asc)
		assert.Equal(t, []string{"A", "B"}, names(records))
	})

	t.Run("Ordenação numérica estável mantém empates na ordem original", func(t *testing.T) {
		records := []item{{Name: "A"}, {Name: "B"}, {Name: "C"}}

		SortNumeric(records, func(i item) float64 { return 1 }, Asc)
		assert.Equal(t, []string{"A", "B", "C"}, names(records))
	})
}
