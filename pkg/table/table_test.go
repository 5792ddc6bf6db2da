package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type product struct {
	Name  string
	Price string
}

func productColumns() []Column[product] {
	return []Column[product]{
		{Key: "name", Header: "Nome", Cell: func(p product) string { return p.Name }},
		{Key: "price", Header: "Preço", Cell: func(p product) string { return p.Price }},
	}
}

func TestValidate(t *testing.T) {
	t.Run("Configuração válida", func(t *testing.T) {
		assert.NoError(t, Validate(productColumns()))
	})

	t.Run("Chave vazia é bug de configuração", func(t *testing.T) {
		columns := []Column[product]{{Key: "", Header: "Nome"}}
		assert.Error(t, Validate(columns))
	})

	t.Run("Chave duplicada é bug de configuração", func(t *testing.T) {
		columns := []Column[product]{
			{Key: "name", Header: "Nome"},
			{Key: "name", Header: "Outra"},
		}
		assert.Error(t, Validate(columns))
	})
}

func TestRender(t *testing.T) {
	columns := productColumns()

	t.Run("Linhas na ordem dos dados, células na ordem das colunas", func(t *testing.T) {
		view := Render(columns, []product{
			{Name: "Caneca", Price: "25.00"},
			{Name: "Camiseta", Price: "89.90"},
		}, false, "Nada aqui")

		assert.Equal(t, []string{"Nome", "Preço"}, view.Headers)
		assert.Equal(t, []string{"name", "price"}, view.Keys)
		assert.Equal(t, [][]string{
			{"Caneca", "25.00"},
			{"Camiseta", "89.90"},
		}, view.Rows)
		assert.False(t, view.Loading)
		assert.Empty(t, view.EmptyMessage)
	})

	t.Run("Carregando suprime a mensagem de vazio mesmo sem linhas", func(t *testing.T) {
		view := Render(columns, nil, true, "Nada aqui")

		assert.True(t, view.Loading)
		assert.Empty(t, view.Rows)
		assert.Empty(t, view.EmptyMessage)
	})

	t.Run("Vazio sem carregamento produz exatamente uma linha de placeholder", func(t *testing.T) {
		view := Render(columns, nil, false, "Nada aqui")

		assert.Equal(t, "Nada aqui", view.EmptyMessage)
		assert.Equal(t, len(columns), view.PlaceholderSpan)
		assert.Equal(t, [][]string{{"Nada aqui"}}, view.Rows)
	})

	t.Run("Célula vazia ou em branco vira o fallback", func(t *testing.T) {
		view := Render(columns, []product{{Name: "  ", Price: ""}}, false, "Nada aqui")

		assert.Equal(t, [][]string{{EmptyCellFallback, EmptyCellFallback}}, view.Rows)
	})

	t.Run("Coluna sem regra de célula vira o fallback", func(t *testing.T) {
		broken := []Column[product]{{Key: "x", Header: "X"}}
		view := Render(broken, []product{{Name: "Caneca"}}, false, "Nada aqui")

		assert.Equal(t, [][]string{{EmptyCellFallback}}, view.Rows)
	})
}
