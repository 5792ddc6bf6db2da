package exporting

import (
	"strings"
	"testing"

	"github.com/ecomistry/backoffice-api/pkg/table"
	"github.com/stretchr/testify/assert"
)

// stubWriter conta as escritas para garantir que formatos inválidos e
// conjuntos vazios nunca chegam ao gerador de arquivo
type stubWriter struct {
	extension string
	writes    int
	fail      error
}

func (w *stubWriter) ContentType() string { return "application/octet-stream" }
func (w *stubWriter) Extension() string   { return w.extension }

func (w *stubWriter) Write(title string, headers []string, rows [][]string) ([]byte, error) {
	w.writes++
	if w.fail != nil {
		return nil, w.fail
	}
	return []byte(title), nil
}

func TestService_Export(t *testing.T) {
	headers := []string{"Marca", "Status"}
	rows := [][]string{{"Alfa Fashion", "active"}}

	t.Run("Formato não suportado não chama nenhum writer", func(t *testing.T) {
		writer := &stubWriter{extension: FormatXLSX}
		service := NewService(writer)

		_, err := service.Export("docx", "Marcas", headers, rows)

		assert.ErrorIs(t, err, ErrUnsupportedFormat)
		assert.Zero(t, writer.writes)
	})

	t.Run("Conjunto vazio não gera arquivo", func(t *testing.T) {
		writer := &stubWriter{extension: FormatCSV}
		service := NewService(writer)

		_, err := service.Export(FormatCSV, "Marcas", headers, nil)

		assert.ErrorIs(t, err, ErrNothingToExport)
		assert.Zero(t, writer.writes)
	})

	t.Run("Formato é resolvido sem diferenciar maiúsculas", func(t *testing.T) {
		writer := &stubWriter{extension: FormatPDF}
		service := NewService(writer)

		file, err := service.Export("PDF", "Relatório Financeiro", headers, rows)

		assert.NoError(t, err)
		assert.Equal(t, 1, writer.writes)
		assert.True(t, strings.HasSuffix(file.Name, ".pdf"))
		assert.True(t, strings.HasPrefix(file.Name, "relat_rio_financeiro_"))
		assert.Equal(t, "application/octet-stream", file.ContentType)
	})

	t.Run("Falha do writer vira erro de geração", func(t *testing.T) {
		writer := &stubWriter{extension: FormatXLSX, fail: assert.AnError}
		service := NewService(writer)

		_, err := service.Export(FormatXLSX, "Marcas", headers, rows)

		assert.ErrorIs(t, err, ErrFileGeneration)
	})
}

func TestRows(t *testing.T) {
	type brand struct {
		Name   string
		Status string
	}

	columns := []table.Column[brand]{
		{Key: "name", Header: "Marca", Cell: func(b brand) string { return b.Name }},
		{Key: "status", Header: "Status", Cell: func(b brand) string { return b.Status }},
		{Key: "extra", Header: "Extra"},
	}

	headers, rows := Rows(columns, []brand{
		{Name: "Alfa Fashion", Status: "active"},
		{Name: "  ", Status: "pending"},
	})

	assert.Equal(t, []string{"Marca", "Status", "Extra"}, headers)
	if assert.Len(t, rows, 2) {
		// Células vazias ou sem renderizador seguem o fallback da listagem
		assert.Equal(t, []string{"Alfa Fashion", "active", table.EmptyCellFallback}, rows[0])
		assert.Equal(t, []string{table.EmptyCellFallback, "pending", table.EmptyCellFallback}, rows[1])
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{"Título simples vira minúsculas com underscore", "Compra de Midia", "compra_de_midia"},
		{"Pontuação é colapsada", "Tarefas -- Conteúdo!", "tarefas_conte_do"},
		{"Título vazio usa o fallback", "   ", "export"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slugify(tt.title))
		})
	}
}
