// Package table define o contrato de apresentação tabular usado pelas
// listagens e pela exportação: uma lista de colunas aplicada uniformemente a
// qualquer coleção de registros, com estados de carregamento e vazio.
package table

import (
	"fmt"
	"strings"
)

// EmptyCellFallback é o valor exibido quando a célula não produz conteúdo
const EmptyCellFallback = "-"

// Column descreve uma coluna: chave única na tabela, rótulo humano do
// cabeçalho e a regra de renderização da célula. Cell nunca deve assumir que
// um campo do registro existe; ausências viram o fallback.
type Column[T any] struct {
	Key    string
	Header string
	Cell   func(record T) string
}

// View é o resultado da renderização, pronto para serialização. Quando
// Loading é verdadeiro a mensagem de vazio é suprimida mesmo sem linhas;
// quando não está carregando e não há dados, Rows contém exatamente uma
// linha de placeholder ocupando todas as colunas (PlaceholderSpan).
type View struct {
	Headers         []string   `json:"headers"`
	Keys            []string   `json:"keys"`
	Rows            [][]string `json:"rows"`
	Loading         bool       `json:"loading"`
	EmptyMessage    string     `json:"empty_message,omitempty"`
	PlaceholderSpan int        `json:"placeholder_span,omitempty"`
}

// Validate garante a configuração das colunas: chaves únicas e não vazias.
// Uma violação aqui é um bug de configuração da tabela, não um erro de
// execução, então é reportada na construção da tela.
func Validate[T any](columns []Column[T]) error {
	seen := make(map[string]struct{}, len(columns))
	for _, column := range columns {
		if column.Key == "" {
			return fmt.Errorf("coluna %q sem chave", column.Header)
		}
		if _, duplicate := seen[column.Key]; duplicate {
			return fmt.Errorf("chave de coluna duplicada: %s", column.Key)
		}
		seen[column.Key] = struct{}{}
	}
	return nil
}

// Render aplica as colunas aos dados, na ordem do slice recebido. A tabela
// não ordena: ordenação é um passo anterior, do motor de filtro.
func Render[T any](columns []Column[T], data []T, isLoading bool, emptyMessage string) View {
	view := View{
		Headers: make([]string, 0, len(columns)),
		Keys:    make([]string, 0, len(columns)),
		Loading: isLoading,
	}
	for _, column := range columns {
		view.Headers = append(view.Headers, column.Header)
		view.Keys = append(view.Keys, column.Key)
	}

	if isLoading {
		return view
	}

	if len(data) == 0 {
		view.EmptyMessage = emptyMessage
		view.PlaceholderSpan = len(columns)
		view.Rows = [][]string{{emptyMessage}}
		return view
	}

	view.Rows = make([][]string, 0, len(data))
	for _, record := range data {
		row := make([]string, 0, len(columns))
		for _, column := range columns {
			row = append(row, renderCell(column, record))
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}

func renderCell[T any](column Column[T], record T) string {
	if column.Cell == nil {
		return EmptyCellFallback
	}
	value := strings.TrimSpace(column.Cell(record))
	if value == "" {
		return EmptyCellFallback
	}
	return value
}
