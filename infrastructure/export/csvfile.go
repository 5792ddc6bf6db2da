package export

import (
	"bytes"
	"encoding/csv"

	"github.com/pkg/errors"
)

// CSVWriter gera arquivos CSV com cabeçalho na primeira linha
type CSVWriter struct{}

func NewCSVWriter() *CSVWriter {
	return &CSVWriter{}
}

func (w *CSVWriter) ContentType() string {
	return "text/csv"
}

func (w *CSVWriter) Extension() string {
	return "csv"
}

func (w *CSVWriter) Write(title string, headers []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(headers); err != nil {
		return nil, errors.Wrap(err, "erro ao escrever o cabeçalho")
	}

	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return nil, errors.Wrap(err, "erro ao escrever a linha")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, errors.Wrap(err, "erro ao serializar o CSV")
	}

	return buf.Bytes(), nil
}
