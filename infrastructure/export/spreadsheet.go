package export

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const spreadsheetSheet = "Sheet1"

// SpreadsheetWriter gera planilhas XLSX a partir de cabeçalhos e linhas já
// achatadas em texto
type SpreadsheetWriter struct{}

func NewSpreadsheetWriter() *SpreadsheetWriter {
	return &SpreadsheetWriter{}
}

func (w *SpreadsheetWriter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (w *SpreadsheetWriter) Extension() string {
	return "xlsx"
}

// Write monta a planilha com a linha de cabeçalho em negrito seguida de uma
// linha por registro, na mesma ordem das colunas recebidas
func (w *SpreadsheetWriter) Write(title string, headers []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar o estilo do cabeçalho")
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao resolver a célula do cabeçalho")
		}
		if err = f.SetCellValue(spreadsheetSheet, cell, header); err != nil {
			return nil, errors.Wrap(err, "erro ao escrever o cabeçalho")
		}
		if err = f.SetCellStyle(spreadsheetSheet, cell, cell, headerStyle); err != nil {
			return nil, errors.Wrap(err, "erro ao aplicar o estilo do cabeçalho")
		}
	}

	for rowIdx, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return nil, errors.Wrap(err, "erro ao resolver a célula da linha")
			}
			if err = f.SetCellValue(spreadsheetSheet, cell, value); err != nil {
				return nil, errors.Wrap(err, "erro ao escrever a linha")
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, errors.Wrap(err, "erro ao serializar a planilha")
	}

	return buf.Bytes(), nil
}
