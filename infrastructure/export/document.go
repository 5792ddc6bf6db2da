package export

import (
	"bytes"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"
)

// DocumentWriter gera relatórios PDF em paisagem com uma tabela simples
type DocumentWriter struct{}

func NewDocumentWriter() *DocumentWriter {
	return &DocumentWriter{}
}

func (w *DocumentWriter) ContentType() string {
	return "application/pdf"
}

func (w *DocumentWriter) Extension() string {
	return "pdf"
}

// Write desenha o título, o carimbo de geração e a tabela com larguras de
// coluna uniformes. Valores longos são truncados para caber na célula.
func (w *DocumentWriter) Write(title string, headers []string, rows [][]string) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, title)
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 8)
	pdf.Cell(0, 6, "Gerado em "+time.Now().Format("02/01/2006 15:04"))
	pdf.Ln(10)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageWidth - left - right

	colWidth := usable
	if len(headers) > 0 {
		colWidth = usable / float64(len(headers))
	}

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, header := range headers {
		pdf.CellFormat(colWidth, 8, truncateCell(header), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, row := range rows {
		for _, value := range row {
			pdf.CellFormat(colWidth, 7, truncateCell(value), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "erro ao serializar o documento")
	}

	return buf.Bytes(), nil
}

func truncateCell(value string) string {
	const maxLen = 28
	if len(value) <= maxLen {
		return value
	}
	return value[:maxLen-3] + "..."
}
