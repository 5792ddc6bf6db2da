// Package exporting transforma qualquer coleção tabulável em um arquivo para
// download. As colunas vêm do mesmo contrato de tabela das listagens, então
// exportação e tela nunca divergem.
package exporting

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ecomistry/backoffice-api/pkg/apiErrors"
	"github.com/ecomistry/backoffice-api/pkg/table"
	"github.com/sirupsen/logrus"
)

// Formatos de exportação suportados
const (
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
	FormatCSV  = "csv"
)

// FileWriter serializa cabeçalhos e linhas já achatadas em um formato de
// arquivo concreto
type FileWriter interface {
	ContentType() string
	Extension() string
	Write(title string, headers []string, rows [][]string) ([]byte, error)
}

// File é o resultado pronto para download
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

type ExportService interface {
	Export(format, title string, headers []string, rows [][]string) (*File, error)
}

type Service struct {
	writers map[string]FileWriter
}

func NewService(writers ...FileWriter) ExportService {
	byFormat := make(map[string]FileWriter, len(writers))
	for _, writer := range writers {
		byFormat[writer.Extension()] = writer
	}
	return &Service{
		writers: byFormat,
	}
}

// Export gera o arquivo no formato pedido. Conjunto vazio não gera arquivo:
// nenhum writer é chamado e o chamador recebe o aviso para o usuário.
func (s *Service) Export(format, title string, headers []string, rows [][]string) (*File, error) {
	writer, ok := s.writers[strings.ToLower(format)]
	if !ok {
		return nil, NewExportError(ErrUnsupportedFormat, apiErrors.ErrInvalidFormat,
			fmt.Sprintf("Formato de exportação não suportado: %s", format))
	}

	if len(rows) == 0 {
		return nil, NewExportError(ErrNothingToExport, apiErrors.ErrNothingToExport, "Não há dados para exportar")
	}

	content, err := writer.Write(title, headers, rows)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"format": format,
			"title":  title,
			"error":  err,
		}).Error("export: file generation failed")
		return nil, NewExportError(ErrFileGeneration, apiErrors.ErrExportFailed, "Falha ao gerar arquivo de exportação")
	}

	return &File{
		Name:        fmt.Sprintf("%s_%s.%s", slugify(title), time.Now().Format("20060102_150405"), writer.Extension()),
		ContentType: writer.ContentType(),
		Content:     content,
	}, nil
}

// Rows achata os registros pelas colunas da tabela: os cabeçalhos viram a
// primeira linha do arquivo e cada célula segue a mesma regra de renderização
// da listagem, incluindo o fallback de célula vazia
func Rows[T any](columns []table.Column[T], records []T) ([]string, [][]string) {
	headers := make([]string, 0, len(columns))
	for _, column := range columns {
		headers = append(headers, column.Header)
	}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		row := make([]string, 0, len(columns))
		for _, column := range columns {
			value := ""
			if column.Cell != nil {
				value = strings.TrimSpace(column.Cell(record))
			}
			if value == "" {
				value = table.EmptyCellFallback
			}
			row = append(row, value)
		}
		rows = append(rows, row)
	}

	return headers, rows
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(title string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(title), "_")
	slug = strings.Trim(slug, "_")
	if slug == "" {
		return "export"
	}
	return slug
}
