package exporting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de exportação
var (
	ErrNothingToExport   = errors.New("nothing to export")
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrFileGeneration    = errors.New("error generating export file")
	ErrUnsupportedEntity = errors.New("unsupported export entity")
)

// ExportError é um erro com contexto adicional para exportação
type ExportError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ExportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ExportError) Unwrap() error {
	return e.Err
}

// NewExportError cria um novo ExportError
func NewExportError(err error, code string, details string) *ExportError {
	return &ExportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
