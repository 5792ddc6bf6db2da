package brand

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de marcas
var (
	ErrBrandIDRequired   = errors.New("brand ID is required")
	ErrBrandNotFound     = errors.New("brand not found")
	ErrFetchBrands       = errors.New("error fetching brands from database")
	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating ID")
	ErrInvalidBrand      = errors.New("invalid brand data")
)

// BrandError é um erro com contexto adicional para marcas
type BrandError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	BrandID string // ID da marca envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *BrandError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *BrandError) Unwrap() error {
	return e.Err
}

// NewBrandError cria um novo BrandError
func NewBrandError(err error, code string, details string) *BrandError {
	return &BrandError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
