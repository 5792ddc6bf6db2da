package commission

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de comissões
var (
	ErrCommissionIDRequired = errors.New("commission ID is required")
	ErrCommissionNotFound   = errors.New("commission not found")
	ErrFetchCommissions     = errors.New("error fetching commissions from database")
	ErrDatabaseOperation    = errors.New("database operation error")
	ErrGenerateID           = errors.New("error generating ID")
	ErrInvalidCommission    = errors.New("invalid commission data")
)

// CommissionError é um erro com contexto adicional para comissões
type CommissionError struct {
	Err          error  // Erro base
	Code         string // Código de erro para API
	CommissionID string // ID da comissão envolvida (quando aplicável)
	Details      string // Detalhes adicionais
}

// Error implementa a interface error
func (e *CommissionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *CommissionError) Unwrap() error {
	return e.Err
}

// NewCommissionError cria um novo CommissionError
func NewCommissionError(err error, code string, details string) *CommissionError {
	return &CommissionError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
