package finance

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto financeiro
var (
	ErrRecordIDRequired  = errors.New("record ID is required")
	ErrRevenueNotFound   = errors.New("revenue not found")
	ErrExpenseNotFound   = errors.New("expense not found")
	ErrFetchRecords      = errors.New("error fetching finance records from database")
	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating ID")
	ErrInvalidRecord     = errors.New("invalid finance record data")
	ErrInvalidPeriod     = errors.New("invalid period format")
)

// FinanceError é um erro com contexto adicional para o financeiro
type FinanceError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	RecordID string // ID do registro envolvido (quando aplicável)
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *FinanceError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *FinanceError) Unwrap() error {
	return e.Err
}

// NewFinanceError cria um novo FinanceError
func NewFinanceError(err error, code string, details string) *FinanceError {
	return &FinanceError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
