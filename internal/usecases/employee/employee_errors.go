package employee

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de funcionários
var (
	ErrEmployeeIDRequired = errors.New("employee ID is required")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmailAlreadyUsed   = errors.New("email already registered")
	ErrFetchEmployees     = errors.New("error fetching employees from database")
	ErrDatabaseOperation  = errors.New("database operation error")
	ErrInvalidEmployee    = errors.New("invalid employee data")
)

// EmployeeError é um erro com contexto adicional para funcionários
type EmployeeError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	EmployeeID int    // ID do funcionário envolvido (quando aplicável)
	Details    string // Detalhes adicionais
}

// Error implementa a interface error
func (e *EmployeeError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *EmployeeError) Unwrap() error {
	return e.Err
}

// NewEmployeeError cria um novo EmployeeError
func NewEmployeeError(err error, code string, details string) *EmployeeError {
	return &EmployeeError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
