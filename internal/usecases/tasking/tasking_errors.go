package tasking

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de tarefas de conteúdo
var (
	ErrTaskIDRequired    = errors.New("task ID is required")
	ErrTaskNotFound      = errors.New("content task not found")
	ErrFetchTasks        = errors.New("error fetching content tasks from database")
	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating ID")
	ErrInvalidTask       = errors.New("invalid content task data")
	ErrInvalidTransition = errors.New("status transition not allowed")
)

// TaskError é um erro com contexto adicional para tarefas de conteúdo
type TaskError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	TaskID  string // ID da tarefa envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *TaskError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *TaskError) Unwrap() error {
	return e.Err
}

// NewTaskError cria um novo TaskError
func NewTaskError(err error, code string, details string) *TaskError {
	return &TaskError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
