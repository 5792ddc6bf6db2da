package campaign

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de compra de mídia
var (
	ErrRecordIDRequired  = errors.New("record ID is required")
	ErrRecordNotFound    = errors.New("media buying record not found")
	ErrFetchRecords      = errors.New("error fetching media buying records from database")
	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating ID")
	ErrInvalidRecord     = errors.New("invalid media buying data")
	ErrStaleResult       = errors.New("stale listing result discarded")
)

// CampaignError é um erro com contexto adicional para compra de mídia
type CampaignError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	RecordID string // ID do registro envolvido (quando aplicável)
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *CampaignError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *CampaignError) Unwrap() error {
	return e.Err
}

// NewCampaignError cria um novo CampaignError
func NewCampaignError(err error, code string, details string) *CampaignError {
	return &CampaignError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
