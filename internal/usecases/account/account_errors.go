package account

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de contas
var (
	// Erros de validação
	ErrAdvertiserIDRequired = errors.New("advertiser ID is required")
	ErrInvalidBillingEmail  = errors.New("invalid billing email")

	// Erros de recurso
	ErrAdvertiserNotFound = errors.New("advertiser not found")
	ErrPublisherNotFound  = errors.New("publisher not found")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
	ErrFetchAdvertisers  = errors.New("error fetching advertisers from database")
	ErrFetchPublishers   = errors.New("error fetching publishers from database")
	ErrUpdateBilling     = errors.New("error updating billing details")
	ErrUpdatePublisher   = errors.New("error updating publisher status")
)

// AccountError é um erro com contexto adicional para anunciantes e publishers
type AccountError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	AccountID string // ID do anunciante ou publisher envolvido (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AccountError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AccountError) Unwrap() error {
	return e.Err
}

func (e *AccountError) APICode() string {
	return e.Code
}

func (e *AccountError) APIDetails() any {
	if e.AccountID == "" {
		return nil
	}
	return map[string]any{"id": e.AccountID}
}

// NewAccountError cria um novo AccountError
func NewAccountError(err error, code string, details string) *AccountError {
	return &AccountError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewAccountErrorWithID cria um novo AccountError com ID da conta
func NewAccountErrorWithID(err error, code string, accountID string, details string) *AccountError {
	return &AccountError{
		Err:       err,
		Code:      code,
		AccountID: accountID,
		Details:   details,
	}
}
