package apiErrors

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/monetization-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrUserDisabled          = "AUTH_002" // Usuário desativado
	ErrUserNotFound          = "AUTH_003" // Usuário não encontrado
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes
	ErrUserAlreadyExists     = "AUTH_009" // Usuário já existe

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidStatus       = "VAL_004" // Status fora do conjunto permitido
	ErrAmountBelowMinimum  = "VAL_005" // Valor abaixo do mínimo
	ErrInvalidDateRange    = "VAL_006" // Período inválido
	ErrAmountAboveMaximum  = "VAL_007" // Valor acima do máximo

	// Erros de recurso
	ErrNotFound = "RES_001" // Recurso não encontrado
	ErrConflict = "RES_002" // Recurso já existe

	// Erros de upload
	ErrPayloadTooLarge      = "UPL_001" // Arquivo maior que o limite
	ErrUnsupportedMediaType = "UPL_002" // Tipo de arquivo não suportado

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrUserAlreadyExists:     http.StatusConflict,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInvalidStatus:         http.StatusBadRequest,
	ErrAmountBelowMinimum:    http.StatusBadRequest,
	ErrInvalidDateRange:      http.StatusBadRequest,
	ErrAmountAboveMaximum:    http.StatusBadRequest,
	ErrNotFound:              http.StatusNotFound,
	ErrConflict:              http.StatusConflict,
	ErrPayloadTooLarge:       http.StatusRequestEntityTooLarge,
	ErrUnsupportedMediaType:  http.StatusUnsupportedMediaType,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
}

// códigos de violação do PostgreSQL
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

type errorEnvelope struct {
	OK    bool     `json:"ok"`
	Error APIError `json:"error"`
}

// Error é o erro de domínio que já sabe qual código de API deve gerar
type Error struct {
	Err     error
	Code    string
	Details any
}

func New(err error, code string, details any) *Error {
	return &Error{Err: err, Code: code, Details: details}
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) APICode() string {
	return e.Code
}

func (e *Error) APIDetails() any {
	return e.Details
}

// Coded é implementado pelos erros dos serviços que já carregam um código de API
type Coded interface {
	error
	APICode() string
	APIDetails() any
}

// StatusFor retorna o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(errorEnvelope{
		OK: false,
		Error: APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// Handle traduz qualquer erro vindo dos serviços para a resposta HTTP.
// Erros não mapeados viram 500; fora de produção o stack trace vai em details.
func Handle(w http.ResponseWriter, r *http.Request, err error) {
	var coded Coded
	if errors.As(err, &coded) {
		WriteError(w, coded.APICode(), coded.Error(), coded.APIDetails())
		return
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
		WriteError(w, ErrConflict, "Registro já existe", map[string]any{
			"constraint": pqErr.Constraint,
		})
		return
	}
	if errors.As(err, &pqErr) && string(pqErr.Code) == pqForeignKeyViolation {
		WriteError(w, ErrNotFound, "Registro referenciado não encontrado", map[string]any{
			"constraint": pqErr.Constraint,
		})
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("Erro não tratado")

	var details any
	if !log.IsProduction() {
		details = map[string]any{
			"stack": fmt.Sprintf("%+v", err),
		}
	}

	WriteError(w, ErrInternalServer, "Erro interno do servidor", details)
}
