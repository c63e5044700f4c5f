package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
	"github.com/vfg2006/monetization-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/monetization-dashboard-api/pkg/log"
	"github.com/vfg2006/monetization-dashboard-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxJSONBody = 1 << 20

var (
	ErrInvalidBody       = errors.New("corpo da requisição inválido")
	ErrInvalidID         = errors.New("identificador inválido")
	ErrUnauthenticated   = errors.New("usuário não autenticado")
	ErrNoAdvertiser      = errors.New("login sem anunciante vinculado")
	ErrAdvertiserMissing = errors.New("advertiser_id é obrigatório para administradores")
)

type envelope struct {
	OK   bool `json:"ok"`
	Data any  `json:"data"`
}

type listEnvelope[T any] struct {
	OK    bool  `json:"ok"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Data  []T   `json:"data"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(envelope{OK: true, Data: data}); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

func writeList[T any](w http.ResponseWriter, r *http.Request, page *domain.Page[T]) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	err := json.NewEncoder(w).Encode(listEnvelope[T]{
		OK:    true,
		Total: page.Total,
		Page:  page.Page,
		Limit: page.Limit,
		Data:  page.Data,
	})
	if err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, maxJSONBody)

	if err := json.NewDecoder(body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return apiErrors.New(ErrInvalidBody, apiErrors.ErrMissingRequiredData, nil)
		}
		return apiErrors.New(ErrInvalidBody, apiErrors.ErrInvalidRequest, map[string]any{"reason": err.Error()})
	}

	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName(name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apiErrors.New(ErrInvalidID, apiErrors.ErrInvalidFormat, map[string]any{name: raw})
	}

	return id, nil
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apiErrors.New(err, apiErrors.ErrInvalidFormat, map[string]any{name: raw})
	}

	return value, nil
}

func pageRequest(r *http.Request) (domain.PageRequest, error) {
	page, err := queryInt(r, "page")
	if err != nil {
		return domain.PageRequest{}, err
	}

	limit, err := queryInt(r, "limit")
	if err != nil {
		return domain.PageRequest{}, err
	}

	return domain.NewPageRequest(page, limit, r.URL.Query().Get("q")), nil
}

func claimsFrom(r *http.Request) (*domain.Claims, error) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return nil, apiErrors.New(ErrUnauthenticated, apiErrors.ErrInvalidToken, nil)
	}
	return claims, nil
}

// advertiserScope resolve o anunciante alvo da requisição: o do token para anunciantes,
// ou o parâmetro advertiser_id para administradores
func advertiserScope(r *http.Request) (int64, error) {
	claims, err := claimsFrom(r)
	if err != nil {
		return 0, err
	}

	if !claims.IsAdmin() {
		if claims.AdvertiserID == nil {
			return 0, apiErrors.New(ErrNoAdvertiser, apiErrors.ErrInsufficientPrivilege, nil)
		}
		return *claims.AdvertiserID, nil
	}

	raw := r.URL.Query().Get("advertiser_id")
	if raw == "" {
		return 0, apiErrors.New(ErrAdvertiserMissing, apiErrors.ErrMissingRequiredData, map[string]any{"field": "advertiser_id"})
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apiErrors.New(ErrInvalidID, apiErrors.ErrInvalidFormat, map[string]any{"advertiser_id": raw})
	}

	return id, nil
}
