package offering

import (
	"errors"

	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
	"github.com/vfg2006/monetization-dashboard-api/pkg/apiErrors"
)

var (
	ErrOfferNotFound      = errors.New("oferta não encontrada")
	ErrRewardNotFound     = errors.New("reward não encontrado")
	ErrOfferNameRequired  = errors.New("offer_name é obrigatório")
	ErrAdvertiserRequired = errors.New("advertiser_id é obrigatório")
	ErrInvalidOfferStatus = errors.New("status de oferta inválido")
	ErrNegativeAmount     = errors.New("valor não pode ser negativo")
	ErrRevenueRequired    = errors.New("your_revenue é obrigatório")
	ErrInvalidDates       = errors.New("período da oferta inválido")
)

func notFound(err error) *apiErrors.Error {
	return apiErrors.New(err, apiErrors.ErrNotFound, nil)
}

func invalidStatus(status string) *apiErrors.Error {
	return apiErrors.New(ErrInvalidOfferStatus, apiErrors.ErrInvalidStatus, map[string]any{
		"status":  status,
		"allowed": domain.OfferStatuses,
	})
}
