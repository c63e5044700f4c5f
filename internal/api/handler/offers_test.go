package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
	"github.com/vfg2006/monetization-dashboard-api/internal/usecases/offering/mocks"
	"github.com/vfg2006/monetization-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestOffers_Lifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockOfferService(ctrl)
	claims := advertiserClaims(7)
	h := newTestRouter(claims, Offers(service)...)

	created := domain.Offer{
		ID:           42,
		AdvertiserID: 7,
		Name:         "Spin & Win",
		Status:       domain.OfferStatusActive,
		Bid:          decimal.RequireFromString("1.5"),
		CreatedAt:    time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	gomock.InOrder(
		service.EXPECT().
			CreateOffer(gomock.Any(), claims, gomock.Any()).
			DoAndReturn(func(_ any, _ *domain.Claims, req *domain.OfferRequest) (*domain.Offer, error) {
				assert.Equal(t, "Spin & Win", req.OfferName)
				assert.Equal(t, "1.5", req.Bid.String())
				offer := created
				return &offer, nil
			}),
		service.EXPECT().
			ListOffers(gomock.Any(), claims, domain.NewPageRequest(1, 10, "spin"), "").
			Return(domain.NewPage(domain.NewPageRequest(1, 10, "spin"), 1, []domain.Offer{created}), nil),
		service.EXPECT().
			UpdateOfferStatus(gomock.Any(), claims, int64(42), &domain.StatusRequest{Status: "paused"}).
			DoAndReturn(func(_ any, _ *domain.Claims, _ int64, _ *domain.StatusRequest) (*domain.Offer, error) {
				offer := created
				offer.Status = domain.OfferStatusPaused
				return &offer, nil
			}),
		service.EXPECT().
			GetOffer(gomock.Any(), claims, int64(42)).
			DoAndReturn(func(_ any, _ *domain.Claims, _ int64) (*domain.Offer, error) {
				offer := created
				offer.Status = domain.OfferStatusPaused
				return &offer, nil
			}),
	)

	rec := doRequest(t, h, http.MethodPost, "/v1/offers", []byte(`{"offer_name":"Spin & Win","bid":1.5}`))
	require.Equal(t, http.StatusCreated, rec.Code)
	createdBody := decodeResponse[dataResponse[domain.Offer]](t, rec)
	assert.True(t, createdBody.OK)
	assert.Equal(t, int64(42), createdBody.Data.ID)
	assert.Equal(t, domain.OfferStatusActive, createdBody.Data.Status)

	rec = doRequest(t, h, http.MethodGet, "/v1/offers?q=Spin&limit=10", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeResponse[listResponse[domain.Offer]](t, rec)
	assert.Equal(t, int64(1), list.Total)
	assert.Equal(t, 1, list.Page)
	assert.Equal(t, 10, list.Limit)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "Spin & Win", list.Data[0].Name)

	rec = doRequest(t, h, http.MethodPatch, "/v1/offers/42/status", []byte(`{"status":"paused"}`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.OfferStatusPaused, decodeResponse[dataResponse[domain.Offer]](t, rec).Data.Status)

	rec = doRequest(t, h, http.MethodGet, "/v1/offers/42", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.OfferStatusPaused, decodeResponse[dataResponse[domain.Offer]](t, rec).Data.Status)
}

func TestOffers_Errors(t *testing.T) {
	claims := advertiserClaims(7)

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		setup      func(service *mocks.MockOfferService)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "status fora do conjunto",
			method:     http.MethodPatch,
			target:     "/v1/offers/42/status",
			body:       `{"status":"ARCHIVED"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidStatus,
			setup: func(service *mocks.MockOfferService) {
				service.EXPECT().UpdateOfferStatus(gomock.Any(), claims, int64(42), gomock.Any()).
					Return(nil, apiErrors.New(errors.New("status inválido"), apiErrors.ErrInvalidStatus, map[string]any{"status": "ARCHIVED"}))
			},
		},
		{
			name:       "oferta inexistente",
			method:     http.MethodGet,
			target:     "/v1/offers/404",
			wantStatus: http.StatusNotFound,
			wantCode:   apiErrors.ErrNotFound,
			setup: func(service *mocks.MockOfferService) {
				service.EXPECT().GetOffer(gomock.Any(), claims, int64(404)).
					Return(nil, apiErrors.New(errors.New("oferta não encontrada"), apiErrors.ErrNotFound, nil))
			},
		},
		{
			name:       "id não numérico",
			method:     http.MethodGet,
			target:     "/v1/offers/abc",
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
			setup:      func(service *mocks.MockOfferService) {},
		},
		{
			name:       "corpo vazio",
			method:     http.MethodPost,
			target:     "/v1/offers",
			body:       "",
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrMissingRequiredData,
			setup:      func(service *mocks.MockOfferService) {},
		},
		{
			name:       "json malformado",
			method:     http.MethodPost,
			target:     "/v1/offers",
			body:       `{"offer_name":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
			setup:      func(service *mocks.MockOfferService) {},
		},
		{
			name:       "erro inesperado vira 500",
			method:     http.MethodGet,
			target:     "/v1/offers",
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrInternalServer,
			setup: func(service *mocks.MockOfferService) {
				service.EXPECT().ListOffers(gomock.Any(), claims, gomock.Any(), "").Return(nil, errors.New("connection reset"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockOfferService(ctrl)
			tt.setup(service)

			var body []byte
			if tt.method != http.MethodGet {
				body = []byte(tt.body)
			}

			rec := doRequest(t, newTestRouter(claims, Offers(service)...), tt.method, tt.target, body)

			assertAPIError(t, rec, tt.wantStatus, tt.wantCode)
		})
	}
}

func TestRewards(t *testing.T) {
	claims := advertiserClaims(7)

	t.Run("cria recompensa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockOfferService(ctrl)

		service.EXPECT().CreateReward(gomock.Any(), claims, int64(42), gomock.Any()).
			DoAndReturn(func(_ any, _ *domain.Claims, offerID int64, req *domain.RewardRequest) (*domain.Reward, error) {
				return &domain.Reward{ID: 5, OfferID: offerID, AdvertiserID: 7, YourRevenue: *req.YourRevenue}, nil
			})

		rec := doRequest(t, newTestRouter(claims, Offers(service)...), http.MethodPost, "/v1/offers/42/rewards", []byte(`{"your_revenue":"2.25"}`))

		require.Equal(t, http.StatusCreated, rec.Code)
		reward := decodeResponse[dataResponse[domain.Reward]](t, rec).Data
		assert.Equal(t, int64(42), reward.OfferID)
		assert.Equal(t, "2.25", reward.YourRevenue.String())
	})

	t.Run("remove recompensa com 204 sem corpo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockOfferService(ctrl)

		service.EXPECT().DeleteReward(gomock.Any(), claims, int64(5)).Return(nil)

		rec := doRequest(t, newTestRouter(claims, Offers(service)...), http.MethodDelete, "/v1/rewards/5", nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.Bytes())
	})
}
