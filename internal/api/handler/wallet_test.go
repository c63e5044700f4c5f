package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
	"github.com/vfg2006/monetization-dashboard-api/internal/usecases/funding/mocks"
	"github.com/vfg2006/monetization-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestWallet_AddFunds(t *testing.T) {
	t.Run("anunciante recarrega a própria carteira", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockWalletService(ctrl)

		service.EXPECT().
			AddFunds(gomock.Any(), int64(7), gomock.Any()).
			DoAndReturn(func(_ any, _ int64, req *domain.AddFundsRequest) (*domain.AddFundsResult, error) {
				assert.Equal(t, "25", req.Amount.String())
				return &domain.AddFundsResult{
					PreviousBalance: decimal.NewFromInt(100),
					Wallet:          domain.WalletSnapshot{ID: 3, AdvertiserID: 7, Balance: decimal.NewFromInt(125), Currency: "USD"},
				}, nil
			})

		rec := doRequest(t, newTestRouter(advertiserClaims(7), Wallet(service)...), http.MethodPost, "/v1/wallet/funds", []byte(`{"amount":25}`))

		require.Equal(t, http.StatusCreated, rec.Code)
		result := decodeResponse[dataResponse[domain.AddFundsResult]](t, rec).Data
		assert.Equal(t, "100", result.PreviousBalance.String())
		assert.Equal(t, "125", result.Wallet.Balance.String())
	})

	t.Run("valor abaixo do mínimo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockWalletService(ctrl)

		service.EXPECT().AddFunds(gomock.Any(), int64(7), gomock.Any()).
			Return(nil, apiErrors.New(errors.New("valor abaixo do mínimo"), apiErrors.ErrAmountBelowMinimum, map[string]any{"minimum": "10"}))

		rec := doRequest(t, newTestRouter(advertiserClaims(7), Wallet(service)...), http.MethodPost, "/v1/wallet/funds", []byte(`{"amount":5}`))

		body := assertAPIError(t, rec, http.StatusBadRequest, apiErrors.ErrAmountBelowMinimum)
		assert.Equal(t, "10", body.Error.Details["minimum"])
	})

	t.Run("admin sem advertiser_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockWalletService(ctrl)

		rec := doRequest(t, newTestRouter(adminClaims(), Wallet(service)...), http.MethodGet, "/v1/wallet", nil)

		assertAPIError(t, rec, http.StatusBadRequest, apiErrors.ErrMissingRequiredData)
	})
}

func TestWallet_ListTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockWalletService(ctrl)
	page := domain.NewPageRequest(2, 5, "")

	service.EXPECT().
		ListTransactions(gomock.Any(), int64(12), page, "TOP_UP").
		Return(domain.NewPage[domain.Transaction](page, 6, []domain.Transaction{{ID: 9, AdvertiserID: 12, Type: domain.TransactionTopUp}}), nil)

	rec := doRequest(t, newTestRouter(adminClaims(), Wallet(service)...), http.MethodGet, "/v1/wallet/transactions?advertiser_id=12&page=2&limit=5&type=TOP_UP", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeResponse[listResponse[domain.Transaction]](t, rec)
	assert.Equal(t, int64(6), list.Total)
	assert.Equal(t, 2, list.Page)
	require.Len(t, list.Data, 1)
	assert.Equal(t, domain.TransactionTopUp, list.Data[0].Type)
}
