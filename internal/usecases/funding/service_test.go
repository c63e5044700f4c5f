package funding

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/monetization-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/monetization-dashboard-api/internal/config"
	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
	"github.com/vfg2006/monetization-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/monetization-dashboard-api/pkg/metrics"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (WalletService, *mocks.MockWalletRepository) {
	ctrl := gomock.NewController(t)
	walletRepo := mocks.NewMockWalletRepository(ctrl)

	cfg := &config.Config{Wallet: config.Wallet{MinTopUp: 10, MaxTopUp: 1000000}}
	return NewService(walletRepo, cfg), walletRepo
}

func TestService_AddFunds(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		amount   string
		wantErr  error
		wantCode string
	}{
		{name: "valor zero", amount: "0", wantErr: ErrAmountNotPositive, wantCode: apiErrors.ErrAmountBelowMinimum},
		{name: "valor negativo", amount: "-5", wantErr: ErrAmountNotPositive, wantCode: apiErrors.ErrAmountBelowMinimum},
		{name: "abaixo do mínimo", amount: "9.99", wantErr: ErrAmountBelowMinimum, wantCode: apiErrors.ErrAmountBelowMinimum},
		{name: "três casas decimais", amount: "10.005", wantErr: ErrAmountPrecision, wantCode: apiErrors.ErrInvalidFormat},
		{name: "acima do máximo", amount: "1000000.01", wantErr: ErrAmountAboveMaximum, wantCode: apiErrors.ErrAmountAboveMaximum},
		{name: "estoura a coluna", amount: "99999999999999", wantErr: ErrAmountAboveMaximum, wantCode: apiErrors.ErrAmountAboveMaximum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newTestService(t)

			_, err := service.AddFunds(ctx, 7, &domain.AddFundsRequest{Amount: decimal.RequireFromString(tt.amount)})

			assert.ErrorIs(t, err, tt.wantErr)
			var apiErr *apiErrors.Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.wantCode, apiErr.Code)
		})
	}

	t.Run("zeros à direita não contam como casas decimais", func(t *testing.T) {
		service, walletRepo := newTestService(t)
		amount := decimal.RequireFromString("25.5000")

		walletRepo.EXPECT().AddFunds(ctx, int64(7), amount, nil).Return(&domain.AddFundsResult{
			Wallet:      domain.WalletSnapshot{ID: 2, AdvertiserID: 7, Balance: decimal.RequireFromString("25.50")},
			Transaction: domain.Transaction{ID: 4, Amount: amount},
		}, nil)

		_, err := service.AddFunds(ctx, 7, &domain.AddFundsRequest{Amount: amount})
		require.NoError(t, err)
	})

	t.Run("valor mínimo é aceito", func(t *testing.T) {
		service, walletRepo := newTestService(t)
		amount := decimal.NewFromInt(10)
		before := testutil.ToFloat64(metrics.WalletTopUps.WithLabelValues("success"))

		walletRepo.EXPECT().AddFunds(ctx, int64(7), amount, nil).Return(&domain.AddFundsResult{
			PreviousBalance: decimal.NewFromInt(5),
			Wallet:          domain.WalletSnapshot{ID: 2, AdvertiserID: 7, Balance: decimal.NewFromInt(15)},
			Transaction:     domain.Transaction{ID: 3, Amount: amount},
		}, nil)

		result, err := service.AddFunds(ctx, 7, &domain.AddFundsRequest{Amount: amount})
		require.NoError(t, err)

		assert.Equal(t, "15", result.Wallet.Balance.String())
		assert.Equal(t, before+1, testutil.ToFloat64(metrics.WalletTopUps.WithLabelValues("success")))
	})

	t.Run("falha no repositório conta como falha", func(t *testing.T) {
		service, walletRepo := newTestService(t)
		before := testutil.ToFloat64(metrics.WalletTopUps.WithLabelValues("failure"))

		walletRepo.EXPECT().AddFunds(ctx, int64(7), gomock.Any(), gomock.Any()).Return(nil, errors.New("tx aborted"))

		_, err := service.AddFunds(ctx, 7, &domain.AddFundsRequest{Amount: decimal.NewFromInt(50)})
		require.Error(t, err)
		assert.Equal(t, before+1, testutil.ToFloat64(metrics.WalletTopUps.WithLabelValues("failure")))
	})
}

func TestService_ListTransactions(t *testing.T) {
	ctx := context.Background()
	page := domain.NewPageRequest(1, 20, "")

	t.Run("filtra por tipo", func(t *testing.T) {
		service, walletRepo := newTestService(t)
		topUp := domain.TransactionTopUp

		walletRepo.EXPECT().
			ListTransactions(ctx, domain.TransactionFilter{PageRequest: page, AdvertiserID: 7, Type: &topUp}).
			Return(domain.NewPage[domain.Transaction](page, 0, nil), nil)

		_, err := service.ListTransactions(ctx, 7, page, "top_up")
		require.NoError(t, err)
	})

	t.Run("tipo desconhecido", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.ListTransactions(ctx, 7, page, "WITHDRAW")
		assert.ErrorIs(t, err, ErrInvalidTransactionType)
	})
}
