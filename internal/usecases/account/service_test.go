package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/monetization-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
	"github.com/vfg2006/monetization-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	advertiserRepo *mocks.MockAdvertiserRepository
	publisherRepo  *mocks.MockPublisherRepository
	approvalRepo   *mocks.MockApprovalRepository
	analyticsRepo  *mocks.MockAnalyticsRepository
}

func newTestService(t *testing.T) (*Service, testDeps) {
	ctrl := gomock.NewController(t)

	deps := testDeps{
		advertiserRepo: mocks.NewMockAdvertiserRepository(ctrl),
		publisherRepo:  mocks.NewMockPublisherRepository(ctrl),
		approvalRepo:   mocks.NewMockApprovalRepository(ctrl),
		analyticsRepo:  mocks.NewMockAnalyticsRepository(ctrl),
	}

	service := &Service{
		advertiserRepo: deps.advertiserRepo,
		publisherRepo:  deps.publisherRepo,
		approvalRepo:   deps.approvalRepo,
		analyticsRepo:  deps.analyticsRepo,
		now: func() time.Time {
			return time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
		},
	}

	return service, deps
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()

	var coded apiErrors.Coded
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, code, coded.APICode())
}

func TestService_GetAdvertiser(t *testing.T) {
	ctx := context.Background()

	t.Run("monta detalhe com estatísticas e faturamento", func(t *testing.T) {
		service, deps := newTestService(t)
		company := "Acme"

		deps.advertiserRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(&domain.Advertiser{ID: 7, Name: "Acme Ads"}, nil)
		deps.advertiserRepo.EXPECT().GetStats(gomock.Any(), []int64{7}).Return(map[int64]domain.AdvertiserStats{
			7: {AdvertiserID: 7, OffersCount: 3, ActiveOffers: 2, WalletBalance: decimal.NewFromInt(40)},
		}, nil)
		deps.advertiserRepo.EXPECT().GetBilling(gomock.Any(), int64(7)).Return(&domain.BillingDetails{AdvertiserID: 7, CompanyName: &company}, nil)

		detail, err := service.GetAdvertiser(ctx, 7)
		require.NoError(t, err)

		assert.Equal(t, "Acme Ads", detail.Name)
		assert.Equal(t, int64(3), detail.Stats.OffersCount)
		assert.Equal(t, "Acme", *detail.Billing.CompanyName)
	})

	t.Run("anunciante inexistente", func(t *testing.T) {
		service, deps := newTestService(t)

		deps.advertiserRepo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(nil, nil)
		deps.advertiserRepo.EXPECT().GetStats(gomock.Any(), []int64{9}).Return(map[int64]domain.AdvertiserStats{}, nil)
		deps.advertiserRepo.EXPECT().GetBilling(gomock.Any(), int64(9)).Return(nil, nil)

		_, err := service.GetAdvertiser(ctx, 9)
		assert.ErrorIs(t, err, ErrAdvertiserNotFound)
		assertCode(t, err, apiErrors.ErrNotFound)
	})
}

func TestService_Billing(t *testing.T) {
	ctx := context.Background()

	t.Run("sem cadastro devolve registro vazio", func(t *testing.T) {
		service, deps := newTestService(t)
		deps.advertiserRepo.EXPECT().GetBilling(ctx, int64(7)).Return(nil, nil)

		billing, err := service.GetBilling(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), billing.AdvertiserID)
		assert.Nil(t, billing.CompanyName)
	})

	t.Run("email inválido", func(t *testing.T) {
		service, _ := newTestService(t)
		email := "not-an-email"

		_, err := service.UpdateBilling(ctx, 7, &domain.BillingRequest{BillingEmail: &email})
		assertCode(t, err, apiErrors.ErrInvalidFormat)
	})

	t.Run("campos vazios viram nulos", func(t *testing.T) {
		service, deps := newTestService(t)
		company := " Acme "
		city := "  "

		deps.advertiserRepo.EXPECT().
			UpsertBilling(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, billing *domain.BillingDetails) (*domain.BillingDetails, error) {
				assert.Equal(t, "Acme", *billing.CompanyName)
				assert.Nil(t, billing.City)
				return billing, nil
			})

		_, err := service.UpdateBilling(ctx, 7, &domain.BillingRequest{CompanyName: &company, City: &city})
		require.NoError(t, err)
	})
}

func TestService_SetPublisherStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("status inválido não consulta o banco", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.SetPublisherStatus(ctx, 3, &domain.StatusRequest{Status: "banned"})
		assertCode(t, err, apiErrors.ErrInvalidStatus)
	})

	t.Run("aprova pelo nome do publisher", func(t *testing.T) {
		service, deps := newTestService(t)

		deps.publisherRepo.EXPECT().GetByID(ctx, int64(3)).Return(&domain.Publisher{ID: 3, Name: "gamezone"}, nil)
		deps.approvalRepo.EXPECT().
			SetStatus(ctx, domain.ApprovalKindPublisher, domain.ApprovalRef{Key: "gamezone"}, domain.ApprovalStatusApproved, nil).
			Return(&domain.Approval{ID: 11, SubjectKey: "gamezone", Status: domain.ApprovalStatusApproved}, nil)

		approval, err := service.SetPublisherStatus(ctx, 3, &domain.StatusRequest{Status: "approved"})
		require.NoError(t, err)
		assert.Equal(t, int64(11), approval.ID)
	})

	t.Run("publisher inexistente", func(t *testing.T) {
		service, deps := newTestService(t)
		deps.publisherRepo.EXPECT().GetByID(ctx, int64(3)).Return(nil, nil)

		_, err := service.SetPublisherStatus(ctx, 3, &domain.StatusRequest{Status: "rejected"})
		assert.ErrorIs(t, err, ErrPublisherNotFound)
	})
}

func TestService_GetPublisherPayout(t *testing.T) {
	ctx := context.Background()

	t.Run("calcula comissão e GST sobre a receita da janela", func(t *testing.T) {
		service, deps := newTestService(t)

		deps.publisherRepo.EXPECT().GetByID(ctx, int64(3)).Return(&domain.Publisher{ID: 3, Name: "gamezone"}, nil)
		deps.analyticsRepo.EXPECT().
			RevenueSum(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, filter domain.ReportFilter) (decimal.Decimal, decimal.Decimal, error) {
				require.NotNil(t, filter.PublisherName)
				assert.Equal(t, "gamezone", *filter.PublisherName)
				assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), filter.Range.Start)
				return decimal.NewFromInt(1000), decimal.Zero, nil
			})

		payout, err := service.GetPublisherPayout(ctx, 3, "", "")
		require.NoError(t, err)

		assert.Equal(t, "200", payout.CommissionExGST.String())
		assert.Equal(t, "36", payout.GSTOnCommission.String())
		assert.Equal(t, "764", payout.NetPayout.String())
	})

	t.Run("período invertido", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.GetPublisherPayout(ctx, 3, "2024-06-10", "2024-06-01")
		assertCode(t, err, apiErrors.ErrInvalidDateRange)
	})

	t.Run("falha na consulta de receita", func(t *testing.T) {
		service, deps := newTestService(t)

		deps.publisherRepo.EXPECT().GetByID(ctx, int64(3)).Return(&domain.Publisher{ID: 3, Name: "gamezone"}, nil)
		deps.analyticsRepo.EXPECT().RevenueSum(ctx, gomock.Any()).Return(decimal.Zero, decimal.Zero, errors.New("timeout"))

		_, err := service.GetPublisherPayout(ctx, 3, "", "")
		assertCode(t, err, apiErrors.ErrDatabaseOperation)
	})
}
