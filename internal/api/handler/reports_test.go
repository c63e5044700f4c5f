package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
	accountmocks "github.com/vfg2006/monetization-dashboard-api/internal/usecases/account/mocks"
	reportingmocks "github.com/vfg2006/monetization-dashboard-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/monetization-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestReports(t *testing.T) {
	t.Run("dashboard repassa período e top", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := reportingmocks.NewMockReporter(ctrl)

		service.EXPECT().Dashboard(gomock.Any(), "2024-06-01", "2024-06-30", 5).
			Return(&domain.Dashboard{Totals: domain.Totals{Clicks: 10}}, nil)

		rec := doRequest(t, newTestRouter(adminClaims(), Reports(service)...), http.MethodGet, "/v1/admin/dashboard?from=2024-06-01&to=2024-06-30&top=5", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(10), decodeResponse[dataResponse[domain.Dashboard]](t, rec).Data.Totals.Clicks)
	})

	t.Run("período invertido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := reportingmocks.NewMockReporter(ctrl)

		service.EXPECT().Dashboard(gomock.Any(), "2024-06-30", "2024-06-01", 0).
			Return(nil, apiErrors.New(errors.New("período inválido"), apiErrors.ErrInvalidDateRange, nil))

		rec := doRequest(t, newTestRouter(adminClaims(), Reports(service)...), http.MethodGet, "/v1/admin/dashboard?from=2024-06-30&to=2024-06-01", nil)

		assertAPIError(t, rec, http.StatusBadRequest, apiErrors.ErrInvalidDateRange)
	})

	t.Run("overview no escopo do anunciante", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := reportingmocks.NewMockReporter(ctrl)

		service.EXPECT().Overview(gomock.Any(), int64(7), "", "").Return(&domain.Overview{}, nil)

		rec := doRequest(t, newTestRouter(advertiserClaims(7), Reports(service)...), http.MethodGet, "/v1/overview", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestPublishers_Payout(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := accountmocks.NewMockAccountService(ctrl)

	service.EXPECT().GetPublisherPayout(gomock.Any(), int64(4), "2024-06-01", "").
		Return(&domain.PublisherPayout{
			PublisherID:   4,
			PublisherName: "acme-apps",
			Payout:        domain.ComputePayout(decimal.NewFromInt(1000)),
		}, nil)

	rec := doRequest(t, newTestRouter(adminClaims(), Accounts(service)...), http.MethodGet, "/v1/admin/publishers/4/payout?from=2024-06-01", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	payout := decodeResponse[dataResponse[domain.PublisherPayout]](t, rec).Data
	assert.Equal(t, "1000", payout.GrossRevenue.String())
	assert.Equal(t, "764", payout.NetPayout.String())
}
