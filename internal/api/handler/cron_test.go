package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/monetization-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/monetization-dashboard-api/internal/config"
	"github.com/vfg2006/monetization-dashboard-api/internal/scheduler"
	"github.com/vfg2006/monetization-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newCronServices(t *testing.T) (CronJobServices, *repomocks.MockOfferRepository) {
	ctrl := gomock.NewController(t)
	offerRepo := repomocks.NewMockOfferRepository(ctrl)

	service := scheduler.NewOfferExpirySyncService(offerRepo, &config.Config{
		OfferExpirySync: config.OfferExpirySync{CronSchedule: "0 2 * * *"},
	})

	return CronJobServices{OfferExpirySyncService: service}, offerRepo
}

func TestCronJobs_Run(t *testing.T) {
	t.Run("dispara a expiração de ofertas", func(t *testing.T) {
		services, offerRepo := newCronServices(t)
		done := make(chan struct{})

		offerRepo.EXPECT().EndExpired(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ time.Time) (int64, error) {
				close(done)
				return 2, nil
			})

		rec := doRequest(t, newTestRouter(adminClaims(), CronJobs(services)...), http.MethodPost, "/v1/cron/offer-expiry/run", nil)
		require.Equal(t, http.StatusAccepted, rec.Code)

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("expiração não executou")
		}

		assert.Eventually(t, func() bool {
			return services.OfferExpirySyncService.GetStatus()["sync_running"] == false
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("tipo desconhecido", func(t *testing.T) {
		services, _ := newCronServices(t)

		rec := doRequest(t, newTestRouter(adminClaims(), CronJobs(services)...), http.MethodPost, "/v1/cron/meta-sync/run", nil)

		assertAPIError(t, rec, http.StatusBadRequest, apiErrors.ErrInvalidRequest)
	})

	t.Run("somente administradores", func(t *testing.T) {
		services, _ := newCronServices(t)

		rec := doRequest(t, newTestRouter(advertiserClaims(7), CronJobs(services)...), http.MethodPost, "/v1/cron/offer-expiry/run", nil)

		assertAPIError(t, rec, http.StatusForbidden, apiErrors.ErrInsufficientPrivilege)
	})
}

func TestCronJobs_Status(t *testing.T) {
	services, _ := newCronServices(t)

	rec := doRequest(t, newTestRouter(adminClaims(), CronJobs(services)...), http.MethodGet, "/v1/cron/status", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	status := decodeResponse[dataResponse[map[string]map[string]any]](t, rec).Data
	require.Contains(t, status, CronJobTypeOfferExpiry)
	assert.Equal(t, "0 2 * * *", status[CronJobTypeOfferExpiry]["sync_cron"])
	assert.Equal(t, false, status[CronJobTypeOfferExpiry]["sync_running"])
}
