package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/monetization-dashboard-api/internal/scheduler"
	"github.com/vfg2006/monetization-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/monetization-dashboard-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeOfferExpiry = "offer-expiry"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	OfferExpirySyncService *scheduler.OfferExpirySyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch cronType {
		case CronJobTypeOfferExpiry:
			if services.OfferExpirySyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de expiração de ofertas não disponível", nil)
				return
			}

			if !services.OfferExpirySyncService.TriggerManualSync() {
				apiErrors.WriteError(w, apiErrors.ErrConflict, "Cron job já está em execução", map[string]any{"type": cronType})
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: offer-expiry", map[string]any{"type": cronType})
			return
		}

		log.ForContext(r.Context()).WithField("type", cronType).Info("Cron job disparada manualmente")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.OfferExpirySyncService != nil {
			status[CronJobTypeOfferExpiry] = services.OfferExpirySyncService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
