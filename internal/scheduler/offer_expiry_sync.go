package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/monetization-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/monetization-dashboard-api/internal/config"
	"github.com/vfg2006/monetization-dashboard-api/pkg/log"
	"github.com/vfg2006/monetization-dashboard-api/pkg/metrics"
)

// ErrSyncRunning indica que já existe uma execução em andamento
var ErrSyncRunning = errors.New("sincronização de expiração de ofertas já em andamento")

// OfferExpirySyncConfig representa a configuração do agendador de expiração de ofertas
type OfferExpirySyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// OfferExpirySyncService encerra periodicamente as ofertas cuja end_date já passou
type OfferExpirySyncService struct {
	scheduler           *gocron.Scheduler
	config              OfferExpirySyncConfig
	offerRepo           repository.OfferRepository
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncEnded       int64
	lastSyncError       string
}

// NewOfferExpirySyncService cria uma nova instância do serviço de expiração de ofertas
func NewOfferExpirySyncService(offerRepo repository.OfferRepository, appConfig *config.Config) *OfferExpirySyncService {
	syncConfig := OfferExpirySyncConfig{
		CronSchedule: appConfig.OfferExpirySync.CronSchedule,
		SyncEnabled:  appConfig.OfferExpirySync.Enabled,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de expiração de ofertas carregada")

	return &OfferExpirySyncService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    syncConfig,
		offerRepo: offerRepo,
		now:       time.Now,
	}
}

// Start inicia o agendador
func (s *OfferExpirySyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.Info("Expiração automática de ofertas desabilitada por configuração")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de expiração de ofertas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		_, _ = s.RunSync(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar expiração de ofertas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador de expiração de ofertas")
		s.scheduler.Stop()
	}()

	return nil
}

// RunSync executa uma rodada de expiração e devolve quantas ofertas foram encerradas
func (s *OfferExpirySyncService) RunSync(ctx context.Context) (int64, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("Expiração de ofertas já em andamento, ignorando")
		return 0, ErrSyncRunning
	}
	s.syncRunning = true
	startTime := s.now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	ended, err := s.offerRepo.EndExpired(ctx, startTime.UTC())

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastSyncEnded = ended
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()

	if err != nil {
		log.L.WithError(err).Error("Erro ao encerrar ofertas expiradas")
		return 0, err
	}

	metrics.OffersExpired.Add(float64(ended))

	log.L.WithFields(log.Fields{
		"ended":    ended,
		"duration": time.Since(startTime).String(),
	}).Info("Expiração de ofertas concluída")

	return ended, nil
}

// TriggerManualSync inicia manualmente uma rodada em segundo plano.
// Retorna false quando já existe uma execução em andamento.
func (s *OfferExpirySyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		log.L.Info("Expiração de ofertas já em andamento, ignorando solicitação manual")
		return false
	}

	log.L.Info("Iniciando expiração manual de ofertas")
	go func() {
		_, _ = s.RunSync(context.Background())
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *OfferExpirySyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_ended_offers": s.lastSyncEnded,
		"last_sync_error":        s.lastSyncError,
	}
}
