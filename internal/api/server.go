package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/vfg2006/monetization-dashboard-api/internal/api/handler"
	"github.com/vfg2006/monetization-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/monetization-dashboard-api/internal/config"
	"github.com/vfg2006/monetization-dashboard-api/internal/scheduler"
	"github.com/vfg2006/monetization-dashboard-api/internal/usecases/account"
	"github.com/vfg2006/monetization-dashboard-api/internal/usecases/approving"
	"github.com/vfg2006/monetization-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/monetization-dashboard-api/internal/usecases/funding"
	"github.com/vfg2006/monetization-dashboard-api/internal/usecases/invoicing"
	"github.com/vfg2006/monetization-dashboard-api/internal/usecases/offering"
	"github.com/vfg2006/monetization-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/monetization-dashboard-api/pkg/log"
	"github.com/vfg2006/monetization-dashboard-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services agrupa as dependências expostas pela API
type Services struct {
	Authenticator   authenticating.Authenticator
	Offers          offering.OfferService
	Wallet          funding.WalletService
	Accounts        account.AccountService
	Approvals       approving.ApprovalService
	Invoices        invoicing.InvoiceService
	Reporter        reporting.Reporter
	OfferExpirySync *scheduler.OfferExpirySyncService
}

type Server struct {
	httpServer *http.Server
	onShutdown []func() error
}

func New(cfg *config.Config, services Services, onShutdown ...func() error) (*Server, error) {
	if services.Authenticator == nil {
		return nil, errors.New("autenticador é obrigatório")
	}

	cronServices := handler.CronJobServices{
		OfferExpirySyncService: services.OfferExpirySync,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Offers(services.Offers)...),
		router.WithRoutes(handler.Wallet(services.Wallet)...),
		router.WithRoutes(handler.Accounts(services.Accounts)...),
		router.WithRoutes(handler.Approvals(services.Approvals)...),
		router.WithRoutes(handler.Invoices(services.Invoices, cfg.Upload.MaxBytes)...),
		router.WithRoutes(handler.Reports(services.Reporter)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Cors.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
		onShutdown: onShutdown,
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.L.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}

// Shutdown para o servidor HTTP e depois executa as rotinas de limpeza (pools, agendadores)
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	var errs []error
	for _, fn := range s.onShutdown {
		if err := fn(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
