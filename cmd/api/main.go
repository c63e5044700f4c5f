package main

import (
	"context"

	"github.com/vfg2006/monetization-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/monetization-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/monetization-dashboard-api/internal/api"
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
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel, cfg.App.Env)
	log.L.WithFields(log.Fields{"log_level": cfg.App.LogLevel, "app_env": cfg.App.Env}).Info("Logger configurado")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pools, err := postgres.OpenPools(ctx, cfg.Databases)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	advertiserRepo := repository.NewAdvertiserRepository(pools.Advertiser)
	loginRepo := repository.NewLoginRepository(pools.Advertiser)
	offerRepo := repository.NewOfferRepository(pools.Advertiser)
	rewardRepo := repository.NewRewardRepository(pools.Advertiser)
	walletRepo := repository.NewWalletRepository(pools.Advertiser)
	invoiceRepo := repository.NewInvoiceRepository(pools.Advertiser)
	publisherRepo := repository.NewPublisherRepository(pools.Publisher)
	approvalRepo := repository.NewApprovalRepository(pools.Advertiser, pools.Publisher)
	analyticsRepo := repository.NewAnalyticsRepository(pools.Offerwall)

	offerExpirySyncService := scheduler.NewOfferExpirySyncService(offerRepo, cfg)
	if err := offerExpirySyncService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de expiração de ofertas")
	} else {
		log.L.Info("Agendador de expiração de ofertas iniciado com sucesso")
	}

	services := api.Services{
		Authenticator:   authenticating.NewService(loginRepo, advertiserRepo, cfg),
		Offers:          offering.NewService(offerRepo, rewardRepo),
		Wallet:          funding.NewService(walletRepo, cfg),
		Accounts:        account.NewService(advertiserRepo, publisherRepo, approvalRepo, analyticsRepo),
		Approvals:       approving.NewService(approvalRepo),
		Invoices:        invoicing.NewService(invoiceRepo, analyticsRepo, cfg),
		Reporter:        reporting.NewService(analyticsRepo, offerRepo, walletRepo, rewardRepo),
		OfferExpirySync: offerExpirySyncService,
	}

	server, err := api.New(cfg, services, pools.Close)
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}
