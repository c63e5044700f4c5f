package handler

import (
	"net/http"

	"github.com/vfg2006/monetization-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/monetization-dashboard-api/internal/usecases/account"
	"github.com/vfg2006/monetization-dashboard-api/internal/usecases/approving"
	"github.com/vfg2006/monetization-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/monetization-dashboard-api/internal/usecases/funding"
	"github.com/vfg2006/monetization-dashboard-api/internal/usecases/invoicing"
	"github.com/vfg2006/monetization-dashboard-api/internal/usecases/offering"
	"github.com/vfg2006/monetization-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/monetization-dashboard-api/pkg/metrics"
	"github.com/vfg2006/monetization-dashboard-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Offers(service offering.OfferService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/offers",
			Method:      http.MethodGet,
			Handler:     ListOffers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/offers",
			Method:      http.MethodPost,
			Handler:     CreateOffer(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/offers/:id",
			Method:      http.MethodGet,
			Handler:     GetOffer(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/offers/:id",
			Method:      http.MethodPut,
			Handler:     UpdateOffer(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/offers/:id/status",
			Method:      http.MethodPatch,
			Handler:     UpdateOfferStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/offers/:id/rewards",
			Method:      http.MethodGet,
			Handler:     ListRewards(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/offers/:id/rewards",
			Method:      http.MethodPost,
			Handler:     CreateReward(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/rewards/:id",
			Method:      http.MethodPut,
			Handler:     UpdateReward(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/rewards/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteReward(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Wallet(service funding.WalletService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/wallet",
			Method:      http.MethodGet,
			Handler:     GetWallet(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/wallet/funds",
			Method:      http.MethodPost,
			Handler:     AddFunds(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/wallet/transactions",
			Method:      http.MethodGet,
			Handler:     ListTransactions(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Accounts(service account.AccountService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/billing",
			Method:      http.MethodGet,
			Handler:     GetBilling(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/billing",
			Method:      http.MethodPut,
			Handler:     UpdateBilling(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/admin/advertisers",
			Method:      http.MethodGet,
			Handler:     ListAdvertisers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/advertisers/:id",
			Method:      http.MethodGet,
			Handler:     GetAdvertiser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/publishers",
			Method:      http.MethodGet,
			Handler:     ListPublishers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/publishers/:id",
			Method:      http.MethodGet,
			Handler:     GetPublisher(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/publishers/:id/status",
			Method:      http.MethodPatch,
			Handler:     SetPublisherStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/publishers/:id/payout",
			Method:      http.MethodGet,
			Handler:     GetPublisherPayout(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Approvals(service approving.ApprovalService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/approvals/:kind",
			Method:      http.MethodGet,
			Handler:     ListApprovals(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/approvals/:kind/:id/status",
			Method:      http.MethodPatch,
			Handler:     SetApprovalStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Invoices(service invoicing.InvoiceService, maxUploadBytes int64) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/invoices",
			Method:      http.MethodGet,
			Handler:     ListMonthlyInvoices(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/invoices/uploads",
			Method:      http.MethodGet,
			Handler:     ListInvoiceUploads(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/invoices/uploads",
			Method:      http.MethodPost,
			Handler:     UploadInvoice(service, maxUploadBytes),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/invoices/uploads/:id/download",
			Method:      http.MethodGet,
			Handler:     DownloadInvoice(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/overview",
			Method:      http.MethodGet,
			Handler:     GetOverview(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/admin/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
