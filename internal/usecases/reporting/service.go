package reporting

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/monetization-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
	"github.com/vfg2006/monetization-dashboard-api/pkg/log"
	"github.com/vfg2006/monetization-dashboard-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

type Reporter interface {
	// Dashboard consolida os KPIs de todo o offerwall para o painel administrativo
	Dashboard(ctx context.Context, from, to string, top int) (*domain.Dashboard, error)

	// Overview resume ofertas, carteira e desempenho de um anunciante
	Overview(ctx context.Context, advertiserID int64, from, to string) (*domain.Overview, error)
}

type Service struct {
	analyticsRepo repository.AnalyticsRepository
	offerRepo     repository.OfferRepository
	walletRepo    repository.WalletRepository
	rewardRepo    repository.RewardRepository
	now           func() time.Time
}

func NewService(
	analyticsRepo repository.AnalyticsRepository,
	offerRepo repository.OfferRepository,
	walletRepo repository.WalletRepository,
	rewardRepo repository.RewardRepository,
) Reporter {
	return &Service{
		analyticsRepo: analyticsRepo,
		offerRepo:     offerRepo,
		walletRepo:    walletRepo,
		rewardRepo:    rewardRepo,
		now:           time.Now,
	}
}

// Dashboard dispara todas as consultas em paralelo; a primeira falha cancela as demais
func (s *Service) Dashboard(ctx context.Context, from, to string, top int) (*domain.Dashboard, error) {
	dateRange, err := utils.NormalizeWindow(from, to, s.now())
	if err != nil {
		return nil, err
	}

	filter := domain.ReportFilter{Range: dateRange, TopN: top}
	dashboard := &domain.Dashboard{Range: dateRange}

	var (
		totals    domain.Totals
		trend     []domain.DailyPoint
		offerName map[int64]string
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		totals, err = s.totals(gctx, filter)
		return err
	})

	g.Go(func() error {
		var err error
		trend, err = s.trend(gctx, filter)
		return err
	})

	g.Go(func() error {
		var err error
		dashboard.ByCountry, err = s.analyticsRepo.RevenueBy(gctx, repository.DimensionCountry, filter)
		return err
	})

	g.Go(func() error {
		var err error
		dashboard.ByApp, err = s.analyticsRepo.RevenueBy(gctx, repository.DimensionApp, filter)
		return err
	})

	g.Go(func() error {
		var err error
		dashboard.TopOffers, err = s.analyticsRepo.TopOffers(gctx, filter)
		if err != nil {
			return err
		}

		offerIDs := make([]int64, 0, len(dashboard.TopOffers))
		for _, offer := range dashboard.TopOffers {
			offerIDs = append(offerIDs, offer.OfferID)
		}

		// as ofertas ficam no banco do anunciante, então o nome vem numa segunda consulta
		offerName, err = s.offerRepo.NamesByIDs(gctx, offerIDs)
		return err
	})

	g.Go(func() error {
		var err error
		dashboard.TopPublishers, err = s.analyticsRepo.TopPublishers(gctx, filter)
		return err
	})

	if err := g.Wait(); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao montar dashboard")
		return nil, err
	}

	for i := range dashboard.TopOffers {
		if name, ok := offerName[dashboard.TopOffers[i].OfferID]; ok {
			dashboard.TopOffers[i].OfferName = &name
		}
	}

	dashboard.Totals = totals
	dashboard.Trend = trend
	dashboard.ByCountry = nonNil(dashboard.ByCountry)
	dashboard.ByApp = nonNil(dashboard.ByApp)
	dashboard.TopOffers = nonNil(dashboard.TopOffers)
	dashboard.TopPublishers = nonNil(dashboard.TopPublishers)

	return dashboard, nil
}

func (s *Service) Overview(ctx context.Context, advertiserID int64, from, to string) (*domain.Overview, error) {
	dateRange, err := utils.NormalizeWindow(from, to, s.now())
	if err != nil {
		return nil, err
	}

	filter := domain.ReportFilter{Range: dateRange, AdvertiserID: &advertiserID}
	overview := &domain.Overview{Range: dateRange}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		counts, err := s.offerRepo.CountByStatus(gctx, advertiserID)
		if err != nil {
			return err
		}

		overview.OffersByStatus = make(map[domain.OfferStatus]int64, len(domain.OfferStatuses))
		for _, status := range domain.OfferStatuses {
			overview.OffersByStatus[status] = 0
		}
		for _, count := range counts {
			overview.OffersByStatus[count.Status] = count.Total
		}

		return nil
	})

	g.Go(func() error {
		var err error
		overview.WalletBalance, err = s.walletRepo.GetBalance(gctx, advertiserID)
		return err
	})

	g.Go(func() error {
		var err error
		overview.RewardsRevenue, err = s.rewardRepo.SumRevenue(gctx, advertiserID, dateRange)
		return err
	})

	g.Go(func() error {
		var err error
		overview.Totals, err = s.totals(gctx, filter)
		return err
	})

	g.Go(func() error {
		var err error
		overview.Trend, err = s.trend(gctx, filter)
		return err
	})

	if err := g.Wait(); err != nil {
		log.ForContext(ctx).WithError(err).WithField("advertiser_id", advertiserID).Error("Erro ao montar overview")
		return nil, err
	}

	return overview, nil
}

func (s *Service) totals(ctx context.Context, filter domain.ReportFilter) (domain.Totals, error) {
	var totals domain.Totals

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		totals.Clicks, err = s.analyticsRepo.ClickCount(gctx, filter)
		return err
	})

	g.Go(func() error {
		var err error
		totals.Conversions, err = s.analyticsRepo.ConversionCount(gctx, filter)
		return err
	})

	g.Go(func() error {
		var err error
		totals.Revenue, totals.Payout, err = s.analyticsRepo.RevenueSum(gctx, filter)
		return err
	})

	if err := g.Wait(); err != nil {
		return domain.Totals{}, err
	}

	return ComputeRates(totals), nil
}

// trend funde as três séries diárias e preenche com zero os dias sem movimento
func (s *Service) trend(ctx context.Context, filter domain.ReportFilter) ([]domain.DailyPoint, error) {
	var clicks, conversions, revenue []domain.DailyPoint

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		clicks, err = s.analyticsRepo.DailyClicks(gctx, filter)
		return err
	})

	g.Go(func() error {
		var err error
		conversions, err = s.analyticsRepo.DailyConversions(gctx, filter)
		return err
	})

	g.Go(func() error {
		var err error
		revenue, err = s.analyticsRepo.DailyRevenue(gctx, filter)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return MergeTrend(filter.Range, clicks, conversions, revenue), nil
}

// ComputeRates preenche taxa de conversão (percentual) e EPC a partir dos totais.
// Sem cliques as duas ficam em zero.
func ComputeRates(totals domain.Totals) domain.Totals {
	totals.Revenue = totals.Revenue.Round(2)
	totals.Payout = totals.Payout.Round(2)
	totals.ConversionRate = 0
	totals.EPC = decimal.Zero

	if totals.Clicks == 0 {
		return totals
	}

	clicks := decimal.NewFromInt(totals.Clicks)
	totals.ConversionRate = decimal.NewFromInt(totals.Conversions).
		Div(clicks).
		Mul(decimal.NewFromInt(100)).
		Round(2).
		InexactFloat64()
	totals.EPC = totals.Revenue.Div(clicks).Round(4)

	return totals
}

func MergeTrend(dateRange domain.DateRange, clicks, conversions, revenue []domain.DailyPoint) []domain.DailyPoint {
	days := dateRange.Days()

	points := make([]domain.DailyPoint, len(days))
	index := make(map[string]int, len(days))
	for i, day := range days {
		date := day.Format(utils.DateLayout)
		points[i] = domain.DailyPoint{Date: date, Revenue: decimal.Zero}
		index[date] = i
	}

	for _, point := range clicks {
		if i, ok := index[point.Date]; ok {
			points[i].Clicks = point.Clicks
		}
	}

	for _, point := range conversions {
		if i, ok := index[point.Date]; ok {
			points[i].Conversions = point.Conversions
		}
	}

	for _, point := range revenue {
		if i, ok := index[point.Date]; ok {
			points[i].Revenue = point.Revenue.Round(2)
		}
	}

	return points
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
