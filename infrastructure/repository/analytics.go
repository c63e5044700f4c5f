package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/monetization-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
)

const (
	clicksTable      = "offerwall_clicks"
	conversionsTable = "offerwall_conversions"
	revenueTable     = "offerwall_revenue"

	dayExpr   = "to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD')"
	monthExpr = "to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM')"
)

// Dimension é uma coluna permitida nos agrupamentos do offerwall
type Dimension string

const (
	DimensionCountry Dimension = "country"
	DimensionApp     Dimension = "app_id"
)

type AnalyticsRepository interface {
	ClickCount(ctx context.Context, filter domain.ReportFilter) (int64, error)
	ConversionCount(ctx context.Context, filter domain.ReportFilter) (int64, error)
	RevenueSum(ctx context.Context, filter domain.ReportFilter) (revenue, payout decimal.Decimal, err error)
	DailyClicks(ctx context.Context, filter domain.ReportFilter) ([]domain.DailyPoint, error)
	DailyConversions(ctx context.Context, filter domain.ReportFilter) ([]domain.DailyPoint, error)
	DailyRevenue(ctx context.Context, filter domain.ReportFilter) ([]domain.DailyPoint, error)
	RevenueBy(ctx context.Context, dimension Dimension, filter domain.ReportFilter) ([]domain.Breakdown, error)
	TopOffers(ctx context.Context, filter domain.ReportFilter) ([]domain.TopOffer, error)
	TopPublishers(ctx context.Context, filter domain.ReportFilter) ([]domain.TopPublisher, error)
	MonthlyRevenue(ctx context.Context, advertiserID int64, since time.Time) ([]domain.MonthlyInvoice, error)
}

type analyticsRepository struct {
	conn postgres.Conn
}

func NewAnalyticsRepository(conn postgres.Conn) AnalyticsRepository {
	return &analyticsRepository{
		conn: conn,
	}
}

func applyReportFilter(builder squirrel.SelectBuilder, filter domain.ReportFilter) squirrel.SelectBuilder {
	builder = builder.Where(squirrel.Expr("created_at BETWEEN ? AND ?", filter.Range.Start, filter.Range.End))
	if filter.AdvertiserID != nil {
		builder = builder.Where(squirrel.Eq{"advertiser_id": *filter.AdvertiserID})
	}
	if filter.PublisherName != nil {
		builder = builder.Where(squirrel.Eq{"publisher_name": *filter.PublisherName})
	}
	return builder
}

func topN(filter domain.ReportFilter) uint64 {
	if filter.TopN <= 0 {
		return domain.DefaultTopN
	}
	if filter.TopN > domain.MaxTopN {
		return domain.MaxTopN
	}
	return uint64(filter.TopN)
}

func (r *analyticsRepository) count(ctx context.Context, table string, filter domain.ReportFilter) (int64, error) {
	total, err := getOne[int64](ctx, r.conn, applyReportFilter(psql.
		Select("COUNT(*)").
		From(table), filter))
	if err != nil {
		return 0, errors.Wrapf(err, "erro ao contar %s", table)
	}

	return *total, nil
}

func (r *analyticsRepository) ClickCount(ctx context.Context, filter domain.ReportFilter) (int64, error) {
	return r.count(ctx, clicksTable, filter)
}

func (r *analyticsRepository) ConversionCount(ctx context.Context, filter domain.ReportFilter) (int64, error) {
	return r.count(ctx, conversionsTable, filter)
}

func (r *analyticsRepository) RevenueSum(ctx context.Context, filter domain.ReportFilter) (decimal.Decimal, decimal.Decimal, error) {
	totals, err := getOne[domain.Totals](ctx, r.conn, applyReportFilter(psql.
		Select("COALESCE(SUM(revenue), 0) AS revenue", "COALESCE(SUM(payout), 0) AS payout").
		From(revenueTable), filter))
	if err != nil {
		return decimal.Zero, decimal.Zero, errors.Wrap(err, "erro ao somar receita")
	}

	return totals.Revenue, totals.Payout, nil
}

func (r *analyticsRepository) daily(ctx context.Context, table, aggregate string, filter domain.ReportFilter) ([]domain.DailyPoint, error) {
	points, err := selectAll[domain.DailyPoint](ctx, r.conn, applyReportFilter(psql.
		Select(dayExpr+" AS day", aggregate).
		From(table), filter).
		GroupBy("day").
		OrderBy("day"))
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao agrupar %s por dia", table)
	}

	return points, nil
}

func (r *analyticsRepository) DailyClicks(ctx context.Context, filter domain.ReportFilter) ([]domain.DailyPoint, error) {
	return r.daily(ctx, clicksTable, "COUNT(*) AS clicks", filter)
}

func (r *analyticsRepository) DailyConversions(ctx context.Context, filter domain.ReportFilter) ([]domain.DailyPoint, error) {
	return r.daily(ctx, conversionsTable, "COUNT(*) AS conversions", filter)
}

func (r *analyticsRepository) DailyRevenue(ctx context.Context, filter domain.ReportFilter) ([]domain.DailyPoint, error) {
	return r.daily(ctx, revenueTable, "COALESCE(SUM(revenue), 0) AS revenue", filter)
}

// RevenueBy agrupa a receita pela dimensão; só colunas conhecidas entram no SQL
func (r *analyticsRepository) RevenueBy(ctx context.Context, dimension Dimension, filter domain.ReportFilter) ([]domain.Breakdown, error) {
	switch dimension {
	case DimensionCountry, DimensionApp:
	default:
		return nil, fmt.Errorf("dimensão inválida: %s", dimension)
	}

	column := string(dimension)

	rows, err := selectAll[domain.Breakdown](ctx, r.conn, applyReportFilter(psql.
		Select(
			"COALESCE("+column+", 'unknown') AS key",
			"COUNT(*) AS conversions",
			"COALESCE(SUM(revenue), 0) AS revenue",
		).
		From(revenueTable), filter).
		GroupBy("key").
		OrderBy("revenue DESC", "key").
		Limit(topN(filter)))
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao agrupar receita por %s", column)
	}

	return rows, nil
}

func (r *analyticsRepository) TopOffers(ctx context.Context, filter domain.ReportFilter) ([]domain.TopOffer, error) {
	rows, err := selectAll[domain.TopOffer](ctx, r.conn, applyReportFilter(psql.
		Select("offer_id", "COUNT(*) AS conversions", "COALESCE(SUM(revenue), 0) AS revenue").
		From(revenueTable), filter).
		GroupBy("offer_id").
		OrderBy("revenue DESC", "offer_id").
		Limit(topN(filter)))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar ranking de ofertas")
	}

	return rows, nil
}

func (r *analyticsRepository) TopPublishers(ctx context.Context, filter domain.ReportFilter) ([]domain.TopPublisher, error) {
	rows, err := selectAll[domain.TopPublisher](ctx, r.conn, applyReportFilter(psql.
		Select("publisher_name", "COUNT(*) AS conversions", "COALESCE(SUM(revenue), 0) AS revenue").
		From(revenueTable), filter).
		GroupBy("publisher_name").
		OrderBy("revenue DESC", "publisher_name").
		Limit(topN(filter)))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar ranking de publishers")
	}

	return rows, nil
}

// MonthlyRevenue consolida a receita do anunciante por mês, do mais recente ao mais antigo
func (r *analyticsRepository) MonthlyRevenue(ctx context.Context, advertiserID int64, since time.Time) ([]domain.MonthlyInvoice, error) {
	rows, err := selectAll[domain.MonthlyInvoice](ctx, r.conn, psql.
		Select(monthExpr+" AS month", "COUNT(*) AS conversions", "COALESCE(SUM(revenue), 0) AS amount").
		From(revenueTable).
		Where(squirrel.Eq{"advertiser_id": advertiserID}).
		Where(squirrel.GtOrEq{"created_at": since}).
		GroupBy("month").
		OrderBy("month DESC"))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consolidar receita mensal")
	}

	return rows, nil
}
