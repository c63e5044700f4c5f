package repository

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/monetization-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

const (
	advertisersTable = "advertisers"
	billingTable     = "billing_details"
)

var (
	advertiserColumns = []string{"id", "advertiser_name", "email", "company", "country", "created_at", "updated_at"}
	billingColumns    = []string{"advertiser_id", "company_name", "tax_id", "address", "city", "country", "postal_code", "billing_email", "updated_at"}
)

type AdvertiserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Advertiser, error)
	List(ctx context.Context, page domain.PageRequest) (*domain.Page[domain.AdvertiserListItem], error)
	GetStats(ctx context.Context, advertiserIDs []int64) (map[int64]domain.AdvertiserStats, error)
	GetBilling(ctx context.Context, advertiserID int64) (*domain.BillingDetails, error)
	UpsertBilling(ctx context.Context, billing *domain.BillingDetails) (*domain.BillingDetails, error)
}

type advertiserRepository struct {
	conn postgres.Conn
}

func NewAdvertiserRepository(conn postgres.Conn) AdvertiserRepository {
	return &advertiserRepository{
		conn: conn,
	}
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}

func (r *advertiserRepository) GetByID(ctx context.Context, id int64) (*domain.Advertiser, error) {
	advertiser, err := getOne[domain.Advertiser](ctx, r.conn, psql.
		Select(advertiserColumns...).
		From(advertisersTable).
		Where(squirrel.Eq{"id": id}))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar anunciante")
	}

	return advertiser, nil
}

func (r *advertiserRepository) List(ctx context.Context, page domain.PageRequest) (*domain.Page[domain.AdvertiserListItem], error) {
	base := psql.Select().From(advertisersTable)
	if page.Query != "" {
		base = base.Where(searchAny(page.Query, "advertiser_name", "email", "company"))
	}

	advertisers, err := paginate[domain.Advertiser](ctx, r.conn, listQuery{
		base:    base,
		columns: advertiserColumns,
		orderBy: []string{"updated_at DESC", "id DESC"},
	}, page)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar anunciantes")
	}

	ids := make([]int64, 0, len(advertisers.Data))
	for _, advertiser := range advertisers.Data {
		ids = append(ids, advertiser.ID)
	}

	stats, err := r.GetStats(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]domain.AdvertiserListItem, 0, len(advertisers.Data))
	for _, advertiser := range advertisers.Data {
		items = append(items, domain.AdvertiserListItem{
			Advertiser: advertiser,
			Stats:      stats[advertiser.ID],
		})
	}

	return domain.NewPage(page, advertisers.Total, items), nil
}

// GetStats anexa contagem de ofertas, saldo atual e receita de rewards com
// uma consulta agregada por tabela, sem N+1
func (r *advertiserRepository) GetStats(ctx context.Context, advertiserIDs []int64) (map[int64]domain.AdvertiserStats, error) {
	result := make(map[int64]domain.AdvertiserStats, len(advertiserIDs))
	if len(advertiserIDs) == 0 {
		return result, nil
	}

	keyFn := func(s domain.AdvertiserStats) int64 { return s.AdvertiserID }

	var offers, wallets, rewards map[int64]domain.AdvertiserStats

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		offers, err = BatchAggregate(gctx, advertiserIDs, aggregateQuery[int64, domain.AdvertiserStats](r.conn, psql.
			Select(
				"advertiser_id",
				"COUNT(*) AS offers_count",
				"COUNT(*) FILTER (WHERE status = 'ACTIVE') AS active_offers",
			).
			From(offersTable).
			GroupBy("advertiser_id"), "advertiser_id"), keyFn)
		return errors.Wrap(err, "erro ao agregar ofertas")
	})

	g.Go(func() error {
		var err error
		wallets, err = BatchAggregate(gctx, advertiserIDs, aggregateQuery[int64, domain.AdvertiserStats](r.conn, psql.
			Select(
				"DISTINCT ON (advertiser_id) advertiser_id",
				"balance AS wallet_balance",
			).
			From(walletsTable).
			OrderBy("advertiser_id", "created_at DESC", "id DESC"), "advertiser_id"), keyFn)
		return errors.Wrap(err, "erro ao agregar saldos")
	})

	g.Go(func() error {
		var err error
		rewards, err = BatchAggregate(gctx, advertiserIDs, aggregateQuery[int64, domain.AdvertiserStats](r.conn, psql.
			Select(
				"advertiser_id",
				"COALESCE(SUM(your_revenue), 0) AS rewards_revenue",
			).
			From(rewardsTable).
			GroupBy("advertiser_id"), "advertiser_id"), keyFn)
		return errors.Wrap(err, "erro ao agregar rewards")
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, id := range advertiserIDs {
		result[id] = domain.AdvertiserStats{
			AdvertiserID:   id,
			OffersCount:    offers[id].OffersCount,
			ActiveOffers:   offers[id].ActiveOffers,
			WalletBalance:  wallets[id].WalletBalance,
			RewardsRevenue: rewards[id].RewardsRevenue,
		}
	}

	return result, nil
}

func (r *advertiserRepository) GetBilling(ctx context.Context, advertiserID int64) (*domain.BillingDetails, error) {
	billing, err := getOne[domain.BillingDetails](ctx, r.conn, psql.
		Select(billingColumns...).
		From(billingTable).
		Where(squirrel.Eq{"advertiser_id": advertiserID}))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar dados de faturamento")
	}

	return billing, nil
}

func (r *advertiserRepository) UpsertBilling(ctx context.Context, billing *domain.BillingDetails) (*domain.BillingDetails, error) {
	saved, err := getOne[domain.BillingDetails](ctx, r.conn, psql.
		Insert(billingTable).
		Columns("advertiser_id", "company_name", "tax_id", "address", "city", "country", "postal_code", "billing_email").
		Values(
			billing.AdvertiserID,
			billing.CompanyName,
			billing.TaxID,
			billing.Address,
			billing.City,
			billing.Country,
			billing.PostalCode,
			billing.BillingEmail,
		).
		Suffix(`
			ON CONFLICT (advertiser_id) DO UPDATE SET
				company_name = EXCLUDED.company_name,
				tax_id = EXCLUDED.tax_id,
				address = EXCLUDED.address,
				city = EXCLUDED.city,
				country = EXCLUDED.country,
				postal_code = EXCLUDED.postal_code,
				billing_email = EXCLUDED.billing_email,
				updated_at = NOW()
			RETURNING ` + joinColumns(billingColumns)))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao salvar dados de faturamento")
	}

	return saved, nil
}
