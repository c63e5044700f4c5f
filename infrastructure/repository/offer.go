package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/monetization-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
)

const offersTable = "offers"

var offerColumns = []string{
	"o.id", "o.advertiser_id", "adv.advertiser_name", "o.offer_name", "o.status", "o.bid", "o.payout",
	"o.tracking_url", "o.country", "o.start_date", "o.end_date", "o.created_at", "o.updated_at",
}

type OfferRepository interface {
	List(ctx context.Context, filter domain.OfferFilter) (*domain.Page[domain.Offer], error)
	GetByID(ctx context.Context, id int64) (*domain.Offer, error)
	Create(ctx context.Context, offer *domain.Offer) (*domain.Offer, error)
	Update(ctx context.Context, offer *domain.Offer) (*domain.Offer, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OfferStatus) (bool, error)
	CountByStatus(ctx context.Context, advertiserID int64) ([]domain.OfferStatusCount, error)
	NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error)
	EndExpired(ctx context.Context, now time.Time) (int64, error)
}

type offerRepository struct {
	conn postgres.Conn
}

func NewOfferRepository(conn postgres.Conn) OfferRepository {
	return &offerRepository{
		conn: conn,
	}
}

func (r *offerRepository) selectOffers() squirrel.SelectBuilder {
	return psql.Select().
		From(offersTable + " o").
		LeftJoin("advertisers adv ON adv.id = o.advertiser_id")
}

func (r *offerRepository) List(ctx context.Context, filter domain.OfferFilter) (*domain.Page[domain.Offer], error) {
	base := r.selectOffers()

	if filter.AdvertiserID != nil {
		base = base.Where(squirrel.Eq{"o.advertiser_id": *filter.AdvertiserID})
	}
	if filter.Status != nil {
		base = base.Where(squirrel.Eq{"o.status": *filter.Status})
	}
	if filter.Query != "" {
		base = base.Where(searchAny(filter.Query, "o.offer_name", "adv.advertiser_name"))
	}

	page, err := paginate[domain.Offer](ctx, r.conn, listQuery{
		base:    base,
		columns: offerColumns,
		orderBy: []string{"o.updated_at DESC", "o.id DESC"},
	}, filter.PageRequest)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar ofertas")
	}

	return page, nil
}

func (r *offerRepository) GetByID(ctx context.Context, id int64) (*domain.Offer, error) {
	offer, err := getOne[domain.Offer](ctx, r.conn, r.selectOffers().
		Columns(offerColumns...).
		Where(squirrel.Eq{"o.id": id}))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar oferta")
	}

	return offer, nil
}

func (r *offerRepository) Create(ctx context.Context, offer *domain.Offer) (*domain.Offer, error) {
	id, err := getOne[int64](ctx, r.conn, psql.
		Insert(offersTable).
		Columns("advertiser_id", "offer_name", "status", "bid", "payout", "tracking_url", "country", "start_date", "end_date").
		Values(
			offer.AdvertiserID,
			offer.Name,
			offer.Status,
			offer.Bid,
			offer.Payout,
			offer.TrackingURL,
			offer.Country,
			offer.StartDate,
			offer.EndDate,
		).
		Suffix("RETURNING id"))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao inserir oferta")
	}

	return r.GetByID(ctx, *id)
}

func (r *offerRepository) Update(ctx context.Context, offer *domain.Offer) (*domain.Offer, error) {
	affected, err := exec(ctx, r.conn, psql.
		Update(offersTable).
		SetMap(map[string]interface{}{
			"offer_name":   offer.Name,
			"status":       offer.Status,
			"bid":          offer.Bid,
			"payout":       offer.Payout,
			"tracking_url": offer.TrackingURL,
			"country":      offer.Country,
			"start_date":   offer.StartDate,
			"end_date":     offer.EndDate,
			"updated_at":   squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": offer.ID}))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao atualizar oferta")
	}
	if affected == 0 {
		return nil, nil
	}

	return r.GetByID(ctx, offer.ID)
}

func (r *offerRepository) UpdateStatus(ctx context.Context, id int64, status domain.OfferStatus) (bool, error) {
	affected, err := exec(ctx, r.conn, psql.
		Update(offersTable).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}))
	if err != nil {
		return false, errors.Wrap(err, "erro ao atualizar status da oferta")
	}

	return affected > 0, nil
}

func (r *offerRepository) CountByStatus(ctx context.Context, advertiserID int64) ([]domain.OfferStatusCount, error) {
	counts, err := selectAll[domain.OfferStatusCount](ctx, r.conn, psql.
		Select("status", "COUNT(*) AS total").
		From(offersTable).
		Where(squirrel.Eq{"advertiser_id": advertiserID}).
		GroupBy("status"))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao contar ofertas por status")
	}

	return counts, nil
}

func (r *offerRepository) NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error) {
	names, err := BatchAggregate(ctx, ids, aggregateQuery[int64, domain.OfferName](r.conn, psql.
		Select("id", "offer_name").
		From(offersTable), "id"), func(o domain.OfferName) int64 { return o.ID })
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar nomes das ofertas")
	}

	result := make(map[int64]string, len(names))
	for id, offer := range names {
		result[id] = offer.Name
	}

	return result, nil
}

// EndExpired encerra ofertas ativas ou pausadas cujo end_date já passou
func (r *offerRepository) EndExpired(ctx context.Context, now time.Time) (int64, error) {
	affected, err := exec(ctx, r.conn, psql.
		Update(offersTable).
		Set("status", domain.OfferStatusEnded).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": []domain.OfferStatus{domain.OfferStatusActive, domain.OfferStatusPaused}}).
		Where(squirrel.Lt{"end_date": now.UTC().Format("2006-01-02")}))
	if err != nil {
		return 0, errors.Wrap(err, "erro ao encerrar ofertas expiradas")
	}

	return affected, nil
}
