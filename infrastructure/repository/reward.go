package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/monetization-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
)

const rewardsTable = "rewards"

var rewardColumns = []string{"id", "offer_id", "advertiser_id", "description", "your_revenue", "created_at"}

type RewardRepository interface {
	ListByOffer(ctx context.Context, offerID int64, page domain.PageRequest) (*domain.Page[domain.Reward], error)
	GetByID(ctx context.Context, id int64) (*domain.Reward, error)
	Create(ctx context.Context, reward *domain.Reward) (*domain.Reward, error)
	UpdateRevenue(ctx context.Context, id int64, revenue decimal.Decimal) (*domain.Reward, error)
	Delete(ctx context.Context, id int64) (bool, error)
	SumRevenue(ctx context.Context, advertiserID int64, dateRange domain.DateRange) (decimal.Decimal, error)
}

type rewardRepository struct {
	conn postgres.Conn
}

func NewRewardRepository(conn postgres.Conn) RewardRepository {
	return &rewardRepository{
		conn: conn,
	}
}

func (r *rewardRepository) ListByOffer(ctx context.Context, offerID int64, page domain.PageRequest) (*domain.Page[domain.Reward], error) {
	base := psql.Select().
		From(rewardsTable).
		Where(squirrel.Eq{"offer_id": offerID})
	if page.Query != "" {
		base = base.Where(searchAny(page.Query, "description"))
	}

	rewards, err := paginate[domain.Reward](ctx, r.conn, listQuery{
		base:    base,
		columns: rewardColumns,
		orderBy: []string{"created_at DESC", "id DESC"},
	}, page)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar rewards")
	}

	return rewards, nil
}

func (r *rewardRepository) GetByID(ctx context.Context, id int64) (*domain.Reward, error) {
	reward, err := getOne[domain.Reward](ctx, r.conn, psql.
		Select(rewardColumns...).
		From(rewardsTable).
		Where(squirrel.Eq{"id": id}))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar reward")
	}

	return reward, nil
}

func (r *rewardRepository) Create(ctx context.Context, reward *domain.Reward) (*domain.Reward, error) {
	created, err := getOne[domain.Reward](ctx, r.conn, psql.
		Insert(rewardsTable).
		Columns("offer_id", "advertiser_id", "description", "your_revenue").
		Values(reward.OfferID, reward.AdvertiserID, reward.Description, reward.YourRevenue).
		Suffix("RETURNING " + joinColumns(rewardColumns)))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao inserir reward")
	}

	return created, nil
}

// UpdateRevenue altera somente your_revenue; os demais campos são imutáveis
func (r *rewardRepository) UpdateRevenue(ctx context.Context, id int64, revenue decimal.Decimal) (*domain.Reward, error) {
	updated, err := getOne[domain.Reward](ctx, r.conn, psql.
		Update(rewardsTable).
		Set("your_revenue", revenue).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(rewardColumns)))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao atualizar reward")
	}

	return updated, nil
}

func (r *rewardRepository) Delete(ctx context.Context, id int64) (bool, error) {
	affected, err := exec(ctx, r.conn, psql.
		Delete(rewardsTable).
		Where(squirrel.Eq{"id": id}))
	if err != nil {
		return false, errors.Wrap(err, "erro ao remover reward")
	}

	return affected > 0, nil
}

func (r *rewardRepository) SumRevenue(ctx context.Context, advertiserID int64, dateRange domain.DateRange) (decimal.Decimal, error) {
	sum, err := getOne[decimal.Decimal](ctx, r.conn, psql.
		Select("COALESCE(SUM(your_revenue), 0)").
		From(rewardsTable).
		Where(squirrel.Eq{"advertiser_id": advertiserID}).
		Where(squirrel.Expr("created_at BETWEEN ? AND ?", dateRange.Start, dateRange.End)))
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "erro ao somar receita de rewards")
	}

	return *sum, nil
}
