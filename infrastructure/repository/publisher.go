package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/monetization-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

const (
	publishersTable            = "publishers"
	publisherValidationsTable  = "publisher_validations"
	publisherInvoicesTable     = "publisher_invoices"
	publisherTransactionsTable = "publisher_transactions"
)

var (
	publisherColumns = []string{
		"p.id", "p.publisher_name", "p.email", "p.website", "p.country",
		"pa.status AS approval_status", "p.created_at", "p.updated_at",
	}
	validationColumns = []string{
		"id", "publisher_name", "company_name", "tax_id", "bank_name",
		"bank_account", "billing_address", "status", "created_at",
	}
)

type PublisherRepository interface {
	List(ctx context.Context, page domain.PageRequest) (*domain.Page[domain.PublisherListItem], error)
	GetByID(ctx context.Context, id int64) (*domain.Publisher, error)
	GetStats(ctx context.Context, names []string) (map[string]domain.PublisherStats, error)
	GetLatestValidation(ctx context.Context, publisherName string) (*domain.PublisherValidation, error)
}

type publisherRepository struct {
	conn postgres.Conn
}

func NewPublisherRepository(conn postgres.Conn) PublisherRepository {
	return &publisherRepository{
		conn: conn,
	}
}

func (r *publisherRepository) selectPublishers() squirrel.SelectBuilder {
	return psql.Select().
		From(publishersTable + " p").
		LeftJoin("publisher_approvals pa ON pa.publisher_name = p.publisher_name")
}

func (r *publisherRepository) List(ctx context.Context, page domain.PageRequest) (*domain.Page[domain.PublisherListItem], error) {
	base := r.selectPublishers()
	if page.Query != "" {
		base = base.Where(searchAny(page.Query, "p.publisher_name", "p.email", "p.website"))
	}

	publishers, err := paginate[domain.Publisher](ctx, r.conn, listQuery{
		base:    base,
		columns: publisherColumns,
		orderBy: []string{"p.updated_at DESC", "p.id DESC"},
	}, page)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar publishers")
	}

	names := make([]string, 0, len(publishers.Data))
	for _, publisher := range publishers.Data {
		names = append(names, publisher.Name)
	}

	stats, err := r.GetStats(ctx, names)
	if err != nil {
		return nil, err
	}

	items := make([]domain.PublisherListItem, 0, len(publishers.Data))
	for _, publisher := range publishers.Data {
		items = append(items, domain.PublisherListItem{
			Publisher: publisher,
			Stats:     stats[publisher.Name],
		})
	}

	return domain.NewPage(page, publishers.Total, items), nil
}

func (r *publisherRepository) GetByID(ctx context.Context, id int64) (*domain.Publisher, error) {
	publisher, err := getOne[domain.Publisher](ctx, r.conn, r.selectPublishers().
		Columns(publisherColumns...).
		Where(squirrel.Eq{"p.id": id}))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar publisher")
	}

	return publisher, nil
}

// GetStats agrega faturas, total pago e a última validação por nome de publisher
func (r *publisherRepository) GetStats(ctx context.Context, names []string) (map[string]domain.PublisherStats, error) {
	result := make(map[string]domain.PublisherStats, len(names))
	if len(names) == 0 {
		return result, nil
	}

	keyFn := func(s domain.PublisherStats) string { return s.PublisherName }

	var invoices, payments, validations map[string]domain.PublisherStats

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		invoices, err = BatchAggregate(gctx, names, aggregateQuery[string, domain.PublisherStats](r.conn, psql.
			Select("publisher_name", "COUNT(*) AS invoices_count").
			From(publisherInvoicesTable).
			GroupBy("publisher_name"), "publisher_name"), keyFn)
		return errors.Wrap(err, "erro ao agregar faturas")
	})

	g.Go(func() error {
		var err error
		payments, err = BatchAggregate(gctx, names, aggregateQuery[string, domain.PublisherStats](r.conn, psql.
			Select("publisher_name", "COALESCE(SUM(amount), 0) AS paid_total").
			From(publisherTransactionsTable).
			Where(squirrel.Eq{"status": domain.TransactionSuccess}).
			GroupBy("publisher_name"), "publisher_name"), keyFn)
		return errors.Wrap(err, "erro ao agregar pagamentos")
	})

	g.Go(func() error {
		var err error
		validations, err = BatchAggregate(gctx, names, aggregateQuery[string, domain.PublisherStats](r.conn, psql.
			Select("DISTINCT ON (publisher_name) publisher_name", "status AS validation_status").
			From(publisherValidationsTable).
			OrderBy("publisher_name", "created_at DESC", "id DESC"), "publisher_name"), keyFn)
		return errors.Wrap(err, "erro ao agregar validações")
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, name := range names {
		result[name] = domain.PublisherStats{
			PublisherName:    name,
			InvoicesCount:    invoices[name].InvoicesCount,
			PaidTotal:        payments[name].PaidTotal,
			ValidationStatus: validations[name].ValidationStatus,
		}
	}

	return result, nil
}

func (r *publisherRepository) GetLatestValidation(ctx context.Context, publisherName string) (*domain.PublisherValidation, error) {
	validation, err := getOne[domain.PublisherValidation](ctx, r.conn, psql.
		Select(validationColumns...).
		From(publisherValidationsTable).
		Where(squirrel.Eq{"publisher_name": publisherName}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar validação do publisher")
	}

	return validation, nil
}
