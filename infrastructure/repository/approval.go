package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/vfg2006/monetization-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
)

type ApprovalRepository interface {
	SetStatus(ctx context.Context, kind domain.ApprovalKind, ref domain.ApprovalRef, status domain.ApprovalStatus, note *string) (*domain.Approval, error)
	List(ctx context.Context, kind domain.ApprovalKind, filter domain.ApprovalFilter) (*domain.Page[domain.Approval], error)
}

// approvalSource liga um tipo de aprovação à tabela, ao banco e ao registro pai usado no enriquecimento
type approvalSource struct {
	target     naturalKeyTable
	conn       postgres.Conn
	from       string
	joins      []string
	columns    []string
	searchable []string
}

type approvalRepository struct {
	sources map[domain.ApprovalKind]approvalSource
}

func NewApprovalRepository(advertiserConn, publisherConn postgres.Conn) ApprovalRepository {
	common := []string{"a.id", "a.status", "a.note", "a.approved_at", "a.created_at", "a.updated_at"}

	return &approvalRepository{
		sources: map[domain.ApprovalKind]approvalSource{
			domain.ApprovalKindOffer: {
				target: naturalKeyTable{Table: "offer_approvals", NaturalKey: "offer_id", Parent: "offers", ParentKey: "id"},
				conn:   advertiserConn,
				from:   "offer_approvals a",
				joins: []string{
					"offers o ON o.id = a.offer_id",
					"advertisers adv ON adv.id = o.advertiser_id",
				},
				columns: append([]string{
					"a.offer_id::text AS subject_key",
					"o.offer_name AS subject_name",
					"adv.advertiser_name AS parent_name",
				}, common...),
				searchable: []string{"o.offer_name", "adv.advertiser_name"},
			},
			domain.ApprovalKindNotification: {
				target: naturalKeyTable{Table: "notification_approvals", NaturalKey: "notification_id", Parent: "notifications", ParentKey: "id"},
				conn:   advertiserConn,
				from:   "notification_approvals a",
				joins: []string{
					"notifications n ON n.id = a.notification_id",
					"advertisers adv ON adv.id = n.advertiser_id",
				},
				columns: append([]string{
					"a.notification_id::text AS subject_key",
					"n.title AS subject_name",
					"adv.advertiser_name AS parent_name",
				}, common...),
				searchable: []string{"n.title"},
			},
			domain.ApprovalKindPublisher: {
				target: naturalKeyTable{Table: "publisher_approvals", NaturalKey: "publisher_name", Parent: "publishers", ParentKey: "publisher_name"},
				conn:   publisherConn,
				from:   "publisher_approvals a",
				joins: []string{
					"publishers p ON p.publisher_name = a.publisher_name",
				},
				columns: append([]string{
					"a.publisher_name AS subject_key",
					"p.publisher_name AS subject_name",
				}, common...),
				searchable: []string{"a.publisher_name"},
			},
		},
	}
}

func (r *approvalRepository) source(kind domain.ApprovalKind) (approvalSource, error) {
	source, ok := r.sources[kind]
	if !ok {
		return approvalSource{}, fmt.Errorf("tipo de aprovação desconhecido: %s", kind)
	}
	return source, nil
}

func (s approvalSource) selectBase() squirrel.SelectBuilder {
	builder := psql.Select().From(s.from)
	for _, join := range s.joins {
		builder = builder.LeftJoin(join)
	}
	return builder
}

func (r *approvalRepository) SetStatus(
	ctx context.Context,
	kind domain.ApprovalKind,
	ref domain.ApprovalRef,
	status domain.ApprovalStatus,
	note *string,
) (*domain.Approval, error) {
	source, err := r.source(kind)
	if err != nil {
		return nil, err
	}

	var approval *domain.Approval
	err = source.conn.RunInTransaction(ctx, func(tx *sqlx.Tx) error {
		id, err := upsertByNaturalKey(ctx, tx, source.target, ref, statusChange{Status: status, Note: note})
		if err != nil {
			return err
		}

		approval, err = getOne[domain.Approval](ctx, tx, source.selectBase().
			Columns(source.columns...).
			Where(squirrel.Eq{"a.id": id}))
		if err != nil {
			return errors.Wrap(err, "erro ao buscar aprovação atualizada")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if approval != nil {
		approval.Kind = kind
	}

	return approval, nil
}

func (r *approvalRepository) List(ctx context.Context, kind domain.ApprovalKind, filter domain.ApprovalFilter) (*domain.Page[domain.Approval], error) {
	source, err := r.source(kind)
	if err != nil {
		return nil, err
	}

	base := source.selectBase()
	if filter.Status != nil {
		base = base.Where(squirrel.Eq{"a.status": *filter.Status})
	}
	if filter.Query != "" {
		base = base.Where(searchAny(filter.Query, source.searchable...))
	}

	page, err := paginate[domain.Approval](ctx, source.conn, listQuery{
		base:    base,
		columns: source.columns,
		orderBy: []string{"a.updated_at DESC", "a.id DESC"},
	}, filter.PageRequest)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao listar aprovações de %s", kind)
	}

	for i := range page.Data {
		page.Data[i].Kind = kind
	}

	return page, nil
}
