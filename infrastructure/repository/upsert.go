package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/monetization-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
)

// ErrSubjectNotFound indica que o registro pai da chave natural não existe
var ErrSubjectNotFound = errors.New("registro alvo da aprovação não encontrado")

// naturalKeyTable descreve uma tabela de status que pode ser endereçada pela
// chave primária ou por uma chave natural única. Parent/ParentKey apontam o
// registro que a chave natural referencia.
type naturalKeyTable struct {
	Table      string
	NaturalKey string
	Parent     string
	ParentKey  string
}

// statusChange é o payload gravado pelo upsert
type statusChange struct {
	Status domain.ApprovalStatus
	Note   *string
}

func (c statusChange) setMap() map[string]interface{} {
	values := map[string]interface{}{
		"status":     c.Status,
		"note":       c.Note,
		"updated_at": squirrel.Expr("NOW()"),
	}

	if c.Status == domain.ApprovalStatusApproved {
		values["approved_at"] = squirrel.Expr("NOW()")
	} else {
		values["approved_at"] = nil
	}

	return values
}

// upsertByNaturalKey aplica a mudança de status, nesta ordem: atualiza pela
// chave primária (se ref.ID existir), atualiza pela chave natural e, se nenhuma
// linha foi afetada, insere desde que o registro pai exista. Deve rodar dentro
// de uma transação. Retorna o id da linha.
func upsertByNaturalKey(ctx context.Context, q postgres.Queryer, target naturalKeyTable, ref domain.ApprovalRef, change statusChange) (int64, error) {
	var id int64

	if ref.ID != nil {
		found, err := updateReturningID(ctx, q, psql.
			Update(target.Table).
			SetMap(change.setMap()).
			Where(squirrel.Eq{"id": *ref.ID}).
			Suffix("RETURNING id"), &id)
		if err != nil {
			return 0, errors.Wrapf(err, "erro ao atualizar %s pelo id", target.Table)
		}
		if found {
			return id, nil
		}
	}

	found, err := updateReturningID(ctx, q, psql.
		Update(target.Table).
		SetMap(change.setMap()).
		Where(squirrel.Eq{target.NaturalKey: ref.Key}).
		Suffix("RETURNING id"), &id)
	if err != nil {
		return 0, errors.Wrapf(err, "erro ao atualizar %s pela chave natural", target.Table)
	}
	if found {
		return id, nil
	}

	exists, err := getOne[int](ctx, q, psql.
		Select("1").
		From(target.Parent).
		Where(squirrel.Eq{target.ParentKey: ref.Key}).
		Limit(1))
	if err != nil {
		return 0, errors.Wrapf(err, "erro ao buscar %s", target.Parent)
	}
	if exists == nil {
		return 0, ErrSubjectNotFound
	}

	values := change.setMap()
	values[target.NaturalKey] = ref.Key
	values["created_at"] = squirrel.Expr("NOW()")

	query, args, err := psql.
		Insert(target.Table).
		SetMap(values).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir a query")
	}

	if err := q.GetContext(ctx, &id, query, args...); err != nil {
		return 0, errors.Wrapf(err, "erro ao inserir em %s", target.Table)
	}

	return id, nil
}

func updateReturningID(ctx context.Context, q postgres.Queryer, builder squirrel.UpdateBuilder, id *int64) (bool, error) {
	found, err := getOne[int64](ctx, q, builder)
	if err != nil {
		return false, err
	}
	if found == nil {
		return false, nil
	}

	*id = *found
	return true, nil
}
