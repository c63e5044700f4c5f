package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/monetization-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern monta o padrão '%termo%' escapando os curingas do LIKE
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}

// searchAny casa o termo, sem diferenciar caixa, em qualquer uma das colunas
func searchAny(term string, columns ...string) squirrel.Sqlizer {
	pattern := likePattern(term)

	or := squirrel.Or{}
	for _, column := range columns {
		or = append(or, squirrel.Expr("LOWER("+column+") LIKE ?", pattern))
	}

	return or
}

// listQuery descreve uma listagem paginada: o mesmo FROM/WHERE serve para a contagem e para a página
type listQuery struct {
	base    squirrel.SelectBuilder
	columns []string
	orderBy []string
}

// paginate busca o total e a página de forma concorrente. As duas consultas
// não compartilham transação, então o total pode divergir da página sob escrita concorrente.
func paginate[T any](ctx context.Context, q postgres.Queryer, lq listQuery, page domain.PageRequest) (*domain.Page[T], error) {
	countQuery, countArgs, err := lq.base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de contagem")
	}

	pageQuery, pageArgs, err := lq.base.
		Columns(lq.columns...).
		OrderBy(lq.orderBy...).
		Limit(uint64(page.Limit)).
		Offset(page.Offset()).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query da página")
	}

	var (
		total int64
		rows  = make([]T, 0, page.Limit)
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := q.GetContext(gctx, &total, countQuery, countArgs...); err != nil {
			return errors.Wrap(err, "erro ao contar registros")
		}
		return nil
	})

	g.Go(func() error {
		if err := q.SelectContext(gctx, &rows, pageQuery, pageArgs...); err != nil {
			return errors.Wrap(err, "erro ao buscar página")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return domain.NewPage(page, total, rows), nil
}

// getOne executa a query e devolve nil, nil quando não há linha
func getOne[T any](ctx context.Context, q postgres.Queryer, builder squirrel.Sqlizer) (*T, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	var dest T
	if err := q.GetContext(ctx, &dest, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &dest, nil
}

// selectAll executa a query e devolve todas as linhas
func selectAll[T any](ctx context.Context, q postgres.Queryer, builder squirrel.Sqlizer) ([]T, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows := make([]T, 0)
	if err := q.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	return rows, nil
}

// exec executa um comando e devolve as linhas afetadas
func exec(ctx context.Context, q postgres.Queryer, builder squirrel.Sqlizer) (int64, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir a query")
	}

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
