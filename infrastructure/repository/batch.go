package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/monetization-dashboard-api/infrastructure/database/postgres"
)

// BatchAggregate busca, numa única consulta, os agregados de todas as chaves
// e devolve um mapa chave -> linha. Chaves sem linha ficam fora do mapa, e a
// leitura delas retorna o valor zero de R.
func BatchAggregate[K comparable, R any](
	ctx context.Context,
	keys []K,
	query func(ctx context.Context, keys []K) ([]R, error),
	keyFn func(R) K,
) (map[K]R, error) {
	result := make(map[K]R, len(keys))
	if len(keys) == 0 {
		return result, nil
	}

	seen := make(map[K]struct{}, len(keys))
	unique := make([]K, 0, len(keys))
	for _, key := range keys {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, key)
	}

	rows, err := query(ctx, unique)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[keyFn(row)] = row
	}

	return result, nil
}

// aggregateQuery cria a função de consulta usada por BatchAggregate a partir de
// um SELECT que recebe o filtro `<keyColumn> = ANY($n)`
func aggregateQuery[K any, R any](q postgres.Queryer, builder squirrel.SelectBuilder, keyColumn string) func(context.Context, []K) ([]R, error) {
	return func(ctx context.Context, keys []K) ([]R, error) {
		return selectAll[R](ctx, q, builder.Where(keyColumn+" = ANY(?)", pq.Array(keys)))
	}
}
