package postgres

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/monetization-dashboard-api/internal/config"
)

// Pools agrupa um pool de conexões por banco lógico
type Pools struct {
	Advertiser *Connection
	Publisher  *Connection
	Offerwall  *Connection
}

// OpenPools abre os três pools. Se algum falhar, os já abertos são fechados.
func OpenPools(ctx context.Context, databases map[string]config.Database) (*Pools, error) {
	pools := &Pools{}

	targets := []struct {
		name string
		dst  **Connection
	}{
		{config.AdvertiserDatabase, &pools.Advertiser},
		{config.PublisherDatabase, &pools.Publisher},
		{config.OfferwallDatabase, &pools.Offerwall},
	}

	for _, target := range targets {
		cfg, ok := databases[target.name]
		if !ok {
			_ = pools.Close()
			return nil, errors.New("configuração ausente para o banco " + target.name)
		}

		conn, err := Open(ctx, cfg)
		if err != nil {
			_ = pools.Close()
			return nil, err
		}

		*target.dst = conn

		logrus.WithField("database", target.name).Info("Conexão com PostgreSQL estabelecida com sucesso")
	}

	return pools, nil
}

// Close fecha todos os pools abertos
func (p *Pools) Close() error {
	var errs []error
	for _, conn := range []*Connection{p.Advertiser, p.Publisher, p.Offerwall} {
		if conn == nil {
			continue
		}
		if err := conn.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
