package migration

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"slices"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/monetization-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/monetization-dashboard-api/internal/config"
)

//go:embed sql
var files embed.FS

// Databases lista os bancos lógicos na ordem em que as migrações são aplicadas
var Databases = []string{config.AdvertiserDatabase, config.PublisherDatabase, config.OfferwallDatabase}

var ErrUnknownDatabase = errors.New("banco lógico desconhecido")

// Runner aplica as migrações embutidas de um banco lógico
type Runner struct {
	name    string
	migrate *migrate.Migrate
}

// Source devolve o diretório de migrações de um banco lógico
func Source(name string) (fs.FS, error) {
	if !slices.Contains(Databases, name) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDatabase, name)
	}
	return fs.Sub(files, "sql/"+name)
}

func NewRunner(conn *postgres.Connection) (*Runner, error) {
	if _, err := Source(conn.Name()); err != nil {
		return nil, err
	}

	source, err := iofs.New(files, "sql/"+conn.Name())
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir migrações de %s: %w", conn.Name(), err)
	}

	driver, err := pgmigrate.WithInstance(conn.DB.DB, &pgmigrate.Config{})
	if err != nil {
		return nil, fmt.Errorf("erro ao preparar driver de migração de %s: %w", conn.Name(), err)
	}

	m, err := migrate.NewWithInstance("iofs", source, conn.Name(), driver)
	if err != nil {
		return nil, err
	}

	m.Log = migrateLogger{entry: logrus.WithField("database", conn.Name())}

	return &Runner{name: conn.Name(), migrate: m}, nil
}

// Up aplica todas as migrações pendentes. Sem mudanças não é erro.
func (r *Runner) Up() error {
	if err := r.migrate.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("erro ao migrar %s: %w", r.name, err)
	}
	return nil
}

// Down desfaz as últimas n migrações
func (r *Runner) Down(steps int) error {
	if steps <= 0 {
		return errors.New("steps deve ser maior que zero")
	}

	if err := r.migrate.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("erro ao reverter %s: %w", r.name, err)
	}
	return nil
}

// Version devolve a versão atual e se o banco ficou sujo numa migração interrompida
func (r *Runner) Version() (uint, bool, error) {
	version, dirty, err := r.migrate.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

func (r *Runner) Close() error {
	sourceErr, dbErr := r.migrate.Close()
	return errors.Join(sourceErr, dbErr)
}

type migrateLogger struct {
	entry *logrus.Entry
}

func (l migrateLogger) Printf(format string, v ...interface{}) {
	l.entry.Infof(format, v...)
}

func (l migrateLogger) Verbose() bool {
	return false
}
