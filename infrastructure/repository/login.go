package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/vfg2006/monetization-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
)

const loginsTable = "advertiser_logins"

var loginColumns = []string{"id", "advertiser_id", "email", "password_hash", "role", "active", "created_at", "updated_at"}

type LoginRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Login, error)
	GetByID(ctx context.Context, id int64) (*domain.Login, error)
	Register(ctx context.Context, advertiser *domain.Advertiser, login *domain.Login) (*domain.Advertiser, *domain.Login, error)
}

type loginRepository struct {
	conn postgres.Conn
}

func NewLoginRepository(conn postgres.Conn) LoginRepository {
	return &loginRepository{
		conn: conn,
	}
}

func (r *loginRepository) GetByEmail(ctx context.Context, email string) (*domain.Login, error) {
	login, err := getOne[domain.Login](ctx, r.conn, psql.
		Select(loginColumns...).
		From(loginsTable).
		Where(squirrel.Eq{"email": email}))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar login por email")
	}

	return login, nil
}

func (r *loginRepository) GetByID(ctx context.Context, id int64) (*domain.Login, error) {
	login, err := getOne[domain.Login](ctx, r.conn, psql.
		Select(loginColumns...).
		From(loginsTable).
		Where(squirrel.Eq{"id": id}))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar login por id")
	}

	return login, nil
}

// Register cria o anunciante e seu login na mesma transação
func (r *loginRepository) Register(ctx context.Context, advertiser *domain.Advertiser, login *domain.Login) (*domain.Advertiser, *domain.Login, error) {
	var (
		createdAdvertiser *domain.Advertiser
		createdLogin      *domain.Login
	)

	err := r.conn.RunInTransaction(ctx, func(tx *sqlx.Tx) error {
		var err error

		createdAdvertiser, err = getOne[domain.Advertiser](ctx, tx, psql.
			Insert(advertisersTable).
			Columns("advertiser_name", "email", "company", "country").
			Values(advertiser.Name, advertiser.Email, advertiser.Company, advertiser.Country).
			Suffix("RETURNING " + joinColumns(advertiserColumns)))
		if err != nil {
			return errors.Wrap(err, "erro ao inserir anunciante")
		}

		createdLogin, err = getOne[domain.Login](ctx, tx, psql.
			Insert(loginsTable).
			Columns("advertiser_id", "email", "password_hash", "role", "active").
			Values(createdAdvertiser.ID, login.Email, login.PasswordHash, login.Role, true).
			Suffix("RETURNING " + joinColumns(loginColumns)))
		if err != nil {
			return errors.Wrap(err, "erro ao inserir login")
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return createdAdvertiser, createdLogin, nil
}
