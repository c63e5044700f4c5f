package migration

import (
	"context"
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/monetization-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidAdmin = errors.New("email e senha (mínimo 8 caracteres) são obrigatórios")

// SeedAdmin cria o login administrativo inicial no banco de anunciantes.
// Quando o email já existe a senha e o papel são atualizados.
func SeedAdmin(ctx context.Context, q postgres.Queryer, email, password string, cost int) (int64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || len(password) < 8 {
		return 0, ErrInvalidAdmin
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return 0, err
	}

	query, args, err := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Insert("advertiser_logins").
		Columns("email", "password_hash", "role", "active").
		Values(email, string(hash), domain.RoleAdmin, true).
		Suffix(`
			ON CONFLICT (email) DO UPDATE SET
				password_hash = EXCLUDED.password_hash,
				role = EXCLUDED.role,
				active = TRUE,
				updated_at = NOW()
			RETURNING id`).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := q.GetContext(ctx, &id, query, args...); err != nil {
		return 0, err
	}

	return id, nil
}
