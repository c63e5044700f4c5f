package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleAdvertiser Role = "advertiser"
)

// Login representa uma credencial da tabela advertiser_logins.
// Logins de administradores não possuem anunciante vinculado.
type Login struct {
	ID           int64     `db:"id" json:"id"`
	AdvertiserID *int64    `db:"advertiser_id" json:"advertiser_id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	Active       bool      `db:"active" json:"active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type RegisterRequest struct {
	AdvertiserName string  `json:"advertiser_name"`
	Email          string  `json:"email"`
	Password       string  `json:"password"`
	Company        *string `json:"company"`
	Country        *string `json:"country"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session é devolvida no login e no cadastro
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Profile   *Profile  `json:"profile"`
}

type Profile struct {
	Login      *Login      `json:"login"`
	Advertiser *Advertiser `json:"advertiser,omitempty"`
}

type Claims struct {
	LoginID      int64  `json:"login_id"`
	AdvertiserID *int64 `json:"advertiser_id,omitempty"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
