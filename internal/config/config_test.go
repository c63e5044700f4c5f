package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("valores padrão", func(t *testing.T) {
		viper.Reset()

		cfg, err := NewConfig()
		require.NoError(t, err)

		assert.Equal(t, "development", cfg.App.Env)
		assert.False(t, cfg.IsProduction())
		assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
		assert.Equal(t, 10.0, cfg.Wallet.MinTopUp)
		assert.Equal(t, 1000000.0, cfg.Wallet.MaxTopUp)
		assert.Equal(t, int64(5<<20), cfg.Upload.MaxBytes)
		assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.Cors.AllowedOrigins)
		assert.False(t, cfg.OfferExpirySync.Enabled)

		require.Len(t, cfg.Databases, 3)
		for _, name := range []string{AdvertiserDatabase, PublisherDatabase, OfferwallDatabase} {
			assert.Equal(t, name, cfg.Databases[name].Name)
		}
	})

	t.Run("variáveis de ambiente sobrescrevem", func(t *testing.T) {
		viper.Reset()

		t.Setenv("APP_ENV", "production")
		t.Setenv("AUTH_TOKEN_TTL", "2h")
		t.Setenv("UPLOAD_MAX_BYTES", "1024")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://dash.example.com")
		t.Setenv("PUBLISHER_DATABASE_URL", "db.internal:5432/publisher")
		t.Setenv("PUBLISHER_DATABASE_USER", "reader")
		t.Setenv("PUBLISHER_DATABASE_PASSWORD", "pw")
		t.Setenv("PUBLISHER_DATABASE_MAX_OPEN_CONNS", "25")

		cfg, err := NewConfig()
		require.NoError(t, err)

		assert.True(t, cfg.IsProduction())
		assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
		assert.Equal(t, int64(1024), cfg.Upload.MaxBytes)
		assert.Equal(t, []string{"https://dash.example.com"}, cfg.Cors.AllowedOrigins)

		publisher := cfg.Databases[PublisherDatabase]
		assert.Equal(t, "postgres://reader:pw@db.internal:5432/publisher?sslmode=disable", publisher.DSN)
		assert.Equal(t, 25, publisher.MaxOpenConns)
		assert.Equal(t, 30*time.Minute, publisher.ConnMaxLifetime)
	})
}
