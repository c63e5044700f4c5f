package authenticating

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/monetization-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/monetization-dashboard-api/internal/config"
	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
	"github.com/vfg2006/monetization-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{
			Secret:     "test-secret",
			TokenTTL:   time.Hour,
			BcryptCost: bcrypt.MinCost,
		},
	}
}

func newTestService(t *testing.T) (*Service, *mocks.MockLoginRepository, *mocks.MockAdvertiserRepository) {
	ctrl := gomock.NewController(t)

	loginRepo := mocks.NewMockLoginRepository(ctrl)
	advertiserRepo := mocks.NewMockAdvertiserRepository(ctrl)

	service := &Service{
		loginRepo:      loginRepo,
		advertiserRepo: advertiserRepo,
		cfg:            testConfig(),
		now:            time.Now,
	}

	return service, loginRepo, advertiserRepo
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func int64Ptr(v int64) *int64 {
	return &v
}

func assertAuthCode(t *testing.T, err error, code string) {
	t.Helper()

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, code, authErr.Code)
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("cria anunciante e login e devolve token", func(t *testing.T) {
		service, loginRepo, _ := newTestService(t)

		loginRepo.EXPECT().GetByEmail(ctx, "ana@acme.com").Return(nil, nil)
		loginRepo.EXPECT().
			Register(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, advertiser *domain.Advertiser, login *domain.Login) (*domain.Advertiser, *domain.Login, error) {
				assert.Equal(t, "Acme", advertiser.Name)
				assert.Equal(t, domain.RoleAdvertiser, login.Role)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(login.PasswordHash), []byte("s3cretpass")))

				advertiser.ID = 7
				login.ID = 3
				login.AdvertiserID = int64Ptr(7)
				login.Active = true
				return advertiser, login, nil
			})

		session, err := service.Register(ctx, &domain.RegisterRequest{
			AdvertiserName: " Acme ",
			Email:          " Ana@Acme.com",
			Password:       "s3cretpass",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, session.Token)
		assert.Equal(t, int64(7), session.Profile.Advertiser.ID)

		claims, err := service.ValidateToken(session.Token)
		require.NoError(t, err)
		assert.Equal(t, int64(3), claims.LoginID)
		assert.Equal(t, int64(7), *claims.AdvertiserID)
		assert.Equal(t, domain.RoleAdvertiser, claims.Role)
	})

	t.Run("email duplicado retorna conflito", func(t *testing.T) {
		service, loginRepo, _ := newTestService(t)

		loginRepo.EXPECT().GetByEmail(ctx, "ana@acme.com").Return(&domain.Login{ID: 1}, nil)

		_, err := service.Register(ctx, &domain.RegisterRequest{AdvertiserName: "Acme", Email: "ana@acme.com", Password: "s3cretpass"})

		assert.ErrorIs(t, err, ErrUserAlreadyExists)
		assertAuthCode(t, err, apiErrors.ErrUserAlreadyExists)
	})

	t.Run("corrida no cadastro também vira conflito", func(t *testing.T) {
		service, loginRepo, _ := newTestService(t)

		loginRepo.EXPECT().GetByEmail(ctx, gomock.Any()).Return(nil, nil)
		loginRepo.EXPECT().Register(ctx, gomock.Any(), gomock.Any()).
			Return(nil, nil, &pq.Error{Code: "23505"})

		_, err := service.Register(ctx, &domain.RegisterRequest{AdvertiserName: "Acme", Email: "ana@acme.com", Password: "s3cretpass"})

		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("senha curta é recusada sem consultar o banco", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.Register(ctx, &domain.RegisterRequest{AdvertiserName: "Acme", Email: "ana@acme.com", Password: "123"})

		assert.ErrorIs(t, err, ErrWeakPassword)
		assertAuthCode(t, err, apiErrors.ErrInvalidRequest)
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		password string
		login    *domain.Login
		wantErr  error
		wantCode string
	}{
		{
			name:     "login inexistente",
			password: "s3cretpass",
			login:    nil,
			wantErr:  ErrInvalidCredentials,
			wantCode: apiErrors.ErrInvalidCredentials,
		},
		{
			name:     "login desativado",
			password: "s3cretpass",
			login:    &domain.Login{ID: 2, Active: false},
			wantErr:  ErrUserDisabled,
			wantCode: apiErrors.ErrUserDisabled,
		},
		{
			name:     "senha incorreta",
			password: "outrasenha",
			login:    &domain.Login{ID: 2, Active: true, PasswordHash: hashPassword(t, "s3cretpass")},
			wantErr:  ErrInvalidCredentials,
			wantCode: apiErrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, loginRepo, _ := newTestService(t)
			loginRepo.EXPECT().GetByEmail(ctx, "ana@acme.com").Return(tt.login, nil)

			_, err := service.Login(ctx, &domain.LoginRequest{Email: "ana@acme.com", Password: tt.password})

			assert.ErrorIs(t, err, tt.wantErr)
			assertAuthCode(t, err, tt.wantCode)
		})
	}

	t.Run("admin sem anunciante vinculado", func(t *testing.T) {
		service, loginRepo, _ := newTestService(t)
		loginRepo.EXPECT().GetByEmail(ctx, "admin@dash.io").Return(&domain.Login{
			ID:           1,
			Email:        "admin@dash.io",
			Role:         domain.RoleAdmin,
			Active:       true,
			PasswordHash: hashPassword(t, "adminpass"),
		}, nil)

		session, err := service.Login(ctx, &domain.LoginRequest{Email: "admin@dash.io", Password: "adminpass"})
		require.NoError(t, err)

		assert.Nil(t, session.Profile.Advertiser)

		claims, err := service.ValidateToken(session.Token)
		require.NoError(t, err)
		assert.True(t, claims.IsAdmin())
		assert.Nil(t, claims.AdvertiserID)
	})
}

func TestService_ValidateToken(t *testing.T) {
	service, _, _ := newTestService(t)

	t.Run("token expirado", func(t *testing.T) {
		token, err := generateJWT(&domain.Login{ID: 1}, time.Now().Add(-time.Minute), service.cfg.Auth.Secret)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)

		assert.ErrorIs(t, err, ErrExpiredToken)
		assertAuthCode(t, err, apiErrors.ErrExpiredToken)
	})

	t.Run("assinatura de outro segredo", func(t *testing.T) {
		token, err := generateJWT(&domain.Login{ID: 1}, time.Now().Add(time.Hour), "outro-segredo")
		require.NoError(t, err)

		_, err = service.ValidateToken(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
		assertAuthCode(t, err, apiErrors.ErrInvalidToken)
	})

	t.Run("algoritmo none é recusado", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, domain.Claims{LoginID: 1})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = service.ValidateToken(signed)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestService_VerifyLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("login removido invalida o token", func(t *testing.T) {
		service, loginRepo, _ := newTestService(t)
		loginRepo.EXPECT().GetByID(ctx, int64(9)).Return(nil, nil)

		_, err := service.VerifyLogin(ctx, &domain.Claims{LoginID: 9})

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("login ativo", func(t *testing.T) {
		service, loginRepo, _ := newTestService(t)
		loginRepo.EXPECT().GetByID(ctx, int64(9)).Return(&domain.Login{ID: 9, Active: true}, nil)

		login, err := service.VerifyLogin(ctx, &domain.Claims{LoginID: 9})

		require.NoError(t, err)
		assert.Equal(t, int64(9), login.ID)
	})
}
