package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
	"github.com/vfg2006/monetization-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/monetization-dashboard-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/monetization-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestAuthentication(t *testing.T) {
	t.Run("login devolve a sessão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockAuthenticator(ctrl)

		service.EXPECT().
			Login(gomock.Any(), &domain.LoginRequest{Email: "ads@example.com", Password: "s3cret-pass"}).
			Return(&domain.Session{Token: "jwt", ExpiresAt: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)}, nil)

		rec := doRequest(t, newTestRouter(nil, Authentication(service)...), http.MethodPost, "/v1/login", []byte(`{"email":"ads@example.com","password":"s3cret-pass"}`))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "jwt", decodeResponse[dataResponse[domain.Session]](t, rec).Data.Token)
	})

	t.Run("credenciais inválidas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockAuthenticator(ctrl)

		service.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, authenticating.NewAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, ""))

		rec := doRequest(t, newTestRouter(nil, Authentication(service)...), http.MethodPost, "/v1/login", []byte(`{"email":"ads@example.com","password":"wrong"}`))

		assertAPIError(t, rec, http.StatusUnauthorized, apiErrors.ErrInvalidCredentials)
	})

	t.Run("cadastro duplicado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockAuthenticator(ctrl)

		service.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, authenticating.NewAuthError(authenticating.ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, ""))

		rec := doRequest(t, newTestRouter(nil, Authentication(service)...), http.MethodPost, "/v1/register",
			[]byte(`{"advertiser_name":"Acme","email":"ads@example.com","password":"s3cret-pass"}`))

		assertAPIError(t, rec, http.StatusConflict, apiErrors.ErrUserAlreadyExists)
	})

	t.Run("cadastro cria sessão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockAuthenticator(ctrl)

		service.EXPECT().Register(gomock.Any(), gomock.Any()).Return(&domain.Session{Token: "jwt"}, nil)

		rec := doRequest(t, newTestRouter(nil, Authentication(service)...), http.MethodPost, "/v1/register",
			[]byte(`{"advertiser_name":"Acme","email":"new@example.com","password":"s3cret-pass"}`))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("perfil do login autenticado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockAuthenticator(ctrl)

		service.EXPECT().GetProfile(gomock.Any(), int64(10)).
			Return(&domain.Profile{Login: &domain.Login{ID: 10, Email: "ads@example.com"}}, nil)

		rec := doRequest(t, newTestRouter(advertiserClaims(7), Authentication(service)...), http.MethodGet, "/v1/me", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(10), decodeResponse[dataResponse[domain.Profile]](t, rec).Data.Login.ID)
	})
}
