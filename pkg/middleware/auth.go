package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
	"github.com/vfg2006/monetization-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/monetization-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/monetization-dashboard-api/pkg/log"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

var publicPaths = map[string]bool{
	"/healthcheck": true,
	"/metrics":     true,
	"/v1/login":    true,
	"/v1/register": true,
}

// ClaimsFromContext devolve as claims gravadas pelo AuthMiddleware
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims)
	return claims, ok && claims != nil
}

// WithClaims grava as claims no contexto
func WithClaims(ctx context.Context, claims *domain.Claims) context.Context {
	return context.WithValue(ctx, ContextKeyUser, claims)
}

// AuthMiddleware valida o bearer token e confirma a cada requisição que o login
// ainda existe e está ativo
func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Header Authorization é obrigatório", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader || tokenString == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token Bearer é obrigatório", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				if !authenticating.IsTokenError(err) {
					// falha de parsing sem classificação também é token inválido
					log.ForContext(r.Context()).WithError(err).Warn("Token recusado")
					apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido", nil)
					return
				}
				apiErrors.Handle(w, r, err)
				return
			}

			if _, err := authService.VerifyLogin(r.Context(), claims); err != nil {
				log.ForContext(r.Context()).WithError(err).WithField("login_id", claims.LoginID).Warn("Token de login inexistente ou desativado")
				apiErrors.Handle(w, r, err)
				return
			}

			ctx := WithClaims(r.Context(), claims)
			ctx = log.WithSubject(ctx, claims.LoginID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
