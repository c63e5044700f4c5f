package handler

import (
	"net/http"

	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
	"github.com/vfg2006/monetization-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/monetization-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/monetization-dashboard-api/pkg/log"
)

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest
		if err := decodeBody(w, r, &req); err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		session, err := service.Login(r.Context(), &req)
		if err != nil {
			if authenticating.IsCredentialsError(err) {
				log.ForContext(r.Context()).WithField("email", req.Email).Warn("Tentativa de login recusada")
			}
			apiErrors.Handle(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, session)
	}
}

func Register(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.RegisterRequest
		if err := decodeBody(w, r, &req); err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		session, err := service.Register(r.Context(), &req)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, session)
	}
}

// GetMe retorna as informações do login autenticado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := claimsFrom(r)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		profile, err := service.GetProfile(r.Context(), claims.LoginID)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, profile)
	}
}
