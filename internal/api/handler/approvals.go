package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
	"github.com/vfg2006/monetization-dashboard-api/internal/usecases/approving"
	"github.com/vfg2006/monetization-dashboard-api/pkg/apiErrors"
)

func ListApprovals(service approving.ApprovalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := pageRequest(r)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		kind := httprouter.ParamsFromContext(r.Context()).ByName("kind")

		approvals, err := service.List(r.Context(), kind, page, r.URL.Query().Get("status"))
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		writeList(w, r, approvals)
	}
}

// SetApprovalStatus aceita tanto o id da aprovação quanto a chave natural do alvo
func SetApprovalStatus(service approving.ApprovalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		var req domain.StatusRequest
		if err := decodeBody(w, r, &req); err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		approval, err := service.SetStatus(r.Context(), params.ByName("kind"), params.ByName("id"), &req)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, approval)
	}
}
