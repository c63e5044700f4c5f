package handler

import (
	"net/http"

	"github.com/vfg2006/monetization-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/monetization-dashboard-api/pkg/apiErrors"
)

func GetDashboard(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		top, err := queryInt(r, "top")
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		query := r.URL.Query()
		dashboard, err := service.Dashboard(r.Context(), query.Get("from"), query.Get("to"), top)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, dashboard)
	}
}

func GetOverview(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		advertiserID, err := advertiserScope(r)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		query := r.URL.Query()
		overview, err := service.Overview(r.Context(), advertiserID, query.Get("from"), query.Get("to"))
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, overview)
	}
}
