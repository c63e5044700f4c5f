package handler

import (
	"net/http"

	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
	"github.com/vfg2006/monetization-dashboard-api/internal/usecases/account"
	"github.com/vfg2006/monetization-dashboard-api/pkg/apiErrors"
)

func ListPublishers(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := pageRequest(r)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		publishers, err := service.ListPublishers(r.Context(), page)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		writeList(w, r, publishers)
	}
}

func GetPublisher(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		publisher, err := service.GetPublisher(r.Context(), id)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, publisher)
	}
}

func SetPublisherStatus(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		var req domain.StatusRequest
		if err := decodeBody(w, r, &req); err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		approval, err := service.SetPublisherStatus(r.Context(), id, &req)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, approval)
	}
}

func GetPublisherPayout(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		query := r.URL.Query()
		payout, err := service.GetPublisherPayout(r.Context(), id, query.Get("from"), query.Get("to"))
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, payout)
	}
}
