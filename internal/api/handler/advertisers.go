package handler

import (
	"net/http"

	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
	"github.com/vfg2006/monetization-dashboard-api/internal/usecases/account"
	"github.com/vfg2006/monetization-dashboard-api/pkg/apiErrors"
)

func ListAdvertisers(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := pageRequest(r)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		advertisers, err := service.ListAdvertisers(r.Context(), page)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		writeList(w, r, advertisers)
	}
}

func GetAdvertiser(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		advertiser, err := service.GetAdvertiser(r.Context(), id)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, advertiser)
	}
}

func GetBilling(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		advertiserID, err := advertiserScope(r)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		billing, err := service.GetBilling(r.Context(), advertiserID)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, billing)
	}
}

func UpdateBilling(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		advertiserID, err := advertiserScope(r)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		var req domain.BillingRequest
		if err := decodeBody(w, r, &req); err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		billing, err := service.UpdateBilling(r.Context(), advertiserID, &req)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, billing)
	}
}
