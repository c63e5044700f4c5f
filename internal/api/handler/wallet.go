package handler

import (
	"net/http"

	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
	"github.com/vfg2006/monetization-dashboard-api/internal/usecases/funding"
	"github.com/vfg2006/monetization-dashboard-api/pkg/apiErrors"
)

func GetWallet(service funding.WalletService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		advertiserID, err := advertiserScope(r)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		balance, err := service.GetBalance(r.Context(), advertiserID)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, balance)
	}
}

func AddFunds(service funding.WalletService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		advertiserID, err := advertiserScope(r)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		var req domain.AddFundsRequest
		if err := decodeBody(w, r, &req); err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		result, err := service.AddFunds(r.Context(), advertiserID, &req)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, result)
	}
}

func ListTransactions(service funding.WalletService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		advertiserID, err := advertiserScope(r)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		page, err := pageRequest(r)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		transactions, err := service.ListTransactions(r.Context(), advertiserID, page, r.URL.Query().Get("type"))
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		writeList(w, r, transactions)
	}
}
