package handler

import (
	"net/http"

	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
	"github.com/vfg2006/monetization-dashboard-api/internal/usecases/offering"
	"github.com/vfg2006/monetization-dashboard-api/pkg/apiErrors"
)

func ListOffers(service offering.OfferService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := claimsFrom(r)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		page, err := pageRequest(r)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		offers, err := service.ListOffers(r.Context(), claims, page, r.URL.Query().Get("status"))
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		writeList(w, r, offers)
	}
}

func GetOffer(service offering.OfferService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := claimsFrom(r)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		id, err := pathID(r, "id")
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		offer, err := service.GetOffer(r.Context(), claims, id)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, offer)
	}
}

func CreateOffer(service offering.OfferService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := claimsFrom(r)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		var req domain.OfferRequest
		if err := decodeBody(w, r, &req); err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		offer, err := service.CreateOffer(r.Context(), claims, &req)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, offer)
	}
}

func UpdateOffer(service offering.OfferService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := claimsFrom(r)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		id, err := pathID(r, "id")
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		var req domain.OfferRequest
		if err := decodeBody(w, r, &req); err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		offer, err := service.UpdateOffer(r.Context(), claims, id, &req)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, offer)
	}
}

func UpdateOfferStatus(service offering.OfferService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := claimsFrom(r)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

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

		offer, err := service.UpdateOfferStatus(r.Context(), claims, id, &req)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, offer)
	}
}

func ListRewards(service offering.OfferService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := claimsFrom(r)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		offerID, err := pathID(r, "id")
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		page, err := pageRequest(r)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		rewards, err := service.ListRewards(r.Context(), claims, offerID, page)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		writeList(w, r, rewards)
	}
}

func CreateReward(service offering.OfferService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := claimsFrom(r)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		offerID, err := pathID(r, "id")
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		var req domain.RewardRequest
		if err := decodeBody(w, r, &req); err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		reward, err := service.CreateReward(r.Context(), claims, offerID, &req)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, reward)
	}
}

func UpdateReward(service offering.OfferService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := claimsFrom(r)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		id, err := pathID(r, "id")
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		var req domain.RewardRequest
		if err := decodeBody(w, r, &req); err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		reward, err := service.UpdateReward(r.Context(), claims, id, &req)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, reward)
	}
}

func DeleteReward(service offering.OfferService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := claimsFrom(r)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		id, err := pathID(r, "id")
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		if err := service.DeleteReward(r.Context(), claims, id); err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
