package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OfferStatus string

const (
	OfferStatusPending OfferStatus = "PENDING"
	OfferStatusActive  OfferStatus = "ACTIVE"
	OfferStatusPaused  OfferStatus = "PAUSED"
	OfferStatusEnded   OfferStatus = "ENDED"
)

var OfferStatuses = []OfferStatus{
	OfferStatusPending,
	OfferStatusActive,
	OfferStatusPaused,
	OfferStatusEnded,
}

// ParseOfferStatus aceita o status em qualquer caixa
func ParseOfferStatus(s string) (OfferStatus, bool) {
	status := OfferStatus(strings.ToUpper(strings.TrimSpace(s)))
	for _, valid := range OfferStatuses {
		if status == valid {
			return status, true
		}
	}
	return "", false
}

type Offer struct {
	ID             int64           `db:"id" json:"id"`
	AdvertiserID   int64           `db:"advertiser_id" json:"advertiser_id"`
	AdvertiserName *string         `db:"advertiser_name" json:"advertiser_name,omitempty"`
	Name           string          `db:"offer_name" json:"offer_name"`
	Status         OfferStatus     `db:"status" json:"status"`
	Bid            decimal.Decimal `db:"bid" json:"bid"`
	Payout         decimal.Decimal `db:"payout" json:"payout"`
	TrackingURL    *string         `db:"tracking_url" json:"tracking_url"`
	Country        *string         `db:"country" json:"country"`
	StartDate      *time.Time      `db:"start_date" json:"start_date"`
	EndDate        *time.Time      `db:"end_date" json:"end_date"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
}

type OfferFilter struct {
	PageRequest
	AdvertiserID *int64
	Status       *OfferStatus
}

// OfferRequest é o corpo de criação e edição. AdvertiserID só é lido para administradores.
type OfferRequest struct {
	AdvertiserID *int64           `json:"advertiser_id"`
	OfferName    string           `json:"offer_name"`
	Status       *string          `json:"status"`
	Bid          *decimal.Decimal `json:"bid"`
	Payout       *decimal.Decimal `json:"payout"`
	TrackingURL  *string          `json:"tracking_url"`
	Country      *string          `json:"country"`
	StartDate    *string          `json:"start_date"`
	EndDate      *string          `json:"end_date"`
}

type StatusRequest struct {
	Status string  `json:"status"`
	Note   *string `json:"note"`
}

// OfferStatusCount é uma linha da contagem de ofertas por status
type OfferStatusCount struct {
	Status OfferStatus `db:"status"`
	Total  int64       `db:"total"`
}
