package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Reward struct {
	ID           int64           `db:"id" json:"id"`
	OfferID      int64           `db:"offer_id" json:"offer_id"`
	AdvertiserID int64           `db:"advertiser_id" json:"advertiser_id"`
	Description  *string         `db:"description" json:"description"`
	YourRevenue  decimal.Decimal `db:"your_revenue" json:"your_revenue"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
}

type RewardRequest struct {
	YourRevenue *decimal.Decimal `json:"your_revenue"`
	Description *string          `json:"description"`
}
