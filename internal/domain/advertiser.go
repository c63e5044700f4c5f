package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Advertiser struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"advertiser_name" json:"advertiser_name"`
	Email     string    `db:"email" json:"email"`
	Company   *string   `db:"company" json:"company"`
	Country   *string   `db:"country" json:"country"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// AdvertiserStats são os totais leves anexados a cada linha da listagem administrativa
type AdvertiserStats struct {
	AdvertiserID   int64           `db:"advertiser_id" json:"-"`
	OffersCount    int64           `db:"offers_count" json:"offers_count"`
	ActiveOffers   int64           `db:"active_offers" json:"active_offers"`
	WalletBalance  decimal.Decimal `db:"wallet_balance" json:"wallet_balance"`
	RewardsRevenue decimal.Decimal `db:"rewards_revenue" json:"rewards_revenue"`
}

type AdvertiserListItem struct {
	Advertiser
	Stats AdvertiserStats `json:"stats"`
}

type AdvertiserDetail struct {
	Advertiser
	Stats   AdvertiserStats `json:"stats"`
	Billing *BillingDetails `json:"billing"`
}

type BillingDetails struct {
	AdvertiserID int64     `db:"advertiser_id" json:"advertiser_id"`
	CompanyName  *string   `db:"company_name" json:"company_name"`
	TaxID        *string   `db:"tax_id" json:"tax_id"`
	Address      *string   `db:"address" json:"address"`
	City         *string   `db:"city" json:"city"`
	Country      *string   `db:"country" json:"country"`
	PostalCode   *string   `db:"postal_code" json:"postal_code"`
	BillingEmail *string   `db:"billing_email" json:"billing_email"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// BillingRequest substitui todos os campos de faturamento do anunciante
type BillingRequest struct {
	CompanyName  *string `json:"company_name"`
	TaxID        *string `json:"tax_id"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	Country      *string `json:"country"`
	PostalCode   *string `json:"postal_code"`
	BillingEmail *string `json:"billing_email"`
}
