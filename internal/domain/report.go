package domain

import (
	"github.com/shopspring/decimal"
)

const (
	DefaultTopN = 5
	MaxTopN     = 50
)

// ReportFilter restringe as consultas ao banco do offerwall
type ReportFilter struct {
	Range         DateRange
	AdvertiserID  *int64
	PublisherName *string
	TopN          int
}

type Totals struct {
	Clicks         int64           `db:"clicks" json:"clicks"`
	Conversions    int64           `db:"conversions" json:"conversions"`
	Revenue        decimal.Decimal `db:"revenue" json:"revenue"`
	Payout         decimal.Decimal `db:"payout" json:"payout"`
	ConversionRate float64         `db:"-" json:"conversion_rate"`
	EPC            decimal.Decimal `db:"-" json:"epc"`
}

type DailyPoint struct {
	Date        string          `db:"day" json:"date"`
	Clicks      int64           `db:"clicks" json:"clicks"`
	Conversions int64           `db:"conversions" json:"conversions"`
	Revenue     decimal.Decimal `db:"revenue" json:"revenue"`
}

type Breakdown struct {
	Key         string          `db:"key" json:"key"`
	Conversions int64           `db:"conversions" json:"conversions"`
	Revenue     decimal.Decimal `db:"revenue" json:"revenue"`
}

type TopOffer struct {
	OfferID     int64           `db:"offer_id" json:"offer_id"`
	OfferName   *string         `db:"-" json:"offer_name"`
	Conversions int64           `db:"conversions" json:"conversions"`
	Revenue     decimal.Decimal `db:"revenue" json:"revenue"`
}

type TopPublisher struct {
	PublisherName string          `db:"publisher_name" json:"publisher_name"`
	Conversions   int64           `db:"conversions" json:"conversions"`
	Revenue       decimal.Decimal `db:"revenue" json:"revenue"`
}

type Dashboard struct {
	Range         DateRange      `json:"range"`
	Totals        Totals         `json:"totals"`
	Trend         []DailyPoint   `json:"trend"`
	ByCountry     []Breakdown    `json:"by_country"`
	ByApp         []Breakdown    `json:"by_app"`
	TopOffers     []TopOffer     `json:"top_offers"`
	TopPublishers []TopPublisher `json:"top_publishers"`
}

type Overview struct {
	Range          DateRange             `json:"range"`
	OffersByStatus map[OfferStatus]int64 `json:"offers_by_status"`
	WalletBalance  *WalletBalance        `json:"wallet"`
	RewardsRevenue decimal.Decimal       `json:"rewards_revenue"`
	Totals         Totals                `json:"totals"`
	Trend          []DailyPoint          `json:"trend"`
}

// OfferName é usado para enriquecer rankings com o nome da oferta
type OfferName struct {
	ID   int64  `db:"id"`
	Name string `db:"offer_name"`
}
