package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const InvoiceContentType = "application/pdf"

type InvoiceUpload struct {
	ID            int64     `db:"id" json:"id"`
	AdvertiserID  int64     `db:"advertiser_id" json:"advertiser_id"`
	InvoiceNumber string    `db:"invoice_number" json:"invoice_number"`
	FileName      string    `db:"file_name" json:"file_name"`
	ContentType   string    `db:"content_type" json:"content_type"`
	SizeBytes     int64     `db:"size_bytes" json:"size_bytes"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	Content       []byte    `db:"file_data" json:"-"`
}

// MonthlyInvoice é calculada a partir da receita do offerwall, não é persistida
type MonthlyInvoice struct {
	Month       string          `db:"month" json:"month"`
	Conversions int64           `db:"conversions" json:"conversions"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	GST         decimal.Decimal `db:"-" json:"gst"`
	Total       decimal.Decimal `db:"-" json:"total"`
}
