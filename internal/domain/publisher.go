package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Publisher struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"publisher_name" json:"publisher_name"`
	Email     *string   `db:"email" json:"email"`
	Website   *string   `db:"website" json:"website"`
	Country   *string   `db:"country" json:"country"`
	Status    *string   `db:"approval_status" json:"approval_status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// PublisherValidation guarda os dados bancários, fiscais e de faturamento enviados pelo publisher
type PublisherValidation struct {
	ID             int64     `db:"id" json:"id"`
	PublisherName  string    `db:"publisher_name" json:"publisher_name"`
	CompanyName    *string   `db:"company_name" json:"company_name"`
	TaxID          *string   `db:"tax_id" json:"tax_id"`
	BankName       *string   `db:"bank_name" json:"bank_name"`
	BankAccount    *string   `db:"bank_account" json:"bank_account"`
	BillingAddress *string   `db:"billing_address" json:"billing_address"`
	Status         string    `db:"status" json:"status"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type PublisherStats struct {
	PublisherName    string          `db:"publisher_name" json:"-"`
	InvoicesCount    int64           `db:"invoices_count" json:"invoices_count"`
	PaidTotal        decimal.Decimal `db:"paid_total" json:"paid_total"`
	ValidationStatus *string         `db:"validation_status" json:"validation_status"`
}

type PublisherListItem struct {
	Publisher
	Stats PublisherStats `json:"stats"`
}

type PublisherDetail struct {
	Publisher
	Stats      PublisherStats       `json:"stats"`
	Validation *PublisherValidation `json:"validation"`
}
