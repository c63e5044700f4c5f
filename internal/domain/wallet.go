package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultCurrency = "USD"

type TransactionType string

const (
	TransactionTopUp      TransactionType = "TOP_UP"
	TransactionSpend      TransactionType = "SPEND"
	TransactionRefund     TransactionType = "REFUND"
	TransactionAdjustment TransactionType = "ADJUSTMENT"
)

type TransactionStatus string

const (
	TransactionSuccess TransactionStatus = "SUCCESS"
	TransactionFailed  TransactionStatus = "FAILED"
	TransactionPending TransactionStatus = "PENDING"
)

// BalanceSource indica de onde veio o saldo atual
type BalanceSource string

const (
	BalanceFromSnapshot     BalanceSource = "snapshot"
	BalanceFromTransactions BalanceSource = "transactions"
)

// WalletSnapshot é uma linha imutável da tabela wallets
type WalletSnapshot struct {
	ID           int64           `db:"id" json:"id"`
	AdvertiserID int64           `db:"advertiser_id" json:"advertiser_id"`
	Balance      decimal.Decimal `db:"balance" json:"balance"`
	Currency     string          `db:"currency" json:"currency"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
}

type Transaction struct {
	ID           int64             `db:"id" json:"id"`
	AdvertiserID int64             `db:"advertiser_id" json:"advertiser_id"`
	Type         TransactionType   `db:"type" json:"type"`
	Status       TransactionStatus `db:"status" json:"status"`
	Amount       decimal.Decimal   `db:"amount" json:"amount"`
	Reference    *string           `db:"reference" json:"reference"`
	Description  *string           `db:"description" json:"description"`
	CreatedAt    time.Time         `db:"created_at" json:"created_at"`
}

type WalletBalance struct {
	AdvertiserID int64           `json:"advertiser_id"`
	Balance      decimal.Decimal `json:"balance"`
	Currency     string          `json:"currency"`
	Source       BalanceSource   `json:"source"`
	UpdatedAt    *time.Time      `json:"updated_at"`
}

type AddFundsRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Reference *string         `json:"reference"`
}

type AddFundsResult struct {
	PreviousBalance decimal.Decimal `json:"previous_balance"`
	Wallet          WalletSnapshot  `json:"wallet"`
	Transaction     Transaction     `json:"transaction"`
}

type TransactionFilter struct {
	PageRequest
	AdvertiserID int64
	Type         *TransactionType
}
