package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/monetization-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
)

const (
	walletsTable         = "wallets"
	transactionsTable    = "transactions"
	balanceTrackingTable = "wallet_balance_tracking"
)

var (
	walletColumns      = []string{"id", "advertiser_id", "balance", "currency", "created_at"}
	transactionColumns = []string{"id", "advertiser_id", "type", "status", "amount", "reference", "description", "created_at"}
)

type WalletRepository interface {
	GetBalance(ctx context.Context, advertiserID int64) (*domain.WalletBalance, error)
	AddFunds(ctx context.Context, advertiserID int64, amount decimal.Decimal, reference *string) (*domain.AddFundsResult, error)
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) (*domain.Page[domain.Transaction], error)
}

type walletRepository struct {
	conn postgres.Conn
}

func NewWalletRepository(conn postgres.Conn) WalletRepository {
	return &walletRepository{
		conn: conn,
	}
}

func latestSnapshot(ctx context.Context, q postgres.Queryer, advertiserID int64) (*domain.WalletSnapshot, error) {
	return getOne[domain.WalletSnapshot](ctx, q, psql.
		Select(walletColumns...).
		From(walletsTable).
		Where(squirrel.Eq{"advertiser_id": advertiserID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1))
}

// lockWallet serializa as recargas do anunciante até o fim da transação.
// Vale também quando ainda não existe snapshot para travar.
func lockWallet(ctx context.Context, q postgres.Queryer, advertiserID int64) error {
	_, err := exec(ctx, q, psql.
		Select().
		Column(squirrel.Expr("pg_advisory_xact_lock(?)", advertiserID)))
	return err
}

// transactionsBalance soma as transações SUCCESS; SPEND entra negativo
func transactionsBalance(ctx context.Context, q postgres.Queryer, advertiserID int64) (decimal.Decimal, error) {
	sum, err := getOne[decimal.Decimal](ctx, q, psql.
		Select("COALESCE(SUM(CASE WHEN type = 'SPEND' THEN -amount ELSE amount END), 0)").
		From(transactionsTable).
		Where(squirrel.Eq{
			"advertiser_id": advertiserID,
			"status":        domain.TransactionSuccess,
		}))
	if err != nil {
		return decimal.Zero, err
	}

	return *sum, nil
}

// GetBalance usa o snapshot mais recente e, na falta dele, o saldo derivado das transações
func (r *walletRepository) GetBalance(ctx context.Context, advertiserID int64) (*domain.WalletBalance, error) {
	snapshot, err := latestSnapshot(ctx, r.conn, advertiserID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar snapshot da carteira")
	}

	if snapshot != nil {
		return &domain.WalletBalance{
			AdvertiserID: advertiserID,
			Balance:      snapshot.Balance,
			Currency:     snapshot.Currency,
			Source:       domain.BalanceFromSnapshot,
			UpdatedAt:    &snapshot.CreatedAt,
		}, nil
	}

	balance, err := transactionsBalance(ctx, r.conn, advertiserID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao somar transações")
	}

	return &domain.WalletBalance{
		AdvertiserID: advertiserID,
		Balance:      balance,
		Currency:     domain.DefaultCurrency,
		Source:       domain.BalanceFromTransactions,
	}, nil
}

// AddFunds grava transação, novo snapshot e linha de rastreio numa única transação
func (r *walletRepository) AddFunds(ctx context.Context, advertiserID int64, amount decimal.Decimal, reference *string) (*domain.AddFundsResult, error) {
	var result domain.AddFundsResult

	err := r.conn.RunInTransaction(ctx, func(tx *sqlx.Tx) error {
		currency := domain.DefaultCurrency

		if err := lockWallet(ctx, tx, advertiserID); err != nil {
			return errors.Wrap(err, "erro ao travar carteira")
		}

		previous, err := latestSnapshot(ctx, tx, advertiserID)
		if err != nil {
			return errors.Wrap(err, "erro ao buscar saldo anterior")
		}

		if previous != nil {
			result.PreviousBalance = previous.Balance
			currency = previous.Currency
		} else {
			result.PreviousBalance, err = transactionsBalance(ctx, tx, advertiserID)
			if err != nil {
				return errors.Wrap(err, "erro ao somar transações")
			}
		}

		transaction, err := getOne[domain.Transaction](ctx, tx, psql.
			Insert(transactionsTable).
			Columns("advertiser_id", "type", "status", "amount", "reference", "description").
			Values(advertiserID, domain.TransactionTopUp, domain.TransactionSuccess, amount, reference, "Wallet top-up").
			Suffix("RETURNING "+joinColumns(transactionColumns)))
		if err != nil {
			return errors.Wrap(err, "erro ao inserir transação")
		}

		newBalance := result.PreviousBalance.Add(amount)

		wallet, err := getOne[domain.WalletSnapshot](ctx, tx, psql.
			Insert(walletsTable).
			Columns("advertiser_id", "balance", "currency").
			Values(advertiserID, newBalance, currency).
			Suffix("RETURNING "+joinColumns(walletColumns)))
		if err != nil {
			return errors.Wrap(err, "erro ao inserir snapshot da carteira")
		}

		if _, err := exec(ctx, tx, psql.
			Insert(balanceTrackingTable).
			Columns("advertiser_id", "wallet_id", "transaction_id", "previous_balance", "new_balance", "delta").
			Values(advertiserID, wallet.ID, transaction.ID, result.PreviousBalance, newBalance, amount)); err != nil {
			return errors.Wrap(err, "erro ao registrar variação de saldo")
		}

		result.Wallet = *wallet
		result.Transaction = *transaction
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *walletRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) (*domain.Page[domain.Transaction], error) {
	base := psql.Select().
		From(transactionsTable).
		Where(squirrel.Eq{"advertiser_id": filter.AdvertiserID})
	if filter.Type != nil {
		base = base.Where(squirrel.Eq{"type": *filter.Type})
	}
	if filter.Query != "" {
		base = base.Where(searchAny(filter.Query, "reference", "description"))
	}

	page, err := paginate[domain.Transaction](ctx, r.conn, listQuery{
		base:    base,
		columns: transactionColumns,
		orderBy: []string{"created_at DESC", "id DESC"},
	}, filter.PageRequest)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar transações")
	}

	return page, nil
}
