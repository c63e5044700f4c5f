package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
)

func TestWalletRepository_GetBalance(t *testing.T) {
	t.Run("usa o snapshot mais recente", func(t *testing.T) {
		conn, mock := newMockConn(t)

		mock.ExpectQuery(q("SELECT id, advertiser_id, balance, currency, created_at FROM wallets WHERE advertiser_id = $1 ORDER BY created_at DESC, id DESC LIMIT 1")).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(walletColumns).AddRow(30, 7, "250.75", "USD", fixedTime))

		balance, err := NewWalletRepository(conn).GetBalance(context.Background(), 7)
		require.NoError(t, err)

		assert.Equal(t, "250.75", balance.Balance.String())
		assert.Equal(t, domain.BalanceFromSnapshot, balance.Source)
		assert.Equal(t, fixedTime, *balance.UpdatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("sem snapshot soma as transações", func(t *testing.T) {
		conn, mock := newMockConn(t)

		mock.ExpectQuery(q("FROM wallets")).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(walletColumns))
		mock.ExpectQuery(q("SELECT COALESCE(SUM(CASE WHEN type = 'SPEND' THEN -amount ELSE amount END), 0) FROM transactions WHERE advertiser_id = $1 AND status = $2")).
			WithArgs(int64(7), "SUCCESS").
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("80"))

		balance, err := NewWalletRepository(conn).GetBalance(context.Background(), 7)
		require.NoError(t, err)

		assert.Equal(t, "80", balance.Balance.String())
		assert.Equal(t, domain.BalanceFromTransactions, balance.Source)
		assert.Equal(t, domain.DefaultCurrency, balance.Currency)
		assert.Nil(t, balance.UpdatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestWalletRepository_AddFunds(t *testing.T) {
	t.Run("grava transação, snapshot e rastreio na mesma transação", func(t *testing.T) {
		conn, mock := newMockConn(t)
		amount := decimal.NewFromInt(100)
		reference := stringPtr("PIX-123")

		mock.ExpectBegin()
		mock.ExpectExec(q("SELECT pg_advisory_xact_lock($1)")).
			WithArgs(int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(q("FROM wallets WHERE advertiser_id = $1 ORDER BY created_at DESC, id DESC LIMIT 1")).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(walletColumns).AddRow(30, 7, "50.00", "USD", fixedTime))
		mock.ExpectQuery(q("INSERT INTO transactions (advertiser_id,type,status,amount,reference,description) VALUES ($1,$2,$3,$4,$5,$6) RETURNING")).
			WithArgs(int64(7), "TOP_UP", "SUCCESS", amount, "PIX-123", "Wallet top-up").
			WillReturnRows(sqlmock.NewRows(transactionColumns).
				AddRow(21, 7, "TOP_UP", "SUCCESS", "100", "PIX-123", "Wallet top-up", fixedTime))
		mock.ExpectQuery(q("INSERT INTO wallets (advertiser_id,balance,currency) VALUES ($1,$2,$3) RETURNING")).
			WithArgs(int64(7), decimal.NewFromInt(150), "USD").
			WillReturnRows(sqlmock.NewRows(walletColumns).AddRow(31, 7, "150", "USD", fixedTime))
		mock.ExpectExec(q("INSERT INTO wallet_balance_tracking (advertiser_id,wallet_id,transaction_id,previous_balance,new_balance,delta)")).
			WithArgs(int64(7), int64(31), int64(21), decimal.NewFromInt(50), decimal.NewFromInt(150), amount).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		result, err := NewWalletRepository(conn).AddFunds(context.Background(), 7, amount, reference)
		require.NoError(t, err)

		assert.Equal(t, "50", result.PreviousBalance.String())
		assert.Equal(t, "150", result.Wallet.Balance.String())
		assert.Equal(t, int64(21), result.Transaction.ID)
		assert.Equal(t, domain.TransactionTopUp, result.Transaction.Type)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("falha no rastreio desfaz tudo", func(t *testing.T) {
		conn, mock := newMockConn(t)

		mock.ExpectBegin()
		mock.ExpectExec(q("pg_advisory_xact_lock")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(q("FROM wallets")).
			WillReturnRows(sqlmock.NewRows(walletColumns))
		mock.ExpectQuery(q("FROM transactions")).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("0"))
		mock.ExpectQuery(q("INSERT INTO transactions")).
			WillReturnRows(sqlmock.NewRows(transactionColumns).
				AddRow(22, 7, "TOP_UP", "SUCCESS", "10", nil, "Wallet top-up", fixedTime))
		mock.ExpectQuery(q("INSERT INTO wallets")).
			WillReturnRows(sqlmock.NewRows(walletColumns).AddRow(32, 7, "10", "USD", fixedTime))
		mock.ExpectExec(q("INSERT INTO wallet_balance_tracking")).
			WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		_, err := NewWalletRepository(conn).AddFunds(context.Background(), 7, decimal.NewFromInt(10), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("trava a carteira antes de ler o saldo anterior", func(t *testing.T) {
		conn, mock := newMockConn(t)

		mock.ExpectBegin()
		mock.ExpectExec(q("SELECT pg_advisory_xact_lock($1)")).
			WithArgs(int64(9)).
			WillReturnError(errors.New("lock timeout"))
		mock.ExpectRollback()

		_, err := NewWalletRepository(conn).AddFunds(context.Background(), 9, decimal.NewFromInt(10), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "lock timeout")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
