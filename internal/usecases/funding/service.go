package funding

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/monetization-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/monetization-dashboard-api/internal/config"
	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
	"github.com/vfg2006/monetization-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/monetization-dashboard-api/pkg/log"
	"github.com/vfg2006/monetization-dashboard-api/pkg/metrics"
)

var (
	ErrAmountNotPositive      = errors.New("o valor deve ser maior que zero")
	ErrAmountBelowMinimum     = errors.New("valor abaixo do mínimo para recarga")
	ErrAmountAboveMaximum     = errors.New("valor acima do máximo para recarga")
	ErrAmountPrecision        = errors.New("o valor aceita no máximo duas casas decimais")
	ErrInvalidTransactionType = errors.New("tipo de transação inválido")
)

type WalletService interface {
	GetBalance(ctx context.Context, advertiserID int64) (*domain.WalletBalance, error)
	AddFunds(ctx context.Context, advertiserID int64, request *domain.AddFundsRequest) (*domain.AddFundsResult, error)
	ListTransactions(ctx context.Context, advertiserID int64, page domain.PageRequest, transactionType string) (*domain.Page[domain.Transaction], error)
}

type Service struct {
	walletRepo repository.WalletRepository
	minTopUp   decimal.Decimal
	maxTopUp   decimal.Decimal
}

// casas decimais das colunas NUMERIC(14, 2) da carteira
const amountScale = 2

func NewService(walletRepo repository.WalletRepository, cfg *config.Config) WalletService {
	return &Service{
		walletRepo: walletRepo,
		minTopUp:   decimal.NewFromFloat(cfg.Wallet.MinTopUp),
		maxTopUp:   decimal.NewFromFloat(cfg.Wallet.MaxTopUp),
	}
}

func (s *Service) GetBalance(ctx context.Context, advertiserID int64) (*domain.WalletBalance, error) {
	return s.walletRepo.GetBalance(ctx, advertiserID)
}

// AddFunds valida o valor antes de abrir a transação de saldo
func (s *Service) AddFunds(ctx context.Context, advertiserID int64, request *domain.AddFundsRequest) (*domain.AddFundsResult, error) {
	if !request.Amount.IsPositive() {
		return nil, apiErrors.New(ErrAmountNotPositive, apiErrors.ErrAmountBelowMinimum, map[string]any{
			"amount": request.Amount,
		})
	}

	// 10.50 e 10.5 são o mesmo valor; só conta a escala depois de remover zeros à direita
	if !request.Amount.Equal(request.Amount.Truncate(amountScale)) {
		return nil, apiErrors.New(ErrAmountPrecision, apiErrors.ErrInvalidFormat, map[string]any{
			"amount": request.Amount,
		})
	}

	if request.Amount.LessThan(s.minTopUp) {
		return nil, apiErrors.New(ErrAmountBelowMinimum, apiErrors.ErrAmountBelowMinimum, map[string]any{
			"amount":  request.Amount,
			"minimum": s.minTopUp,
		})
	}

	if s.maxTopUp.IsPositive() && request.Amount.GreaterThan(s.maxTopUp) {
		return nil, apiErrors.New(ErrAmountAboveMaximum, apiErrors.ErrAmountAboveMaximum, map[string]any{
			"amount":  request.Amount,
			"maximum": s.maxTopUp,
		})
	}

	result, err := s.walletRepo.AddFunds(ctx, advertiserID, request.Amount, request.Reference)
	metrics.RecordTopUp(request.Amount.InexactFloat64(), err)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"advertiser_id":  advertiserID,
		"amount":         request.Amount.String(),
		"new_balance":    result.Wallet.Balance.String(),
		"transaction_id": result.Transaction.ID,
	}).Info("Recarga de carteira concluída")

	return result, nil
}

func (s *Service) ListTransactions(ctx context.Context, advertiserID int64, page domain.PageRequest, transactionType string) (*domain.Page[domain.Transaction], error) {
	filter := domain.TransactionFilter{
		PageRequest:  page,
		AdvertiserID: advertiserID,
	}

	if transactionType != "" {
		parsed := domain.TransactionType(strings.ToUpper(transactionType))
		switch parsed {
		case domain.TransactionTopUp, domain.TransactionSpend, domain.TransactionRefund, domain.TransactionAdjustment:
			filter.Type = &parsed
		default:
			return nil, apiErrors.New(ErrInvalidTransactionType, apiErrors.ErrInvalidRequest, map[string]any{"type": transactionType})
		}
	}

	return s.walletRepo.ListTransactions(ctx, filter)
}
