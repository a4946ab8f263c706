package withdrawalservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/adrewards/backend/internal/domain"
	"github.com/adrewards/backend/internal/payout"
	"github.com/adrewards/backend/internal/pg"
	"github.com/adrewards/backend/internal/service/ledgerservice"
)

//go:generate mockgen -source=withdrawalservice.go -destination=mock_withdrawalservice.go -package=withdrawalservice

type WithdrawalRepo interface {
	Create(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error)
	GetByUserID(ctx context.Context, userID string) ([]domain.Withdrawal, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type WalletRepo interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Wallet, error)
}

type Ledger interface {
	ProcessWithdrawal(ctx context.Context, userID string, amountUsd decimal.Decimal, withdrawalRef string) (*domain.Transaction, error)
}

type RateSource interface {
	Rate(currency string) decimal.Decimal
}

type AuditRepo interface {
	Create(ctx context.Context, action string, correlationID uuid.UUID, details any) error
}

var (
	ErrWalletNotFound    = errors.New("wallet not found")
	ErrInvalidAmount     = errors.New("withdrawal amount must be positive")
	ErrInsufficientCash  = errors.New("insufficient cash balance")
	ErrPayoutUnavailable = errors.New("payout provider unavailable")
)

// Request describes one withdrawal attempt. Recipient is the payout
// identifier at the provider; Currency selects the payout currency, USD
// when empty.
type Request struct {
	AmountUsd decimal.Decimal
	Currency  string
	Recipient string
}

type Service struct {
	withdrawalRepo WithdrawalRepo
	walletRepo     WalletRepo
	ledger         Ledger
	rates          RateSource
	provider       payout.ProviderI
	auditRepo      AuditRepo
	txManager      pg.TXManager
}

func New(withdrawalRepo WithdrawalRepo, walletRepo WalletRepo, ledger Ledger, rates RateSource, provider payout.ProviderI, auditRepo AuditRepo, txManager pg.TXManager) *Service {
	return &Service{
		withdrawalRepo: withdrawalRepo,
		walletRepo:     walletRepo,
		ledger:         ledger,
		rates:          rates,
		provider:       provider,
		auditRepo:      auditRepo,
		txManager:      txManager,
	}
}

// Withdraw submits a payout and debits the cash balance. The debit happens
// only after the provider accepted the submission: a provider failure leaves
// the ledger untouched and is retryable. The debit is not held back until
// settlement.
func (s *Service) Withdraw(ctx context.Context, userID string, req Request) (*domain.Withdrawal, error) {
	if !req.AmountUsd.IsPositive() {
		return nil, ErrInvalidAmount
	}
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}
	if wallet.CashBalanceUsd.LessThan(req.AmountUsd) {
		return nil, ErrInsufficientCash
	}

	localAmount := req.AmountUsd.Mul(s.rates.Rate(currency)).Round(2)
	note := fmt.Sprintf("Ad rewards payout: %s USD", req.AmountUsd.StringFixed(2))

	submitted, err := s.provider.CreatePayout(ctx, req.Recipient, localAmount, currency, note)
	if err != nil {
		zap.L().Error("payout submission failed",
			zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrPayoutUnavailable, err)
	}

	withdrawal := &domain.Withdrawal{
		UserID:        userID,
		AmountUsd:     req.AmountUsd,
		Currency:      currency,
		PayoutBatchID: submitted.BatchID,
		Status:        domain.WithdrawalStatusPending,
		ProcessedAt:   time.Now(),
	}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.ledger.ProcessWithdrawal(ctx, userID, req.AmountUsd, submitted.BatchID); err != nil {
			return err
		}
		withdrawal, err = s.withdrawalRepo.Create(ctx, withdrawal)
		return err
	})
	if err != nil {
		// The balance pre-check can lose a race against a concurrent
		// debit; the ledger's in-transaction re-check is authoritative.
		if errors.Is(err, ledgerservice.ErrInsufficientCash) {
			return nil, ErrInsufficientCash
		}
		return nil, err
	}

	if err := s.auditRepo.Create(ctx, domain.AuditActionWithdrawal, uuid.New(), domain.WithdrawalAudit{
		UserID:        userID,
		AmountUsd:     req.AmountUsd,
		Currency:      currency,
		PayoutBatchID: submitted.BatchID,
	}); err != nil {
		zap.L().Warn("failed to write withdrawal audit entry", zap.Error(err))
	}

	zap.L().Info("withdrawal submitted",
		zap.String("userID", userID),
		zap.String("batchID", submitted.BatchID),
		zap.String("amountUsd", req.AmountUsd.String()))
	return withdrawal, nil
}

// RefreshStatuses polls the provider for the user's pending withdrawals and
// records terminal outcomes. Polling failures leave the row pending.
func (s *Service) RefreshStatuses(ctx context.Context, userID string) ([]domain.Withdrawal, error) {
	withdrawals, err := s.withdrawalRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range withdrawals {
		w := &withdrawals[i]
		if w.Status != domain.WithdrawalStatusPending {
			continue
		}
		status, err := s.provider.GetPayoutStatus(ctx, w.PayoutBatchID)
		if err != nil {
			zap.L().Warn("failed to poll payout status",
				zap.String("batchID", w.PayoutBatchID), zap.Error(err))
			continue
		}
		if status == w.Status {
			continue
		}
		if err := s.withdrawalRepo.UpdateStatus(ctx, w.ID, status); err != nil {
			return nil, err
		}
		w.Status = status
	}
	return withdrawals, nil
}
