package ledgerservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/adrewards/backend/internal/domain"
	"github.com/adrewards/backend/internal/pg"
	"go.uber.org/zap"
)

type WalletRepo interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Wallet, error)
	GetForUpdate(ctx context.Context, userID string) (*domain.Wallet, error)
	UpdateBalances(ctx context.Context, w *domain.Wallet) error
}

type TransactionRepo interface {
	Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
	SumDeltasByUser(ctx context.Context, userID string) (int64, decimal.Decimal, error)
}

var (
	ErrWalletNotFound    = errors.New("wallet not found")
	ErrInsufficientCoins = errors.New("insufficient coin balance")
	ErrInsufficientCash  = errors.New("insufficient cash balance")
	ErrInvalidAmount     = errors.New("invalid amount")
)

// Service is the settlement core's ledger. Every operation is one atomic
// unit: lock the wallet row, compute new balances, write the wallet and
// exactly one transaction row carrying post-mutation snapshots.
type Service struct {
	walletRepo WalletRepo
	txnRepo    TransactionRepo
	txManager  pg.TXManager
}

func New(walletRepo WalletRepo, txnRepo TransactionRepo, txManager pg.TXManager) *Service {
	return &Service{
		walletRepo: walletRepo,
		txnRepo:    txnRepo,
		txManager:  txManager,
	}
}

func (s *Service) AwardCoins(ctx context.Context, userID string, amount int64, txType, refID, refType string) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if txType == "" {
		txType = domain.TxTypeCoinEarn
	}
	return s.mutate(ctx, userID, func(w *domain.Wallet) (*domain.Transaction, error) {
		w.CoinsBalance += amount
		w.TotalCoinsEarned += amount
		return &domain.Transaction{
			Type:          txType,
			CoinsDelta:    amount,
			CashDeltaUsd:  decimal.Zero,
			ReferenceID:   refID,
			ReferenceType: refType,
		}, nil
	})
}

// ConvertCoinsToCash debits coins and credits cash at the pool's rate inside
// one unit. Callers pass the already computed cash amount so the pool rate
// stays uniform.
func (s *Service) ConvertCoinsToCash(ctx context.Context, userID string, coins int64, cashUsd decimal.Decimal, poolID uuid.UUID) (*domain.Transaction, error) {
	if coins <= 0 || cashUsd.IsNegative() {
		return nil, ErrInvalidAmount
	}
	return s.mutate(ctx, userID, func(w *domain.Wallet) (*domain.Transaction, error) {
		if w.CoinsBalance < coins {
			return nil, ErrInsufficientCoins
		}
		w.CoinsBalance -= coins
		w.CashBalanceUsd = w.CashBalanceUsd.Add(cashUsd)
		w.TotalCashEarnedUsd = w.TotalCashEarnedUsd.Add(cashUsd)
		return &domain.Transaction{
			Type:          domain.TxTypeCoinConversion,
			CoinsDelta:    -coins,
			CashDeltaUsd:  cashUsd,
			ReferenceID:   poolID.String(),
			ReferenceType: "revenue_pool",
		}, nil
	})
}

func (s *Service) ProcessWithdrawal(ctx context.Context, userID string, amountUsd decimal.Decimal, withdrawalRef string) (*domain.Transaction, error) {
	if !amountUsd.IsPositive() {
		return nil, ErrInvalidAmount
	}
	return s.mutate(ctx, userID, func(w *domain.Wallet) (*domain.Transaction, error) {
		if w.CashBalanceUsd.LessThan(amountUsd) {
			return nil, ErrInsufficientCash
		}
		w.CashBalanceUsd = w.CashBalanceUsd.Sub(amountUsd)
		w.TotalWithdrawnUsd = w.TotalWithdrawnUsd.Add(amountUsd)
		return &domain.Transaction{
			Type:          domain.TxTypeWithdrawal,
			CoinsDelta:    0,
			CashDeltaUsd:  amountUsd.Neg(),
			ReferenceID:   withdrawalRef,
			ReferenceType: "payout",
		}, nil
	})
}

// RecordAdjustment applies operator-supplied signed deltas. The resulting
// balances must stay non-negative, same as every other operation.
func (s *Service) RecordAdjustment(ctx context.Context, userID string, coinsDelta int64, cashDeltaUsd decimal.Decimal, refID, refType string) (*domain.Transaction, error) {
	if coinsDelta == 0 && cashDeltaUsd.IsZero() {
		return nil, ErrInvalidAmount
	}
	return s.mutate(ctx, userID, func(w *domain.Wallet) (*domain.Transaction, error) {
		if w.CoinsBalance+coinsDelta < 0 {
			return nil, ErrInsufficientCoins
		}
		if w.CashBalanceUsd.Add(cashDeltaUsd).IsNegative() {
			return nil, ErrInsufficientCash
		}
		w.CoinsBalance += coinsDelta
		w.CashBalanceUsd = w.CashBalanceUsd.Add(cashDeltaUsd)
		if coinsDelta > 0 {
			w.TotalCoinsEarned += coinsDelta
		}
		return &domain.Transaction{
			Type:          domain.TxTypeAdminAdjustment,
			CoinsDelta:    coinsDelta,
			CashDeltaUsd:  cashDeltaUsd,
			ReferenceID:   refID,
			ReferenceType: refType,
		}, nil
	})
}

// ExpireBalances zeroes the selected balances of an inactive wallet as one
// adjustment. Returns nil when there was nothing to expire.
func (s *Service) ExpireBalances(ctx context.Context, userID string, expireCoins, expireCash bool) (*domain.Transaction, error) {
	var txn *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		w, err := s.walletRepo.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if w == nil {
			return ErrWalletNotFound
		}

		coinsDelta := int64(0)
		cashDelta := decimal.Zero
		if expireCoins && w.CoinsBalance > 0 {
			coinsDelta = -w.CoinsBalance
		}
		if expireCash && w.CashBalanceUsd.IsPositive() {
			cashDelta = w.CashBalanceUsd.Neg()
		}
		if coinsDelta == 0 && cashDelta.IsZero() {
			return nil
		}

		w.CoinsBalance += coinsDelta
		w.CashBalanceUsd = w.CashBalanceUsd.Add(cashDelta)
		if err := s.walletRepo.UpdateBalances(ctx, w); err != nil {
			return err
		}

		txn = &domain.Transaction{
			UserID:              userID,
			Type:                domain.TxTypeAdminAdjustment,
			CoinsDelta:          coinsDelta,
			CashDeltaUsd:        cashDelta,
			CoinsBalanceAfter:   w.CoinsBalance,
			CashBalanceAfterUsd: w.CashBalanceUsd,
			ReferenceID:         "balance_expiry",
			ReferenceType:       "sweep",
		}
		txn, err = s.txnRepo.Create(ctx, txn)
		return err
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// ReconcileReport compares the wallet balances with a replay of all
// transaction deltas from zero.
type ReconcileReport struct {
	UserID      string
	WalletCoins int64
	SummedCoins int64
	WalletCash  decimal.Decimal
	SummedCash  decimal.Decimal
	Consistent  bool
}

func (s *Service) Reconcile(ctx context.Context, userID string) (*ReconcileReport, error) {
	w, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrWalletNotFound
	}
	coins, cash, err := s.txnRepo.SumDeltasByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	report := &ReconcileReport{
		UserID:      userID,
		WalletCoins: w.CoinsBalance,
		SummedCoins: coins,
		WalletCash:  w.CashBalanceUsd,
		SummedCash:  cash,
		Consistent:  w.CoinsBalance == coins && w.CashBalanceUsd.Equal(cash),
	}
	if !report.Consistent {
		zap.L().Error("ledger reconciliation mismatch",
			zap.String("userID", userID),
			zap.Int64("walletCoins", report.WalletCoins),
			zap.Int64("summedCoins", report.SummedCoins),
			zap.String("walletCash", report.WalletCash.String()),
			zap.String("summedCash", report.SummedCash.String()),
		)
	}
	return report, nil
}

// mutate runs one balance mutation as an atomic unit. The wallet row is
// locked first, so concurrent callers for the same user serialize; failures
// roll back everything including the transaction row.
func (s *Service) mutate(ctx context.Context, userID string, apply func(w *domain.Wallet) (*domain.Transaction, error)) (*domain.Transaction, error) {
	var txn *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		w, err := s.walletRepo.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if w == nil {
			return ErrWalletNotFound
		}

		txn, err = apply(w)
		if err != nil {
			return err
		}

		if err := s.walletRepo.UpdateBalances(ctx, w); err != nil {
			return err
		}

		txn.UserID = userID
		txn.CoinsBalanceAfter = w.CoinsBalance
		txn.CashBalanceAfterUsd = w.CashBalanceUsd
		txn, err = s.txnRepo.Create(ctx, txn)
		return err
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}
