package walletservice

import (
	"context"
	"errors"

	"github.com/adrewards/backend/internal/domain"
	"go.uber.org/zap"
)

type WalletRepo interface {
	Ensure(ctx context.Context, userID string) (*domain.Wallet, bool, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Wallet, error)
}

type TransactionRepo interface {
	ListByUserID(ctx context.Context, userID string) ([]domain.Transaction, error)
}

type WithdrawalRepo interface {
	GetByUserID(ctx context.Context, userID string) ([]domain.Withdrawal, error)
}

var ErrWalletNotFound = errors.New("wallet not found")

type Service struct {
	walletRepo     WalletRepo
	txnRepo        TransactionRepo
	withdrawalRepo WithdrawalRepo
}

func New(walletRepo WalletRepo, txnRepo TransactionRepo, withdrawalRepo WithdrawalRepo) *Service {
	return &Service{
		walletRepo:     walletRepo,
		txnRepo:        txnRepo,
		withdrawalRepo: withdrawalRepo,
	}
}

// EnsureWallet provisions the wallet on first authenticated access. The
// upsert underneath makes concurrent first requests converge on one row.
func (s *Service) EnsureWallet(ctx context.Context, userID string) (*domain.Wallet, bool, error) {
	wallet, created, err := s.walletRepo.Ensure(ctx, userID)
	if err != nil {
		zap.L().Error("failed to ensure wallet", zap.Error(err))
		return nil, false, err
	}
	if created {
		zap.L().Info("wallet provisioned", zap.String("userID", userID))
	}
	return wallet, created, nil
}

func (s *Service) GetWallet(ctx context.Context, userID string) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}
	return wallet, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return txns, nil
}

func (s *Service) GetWithdrawals(ctx context.Context, userID string) ([]domain.Withdrawal, error) {
	withdrawals, err := s.withdrawalRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}
