package sweeper

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/adrewards/backend/internal/domain"
)

//go:generate mockgen -source=sweeper.go -destination=mock_sweeper.go -package=sweeper

const batchLimit = 1000

var sweepingWallets sync.Map

type WalletRepo interface {
	FindInactiveWithCoins(ctx context.Context, before time.Time, limit int) ([]domain.Wallet, error)
	FindInactiveWithCash(ctx context.Context, before time.Time, limit int) ([]domain.Wallet, error)
}

type Ledger interface {
	ExpireBalances(ctx context.Context, userID string, expireCoins, expireCash bool) (*domain.Transaction, error)
}

type AuditRepo interface {
	Create(ctx context.Context, action string, correlationID uuid.UUID, details any) error
}

type target struct {
	expireCoins bool
	expireCash  bool
	coins       int64
}

// Service zeroes out balances of wallets inactive past the grace periods:
// coins after coinExpiry, cash after the longer cashExpiry. Runs on a
// ticker and is also invokable directly from the admin surface.
type Service struct {
	walletRepo WalletRepo
	ledger     Ledger
	auditRepo  AuditRepo
	workerPool WorkerPoolI

	coinExpiry    time.Duration
	cashExpiry    time.Duration
	sweepInterval time.Duration
}

func New(walletRepo WalletRepo, ledger Ledger, auditRepo AuditRepo, coinExpiry, cashExpiry, sweepInterval time.Duration) *Service {
	return &Service{
		walletRepo:    walletRepo,
		ledger:        ledger,
		auditRepo:     auditRepo,
		workerPool:    NewWorkerPool(10),
		coinExpiry:    coinExpiry,
		cashExpiry:    cashExpiry,
		sweepInterval: sweepInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Balance sweeper started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping sweeper")
			return
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil {
				zap.L().Error("Sweep run failed", zap.Error(err))
			}
		}
	}
}

// Sweep runs one pass. Per-wallet failures are counted, not fatal: the
// audit entry distinguishes partial progress from a clean run.
func (s *Service) Sweep(ctx context.Context) (*domain.BalanceSweepAudit, error) {
	now := time.Now()

	coinWallets, err := s.walletRepo.FindInactiveWithCoins(ctx, now.Add(-s.coinExpiry), batchLimit)
	if err != nil {
		return nil, err
	}
	cashWallets, err := s.walletRepo.FindInactiveWithCash(ctx, now.Add(-s.cashExpiry), batchLimit)
	if err != nil {
		return nil, err
	}

	targets := make(map[string]*target)
	for _, w := range coinWallets {
		targets[w.UserID] = &target{expireCoins: true, coins: w.CoinsBalance}
	}
	for _, w := range cashWallets {
		if t, ok := targets[w.UserID]; ok {
			t.expireCash = true
			continue
		}
		targets[w.UserID] = &target{expireCash: true}
	}

	var coinsExpired, cashExpired, failed, coinsZeroed atomic.Int64

	var g errgroup.Group
	var wg sync.WaitGroup
	for userID, t := range targets {
		userID, t := userID, t

		if _, loaded := sweepingWallets.LoadOrStore(userID, struct{}{}); loaded {
			continue
		}

		wg.Add(1)
		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer wg.Done()
				defer sweepingWallets.Delete(userID)

				_, err := s.ledger.ExpireBalances(ctx, userID, t.expireCoins, t.expireCash)
				if err != nil {
					failed.Add(1)
					zap.L().Error("Failed to expire balances",
						zap.String("userID", userID), zap.Error(err))
					return nil
				}
				if t.expireCoins {
					coinsExpired.Add(1)
					coinsZeroed.Add(t.coins)
				}
				if t.expireCash {
					cashExpired.Add(1)
				}
				return nil
			})
			if err != nil {
				wg.Done()
				sweepingWallets.Delete(userID)
				failed.Add(1)
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Error("Error dispatching sweep tasks", zap.Error(err))
	}
	wg.Wait()

	summary := &domain.BalanceSweepAudit{
		WalletsScanned: len(targets),
		CoinsExpired:   int(coinsExpired.Load()),
		CashExpired:    int(cashExpired.Load()),
		Failed:         int(failed.Load()),
		CoinsZeroed:    coinsZeroed.Load(),
	}
	if err := s.auditRepo.Create(ctx, domain.AuditActionBalanceSweep, uuid.New(), summary); err != nil {
		zap.L().Warn("failed to write sweep audit entry", zap.Error(err))
	}

	zap.L().Info("Sweep pass finished",
		zap.Int("walletsScanned", summary.WalletsScanned),
		zap.Int("coinsExpired", summary.CoinsExpired),
		zap.Int("cashExpired", summary.CashExpired),
		zap.Int("failed", summary.Failed))
	return summary, nil
}
