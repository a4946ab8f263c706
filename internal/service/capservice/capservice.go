package capservice

import (
	"context"
	"errors"
	"time"

	"github.com/adrewards/backend/internal/config"
	"github.com/adrewards/backend/internal/domain"
	"go.uber.org/zap"
)

type WalletRepo interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Wallet, error)
	UpdateCapCounters(ctx context.Context, userID string, videos, interstitials int, resetAt time.Time) error
}

// Machine-readable rejection reasons.
const (
	ReasonDailyVideoLimit      string = "DAILY_VIDEO_LIMIT"
	ReasonInterstitialRequired string = "INTERSTITIAL_REQUIRED"
)

var ErrWalletNotFound = errors.New("wallet not found")

// Verdict is a policy outcome, not an error: denied requests carry the reason
// and, where applicable, a retry hint.
type Verdict struct {
	Allowed    bool
	Reason     string
	Remaining  int
	RetryAfter time.Duration
}

// Service gates reward-eligible video views with persisted per-user daily
// counters. Counters reset on the calendar-day boundary, not a rolling 24h
// window, and the reset is applied before the triggering request is judged.
type Service struct {
	walletRepo WalletRepo
	limit      int
	interval   int
	unlock     int
}

func New(walletRepo WalletRepo, cfg *config.Config) *Service {
	return &Service{
		walletRepo: walletRepo,
		limit:      cfg.DailyVideoLimit,
		interval:   cfg.InterstitialInterval,
		unlock:     cfg.InterstitialUnlock,
	}
}

func (s *Service) AllowVideo(ctx context.Context, userID string) (*Verdict, error) {
	wallet, err := s.loadWithRollover(ctx, userID)
	if err != nil {
		return nil, err
	}

	if wallet.DailyVideosWatched >= s.limit {
		return &Verdict{
			Allowed:    false,
			Reason:     ReasonDailyVideoLimit,
			Remaining:  0,
			RetryAfter: untilNextDay(time.Now()),
		}, nil
	}
	if s.interstitialOwed(wallet) {
		return &Verdict{
			Allowed:   false,
			Reason:    ReasonInterstitialRequired,
			Remaining: s.limit - wallet.DailyVideosWatched,
		}, nil
	}

	return &Verdict{
		Allowed:   true,
		Remaining: s.limit - wallet.DailyVideosWatched,
	}, nil
}

// RecordVideo counts a granted rewarded view against today's quota.
func (s *Service) RecordVideo(ctx context.Context, userID string) error {
	wallet, err := s.loadWithRollover(ctx, userID)
	if err != nil {
		return err
	}
	return s.walletRepo.UpdateCapCounters(ctx, userID,
		wallet.DailyVideosWatched+1, wallet.InterstitialsWatched, wallet.LastCapResetAt)
}

// RecordInterstitial counts a forced interstitial. It earns no coins; it only
// unlocks further rewarded views.
func (s *Service) RecordInterstitial(ctx context.Context, userID string) (unlocked int, err error) {
	wallet, err := s.loadWithRollover(ctx, userID)
	if err != nil {
		return 0, err
	}
	err = s.walletRepo.UpdateCapCounters(ctx, userID,
		wallet.DailyVideosWatched, wallet.InterstitialsWatched+1, wallet.LastCapResetAt)
	if err != nil {
		return 0, err
	}
	return s.unlock, nil
}

// interstitialOwed blocks once the watched videos outrun the interstitial
// credit by a full interval; each interstitial buys back `unlock` views.
func (s *Service) interstitialOwed(wallet *domain.Wallet) bool {
	debt := wallet.DailyVideosWatched - wallet.InterstitialsWatched*s.unlock
	return debt >= s.interval
}

// loadWithRollover fetches the wallet and, when the calendar date has moved
// past last_cap_reset_at, resets the counters before the caller evaluates
// anything.
func (s *Service) loadWithRollover(ctx context.Context, userID string) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}

	now := time.Now()
	if !sameCalendarDay(wallet.LastCapResetAt, now) {
		wallet.DailyVideosWatched = 0
		wallet.InterstitialsWatched = 0
		wallet.LastCapResetAt = now
		if err := s.walletRepo.UpdateCapCounters(ctx, userID, 0, 0, now); err != nil {
			zap.L().Error("failed to roll over cap counters", zap.Error(err))
			return nil, err
		}
	}
	return wallet, nil
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func untilNextDay(now time.Time) time.Duration {
	y, m, d := now.Date()
	next := time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
	return next.Sub(now)
}
