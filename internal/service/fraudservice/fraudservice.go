package fraudservice

import (
	"context"
	"errors"
	"time"

	"github.com/adrewards/backend/internal/config"
	"github.com/adrewards/backend/internal/domain"
	"go.uber.org/zap"
)

type AdViewRepo interface {
	CountToday(ctx context.Context, userID string) (int, error)
	CountSince(ctx context.Context, userID string, since time.Time) (int, error)
	ExistsImpression(ctx context.Context, impressionID string) (bool, error)
}

type WalletRepo interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Wallet, error)
	UpdateSuspicion(ctx context.Context, userID string, score int, flag bool, countries []string) error
}

// VelocityWindow counts reward events in the trailing window.
type VelocityWindow interface {
	Count(ctx context.Context, userID string) (int, error)
	Record(ctx context.Context, userID string) error
}

// Machine-readable rejection reasons.
const (
	ReasonDailyAdLimit        string = "DAILY_AD_LIMIT"
	ReasonVelocityLimit       string = "VELOCITY_LIMIT"
	ReasonDuplicateImpression string = "DUPLICATE_IMPRESSION"
)

var ErrWalletNotFound = errors.New("wallet not found")

type Verdict struct {
	Allowed    bool
	Reason     string
	Remaining  int
	RetryAfter time.Duration
}

// Service runs the reward gates inline with issuance and keeps the suspicion
// state. Gate failures are policy outcomes; scoring failures never block the
// reward they describe.
type Service struct {
	adViewRepo AdViewRepo
	walletRepo WalletRepo
	velocity   VelocityWindow

	maxPerDay      int
	maxPerWindow   int
	window         time.Duration
	scoreThreshold int
	maxCountries   int
}

func New(adViewRepo AdViewRepo, walletRepo WalletRepo, velocity VelocityWindow, cfg *config.Config) *Service {
	return &Service{
		adViewRepo:     adViewRepo,
		walletRepo:     walletRepo,
		velocity:       velocity,
		maxPerDay:      cfg.MaxAdsPerDay,
		maxPerWindow:   cfg.MaxAdsPerWindow,
		window:         cfg.VelocityWindow,
		scoreThreshold: cfg.VPNSuspicionThreshold,
		maxCountries:   cfg.MaxRevenueCountries,
	}
}

// CheckReward runs the blocking gates: daily cap, velocity, duplicate
// impression. A redis outage drops the velocity gate back to a stored-view
// count, and fails open only when that count is unavailable too; the
// duplicate gate is backed by the storage uniqueness constraint regardless.
func (s *Service) CheckReward(ctx context.Context, userID string, impressionID *string) (*Verdict, error) {
	count, err := s.adViewRepo.CountToday(ctx, userID)
	if err != nil {
		return nil, err
	}
	if count >= s.maxPerDay {
		return &Verdict{
			Allowed:    false,
			Reason:     ReasonDailyAdLimit,
			Remaining:  0,
			RetryAfter: untilNextDay(time.Now()),
		}, nil
	}

	recent, err := s.velocity.Count(ctx, userID)
	if err != nil {
		zap.L().Warn("velocity window unavailable, falling back to stored views", zap.Error(err))
		recent, err = s.adViewRepo.CountSince(ctx, userID, time.Now().Add(-s.window))
		if err != nil {
			zap.L().Warn("stored-view fallback unavailable, failing open", zap.Error(err))
		}
	}
	if err == nil && recent >= s.maxPerWindow {
		return &Verdict{
			Allowed:    false,
			Reason:     ReasonVelocityLimit,
			Remaining:  s.maxPerDay - count,
			RetryAfter: s.window,
		}, nil
	}

	if impressionID != nil && *impressionID != "" {
		exists, err := s.adViewRepo.ExistsImpression(ctx, *impressionID)
		if err != nil {
			return nil, err
		}
		if exists {
			return &Verdict{
				Allowed:   false,
				Reason:    ReasonDuplicateImpression,
				Remaining: s.maxPerDay - count,
			}, nil
		}
	}

	return &Verdict{
		Allowed:   true,
		Remaining: s.maxPerDay - count - 1,
	}, nil
}

// RecordReward feeds the velocity window after a granted reward. Best effort.
func (s *Service) RecordReward(ctx context.Context, userID string) {
	if err := s.velocity.Record(ctx, userID); err != nil {
		zap.L().Warn("failed to record reward in velocity window", zap.Error(err))
	}
}

// ScoreReward updates the suspicion state after a granted reward. A VPN
// mismatch never blocks the reward: the ad network's country stays
// authoritative for attribution and the mismatch only raises the score.
// All failures here are logged and swallowed.
func (s *Service) ScoreReward(ctx context.Context, userID, adCountry, ipCountry string) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil || wallet == nil {
		zap.L().Warn("failed to load wallet for scoring", zap.String("userID", userID), zap.Error(err))
		return
	}

	changed := false

	if ipCountry != "" && ipCountry != adCountry {
		wallet.VPNSuspicionScore++
		changed = true
		if wallet.VPNSuspicionScore >= s.scoreThreshold && !wallet.SuspiciousActivity {
			wallet.SuspiciousActivity = true
			zap.L().Warn("suspicion threshold crossed",
				zap.String("userID", userID),
				zap.Int("score", wallet.VPNSuspicionScore),
			)
		}
	}

	if adCountry != "" && !contains(wallet.RevenueCountries, adCountry) {
		wallet.RevenueCountries = append(wallet.RevenueCountries, adCountry)
		changed = true
		if len(wallet.RevenueCountries) >= s.maxCountries && !wallet.SuspiciousActivity {
			wallet.SuspiciousActivity = true
			zap.L().Warn("multi-country threshold crossed",
				zap.String("userID", userID),
				zap.Strings("countries", wallet.RevenueCountries),
			)
		}
	}

	if !changed {
		return
	}
	err = s.walletRepo.UpdateSuspicion(ctx, userID,
		wallet.VPNSuspicionScore, wallet.SuspiciousActivity, wallet.RevenueCountries)
	if err != nil {
		zap.L().Warn("failed to persist suspicion state", zap.String("userID", userID), zap.Error(err))
	}
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func untilNextDay(now time.Time) time.Duration {
	y, m, d := now.Date()
	next := time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
	return next.Sub(now)
}
