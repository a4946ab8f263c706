package adviewservice

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/adrewards/backend/internal/config"
	"github.com/adrewards/backend/internal/domain"
	"github.com/adrewards/backend/internal/pg"
	"github.com/adrewards/backend/internal/service/capservice"
	"github.com/adrewards/backend/internal/service/fraudservice"
	"go.uber.org/zap"
)

type CapEngine interface {
	AllowVideo(ctx context.Context, userID string) (*capservice.Verdict, error)
	RecordVideo(ctx context.Context, userID string) error
	RecordInterstitial(ctx context.Context, userID string) (int, error)
}

type FraudEngine interface {
	CheckReward(ctx context.Context, userID string, impressionID *string) (*fraudservice.Verdict, error)
	RecordReward(ctx context.Context, userID string)
	ScoreReward(ctx context.Context, userID, adCountry, ipCountry string)
}

type Ledger interface {
	AwardCoins(ctx context.Context, userID string, amount int64, txType, refID, refType string) (*domain.Transaction, error)
}

type AdViewRepo interface {
	Create(ctx context.Context, view *domain.AdView) (*domain.AdView, error)
}

type GeoResolver interface {
	ResolveCountry(ipAddress string) (string, bool)
}

var ErrCountryRequired = errors.New("country code is required")

const pgUniqueViolation = "23505"

// RewardRequest is one reward-eligible ad completion as reported by the
// client. CountryCode is the ad network's attribution country.
type RewardRequest struct {
	CountryCode          string
	IPAddress            string
	ImpressionID         *string
	EstimatedEarningsUsd decimal.NullDecimal
}

// RewardResult reports the outcome. Denials are expected policy outcomes
// carrying a reason code and, where applicable, a retry hint.
type RewardResult struct {
	Granted        bool
	Reason         string
	CoinsAwarded   int64
	RemainingToday int
	RetryAfter     time.Duration
	AdViewID       int64
}

// Service composes the reward flow: caps, fraud gates, the ad-view record,
// the coin award, then the fire-and-forget scoring.
type Service struct {
	capEngine   CapEngine
	fraudEngine FraudEngine
	ledger      Ledger
	adViewRepo  AdViewRepo
	geo         GeoResolver
	txManager   pg.TXManager
	coinsPerAd  int64
}

func New(capEngine CapEngine, fraudEngine FraudEngine, ledger Ledger, adViewRepo AdViewRepo, geo GeoResolver, txManager pg.TXManager, cfg *config.Config) *Service {
	return &Service{
		capEngine:   capEngine,
		fraudEngine: fraudEngine,
		ledger:      ledger,
		adViewRepo:  adViewRepo,
		geo:         geo,
		txManager:   txManager,
		coinsPerAd:  cfg.CoinsPerAdView,
	}
}

func (s *Service) RewardAdView(ctx context.Context, userID string, req RewardRequest) (*RewardResult, error) {
	if req.CountryCode == "" {
		return nil, ErrCountryRequired
	}

	capVerdict, err := s.capEngine.AllowVideo(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !capVerdict.Allowed {
		return &RewardResult{
			Reason:         capVerdict.Reason,
			RemainingToday: capVerdict.Remaining,
			RetryAfter:     capVerdict.RetryAfter,
		}, nil
	}

	fraudVerdict, err := s.fraudEngine.CheckReward(ctx, userID, req.ImpressionID)
	if err != nil {
		return nil, err
	}
	if !fraudVerdict.Allowed {
		return &RewardResult{
			Reason:         fraudVerdict.Reason,
			RemainingToday: capVerdict.Remaining,
			RetryAfter:     fraudVerdict.RetryAfter,
		}, nil
	}

	var ipCountry *string
	if req.IPAddress != "" {
		if country, ok := s.geo.ResolveCountry(req.IPAddress); ok {
			ipCountry = &country
		}
	}

	view := &domain.AdView{
		UserID:               userID,
		CountryCode:          req.CountryCode,
		IPCountry:            ipCountry,
		CoinsEarned:          s.coinsPerAd,
		EstimatedEarningsUsd: req.EstimatedEarningsUsd,
		AdmobImpressionID:    req.ImpressionID,
	}
	// The view record and the coin award commit or roll back together:
	// an ad view must never persist without its coins.
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		view, err = s.adViewRepo.Create(ctx, view)
		if err != nil {
			return err
		}
		_, err = s.ledger.AwardCoins(ctx, userID, s.coinsPerAd, domain.TxTypeCoinEarn,
			strconv.FormatInt(view.ID, 10), "ad_view")
		return err
	})
	if err != nil {
		// The unique index catches duplicates that raced past the
		// proactive check.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return &RewardResult{
				Reason:         fraudservice.ReasonDuplicateImpression,
				RemainingToday: capVerdict.Remaining,
			}, nil
		}
		return nil, err
	}

	// Side effects past this point must never undo the award.
	if err := s.capEngine.RecordVideo(ctx, userID); err != nil {
		zap.L().Warn("failed to record video against cap", zap.String("userID", userID), zap.Error(err))
	}
	s.fraudEngine.RecordReward(ctx, userID)
	ip := ""
	if ipCountry != nil {
		ip = *ipCountry
	}
	s.fraudEngine.ScoreReward(ctx, userID, req.CountryCode, ip)

	return &RewardResult{
		Granted:        true,
		CoinsAwarded:   s.coinsPerAd,
		RemainingToday: capVerdict.Remaining - 1,
		AdViewID:       view.ID,
	}, nil
}

// RecordInterstitial counts a forced interstitial view. It earns no coins.
func (s *Service) RecordInterstitial(ctx context.Context, userID string) (int, error) {
	return s.capEngine.RecordInterstitial(ctx, userID)
}
