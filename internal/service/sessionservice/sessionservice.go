package sessionservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/adrewards/backend/internal/domain"
	"github.com/adrewards/backend/internal/pg"
)

//go:generate mockgen -source=sessionservice.go -destination=mock_sessionservice.go -package=sessionservice

type SessionRepo interface {
	Create(ctx context.Context, session *domain.GameSession) (*domain.GameSession, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.GameSession, error)
	UpdateAccumulators(ctx context.Context, session *domain.GameSession) error
	Complete(ctx context.Context, id uuid.UUID, completedAt time.Time) (bool, error)
	CountCompletedToday(ctx context.Context, userID string) (int, error)
	LastCompletedAt(ctx context.Context, userID string) (*time.Time, error)
}

type Ledger interface {
	AwardCoins(ctx context.Context, userID string, amount int64, txType, refID, refType string) (*domain.Transaction, error)
}

var (
	ErrSessionNotFound  = errors.New("game session not found")
	ErrSessionNotActive = errors.New("game session is not active")
)

const (
	ReasonDailySessionLimit = "DAILY_SESSION_LIMIT"
	ReasonSessionCooldown   = "SESSION_COOLDOWN"
)

// StartResult reports either the freshly created session or the policy
// reason the start was refused.
type StartResult struct {
	Started    bool
	Reason     string
	RetryAfter time.Duration
	Session    *domain.GameSession
}

type Service struct {
	sessionRepo SessionRepo
	ledger      Ledger
	txManager   pg.TXManager

	dailyLimit int
	cooldown   time.Duration
	baseCoins  int64
	gameBonus  int64
}

func New(sessionRepo SessionRepo, ledger Ledger, txManager pg.TXManager, dailyLimit int, cooldown time.Duration, baseCoins, gameBonus int64) *Service {
	return &Service{
		sessionRepo: sessionRepo,
		ledger:      ledger,
		txManager:   txManager,
		dailyLimit:  dailyLimit,
		cooldown:    cooldown,
		baseCoins:   baseCoins,
		gameBonus:   gameBonus,
	}
}

// StartSession creates a new active session. Both gates run against the
// completed-session history only: an abandoned active session never counts
// toward the daily limit and never starts a cooldown.
func (s *Service) StartSession(ctx context.Context, userID string) (*StartResult, error) {
	completed, err := s.sessionRepo.CountCompletedToday(ctx, userID)
	if err != nil {
		return nil, err
	}
	if completed >= s.dailyLimit {
		return &StartResult{Reason: ReasonDailySessionLimit}, nil
	}

	last, err := s.sessionRepo.LastCompletedAt(ctx, userID)
	if err != nil {
		return nil, err
	}
	if last != nil {
		if elapsed := time.Since(*last); elapsed < s.cooldown {
			return &StartResult{
				Reason:     ReasonSessionCooldown,
				RetryAfter: s.cooldown - elapsed,
			}, nil
		}
	}

	session, err := s.sessionRepo.Create(ctx, &domain.GameSession{
		ID:     uuid.New(),
		UserID: userID,
		Status: domain.SessionStatusActive,
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("game session started",
		zap.String("userID", userID), zap.String("sessionID", session.ID.String()))
	return &StartResult{Started: true, Session: session}, nil
}

// RecordAdCompletion credits the session's base coins after the opt-in
// rewarded ad. Provisional only: nothing reaches the ledger until finish.
func (s *Service) RecordAdCompletion(ctx context.Context, userID string, sessionID uuid.UUID) (*domain.GameSession, error) {
	return s.mutateActive(ctx, userID, sessionID, func(session *domain.GameSession) {
		session.BaseCoins += s.baseCoins
	})
}

// RecordGameResult accumulates one mini-game attempt; completions add the
// per-game bonus.
func (s *Service) RecordGameResult(ctx context.Context, userID string, sessionID uuid.UUID, completed bool) (*domain.GameSession, error) {
	return s.mutateActive(ctx, userID, sessionID, func(session *domain.GameSession) {
		session.GamesPlayed++
		if completed {
			session.GamesCompleted++
			session.GameBonus += s.gameBonus
		}
	})
}

func (s *Service) RecordRetryAd(ctx context.Context, userID string, sessionID uuid.UUID) (*domain.GameSession, error) {
	return s.mutateActive(ctx, userID, sessionID, func(session *domain.GameSession) {
		session.RetryAdsWatched++
	})
}

// FinishSession is the single payout point: the accumulated coins are
// awarded and the session flips to completed inside one transaction. The
// status guard on the flip makes a second finish fail instead of paying
// twice.
func (s *Service) FinishSession(ctx context.Context, userID string, sessionID uuid.UUID) (*domain.GameSession, error) {
	session, err := s.getOwned(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != domain.SessionStatusActive {
		return nil, ErrSessionNotActive
	}

	completedAt := time.Now()
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		flipped, err := s.sessionRepo.Complete(ctx, session.ID, completedAt)
		if err != nil {
			return err
		}
		if !flipped {
			return ErrSessionNotActive
		}
		total := session.BaseCoins + session.GameBonus
		if total == 0 {
			return nil
		}
		_, err = s.ledger.AwardCoins(ctx, userID, total, domain.TxTypeCoinEarn,
			session.ID.String(), "game_session")
		return err
	})
	if err != nil {
		return nil, err
	}

	session.Status = domain.SessionStatusCompleted
	session.CompletedAt = &completedAt
	zap.L().Info("game session finished",
		zap.String("userID", userID),
		zap.String("sessionID", session.ID.String()),
		zap.Int64("coinsAwarded", session.BaseCoins+session.GameBonus))
	return session, nil
}

func (s *Service) getOwned(ctx context.Context, userID string, sessionID uuid.UUID) (*domain.GameSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.UserID != userID {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *Service) mutateActive(ctx context.Context, userID string, sessionID uuid.UUID, apply func(*domain.GameSession)) (*domain.GameSession, error) {
	session, err := s.getOwned(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != domain.SessionStatusActive {
		return nil, ErrSessionNotActive
	}
	apply(session)
	if err := s.sessionRepo.UpdateAccumulators(ctx, session); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotActive
		}
		return nil, err
	}
	return session, nil
}
