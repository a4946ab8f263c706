package sessionrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/adrewards/backend/internal/domain"
	"github.com/adrewards/backend/internal/pg"
	"go.uber.org/zap"
)

const sessionColumns = `
        id, user_id, status, base_coins, game_bonus,
        games_played, games_completed, retry_ads_watched, created_at, completed_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanSession(row pgx.Row) (*domain.GameSession, error) {
	var s domain.GameSession
	err := row.Scan(
		&s.ID, &s.UserID, &s.Status, &s.BaseCoins, &s.GameBonus,
		&s.GamesPlayed, &s.GamesCompleted, &s.RetryAdsWatched, &s.CreatedAt, &s.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Create(ctx context.Context, session *domain.GameSession) (*domain.GameSession, error) {
	query := `
        INSERT INTO game_sessions (id, user_id, status)
        VALUES ($1, $2, $3)
        RETURNING created_at
    `
	row := r.db.QueryRow(ctx, query, session.ID, session.UserID, session.Status)
	if err := row.Scan(&session.CreatedAt); err != nil {
		zap.L().Error("failed to create game session", zap.Error(err))
		return nil, err
	}
	return session, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.GameSession, error) {
	query := `
        SELECT` + sessionColumns + `
        FROM game_sessions
        WHERE id = $1
    `
	session, err := scanSession(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get game session", zap.Error(err))
		return nil, err
	}
	return session, nil
}

func (r *Repository) UpdateAccumulators(ctx context.Context, session *domain.GameSession) error {
	query := `
        UPDATE game_sessions
        SET base_coins = $1, game_bonus = $2, games_played = $3,
            games_completed = $4, retry_ads_watched = $5
        WHERE id = $6 AND status = $7
    `
	tag, err := r.db.Exec(ctx, query,
		session.BaseCoins, session.GameBonus, session.GamesPlayed,
		session.GamesCompleted, session.RetryAdsWatched,
		session.ID, domain.SessionStatusActive,
	)
	if err != nil {
		zap.L().Error("failed to update game session", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Complete flips the session to its terminal state. The status guard makes a
// second finish a no-op reported to the caller.
func (r *Repository) Complete(ctx context.Context, id uuid.UUID, completedAt time.Time) (bool, error) {
	query := `
        UPDATE game_sessions
        SET status = $1, completed_at = $2
        WHERE id = $3 AND status = $4
    `
	tag, err := r.db.Exec(ctx, query, domain.SessionStatusCompleted, completedAt, id, domain.SessionStatusActive)
	if err != nil {
		zap.L().Error("failed to complete game session", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) CountCompletedToday(ctx context.Context, userID string) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM game_sessions
        WHERE user_id = $1 AND status = $2 AND completed_at >= date_trunc('day', NOW())
    `
	var count int
	if err := r.db.QueryRow(ctx, query, userID, domain.SessionStatusCompleted).Scan(&count); err != nil {
		zap.L().Error("failed to count completed sessions", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// LastCompletedAt returns nil when the user has no completed session.
func (r *Repository) LastCompletedAt(ctx context.Context, userID string) (*time.Time, error) {
	query := `
        SELECT MAX(completed_at)
        FROM game_sessions
        WHERE user_id = $1 AND status = $2
    `
	var last *time.Time
	if err := r.db.QueryRow(ctx, query, userID, domain.SessionStatusCompleted).Scan(&last); err != nil {
		zap.L().Error("failed to get last completed session", zap.Error(err))
		return nil, err
	}
	return last, nil
}
