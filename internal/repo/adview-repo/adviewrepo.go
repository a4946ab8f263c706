package adviewrepo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/adrewards/backend/internal/domain"
	"github.com/adrewards/backend/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Create persists the ad view. The unique index on admob_impression_id is the
// backstop for duplicate submissions that slip past the proactive check.
func (r *Repository) Create(ctx context.Context, view *domain.AdView) (*domain.AdView, error) {
	query := `
        INSERT INTO ad_views (user_id, country_code, ip_country, coins_earned,
            estimated_earnings_usd, converted, admob_impression_id)
        VALUES ($1, $2, $3, $4, $5, FALSE, $6)
        RETURNING id, created_at
    `
	row := r.db.QueryRow(ctx, query,
		view.UserID, view.CountryCode, view.IPCountry, view.CoinsEarned,
		view.EstimatedEarningsUsd, view.AdmobImpressionID,
	)
	if err := row.Scan(&view.ID, &view.CreatedAt); err != nil {
		zap.L().Error("failed to create ad view", zap.Error(err))
		return nil, err
	}
	return view, nil
}

func (r *Repository) ExistsImpression(ctx context.Context, impressionID string) (bool, error) {
	query := `
        SELECT EXISTS (SELECT 1 FROM ad_views WHERE admob_impression_id = $1)
    `
	var exists bool
	if err := r.db.QueryRow(ctx, query, impressionID).Scan(&exists); err != nil {
		zap.L().Error("failed to check impression id", zap.Error(err))
		return false, err
	}
	return exists, nil
}

// CountToday counts the user's ad views since local midnight.
func (r *Repository) CountToday(ctx context.Context, userID string) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM ad_views
        WHERE user_id = $1 AND created_at >= date_trunc('day', NOW())
    `
	var count int
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		zap.L().Error("failed to count today's ad views", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// CountSince counts the user's ad views in the trailing window starting at
// since.
func (r *Repository) CountSince(ctx context.Context, userID string, since time.Time) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM ad_views
        WHERE user_id = $1 AND created_at >= $2
    `
	var count int
	if err := r.db.QueryRow(ctx, query, userID, since).Scan(&count); err != nil {
		zap.L().Error("failed to count recent ad views", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// SumUnconvertedByUser groups unconverted ad views for one country by user.
// An empty country sums across all countries (legacy global pool).
func (r *Repository) SumUnconvertedByUser(ctx context.Context, country string) ([]domain.UserCoinSum, error) {
	query := `
        SELECT user_id, SUM(coins_earned)
        FROM ad_views
        WHERE NOT converted AND ($1 = '' OR country_code = $1)
        GROUP BY user_id
        ORDER BY user_id
    `
	rows, err := r.db.Query(ctx, query, country)
	if err != nil {
		zap.L().Error("failed to group unconverted ad views", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var sums []domain.UserCoinSum
	for rows.Next() {
		var s domain.UserCoinSum
		if err := rows.Scan(&s.UserID, &s.Coins); err != nil {
			zap.L().Error("failed to scan coin sum row", zap.Error(err))
			return nil, err
		}
		sums = append(sums, s)
	}
	return sums, rows.Err()
}

// MarkConverted stamps exactly the rows that were summed for the pool: same
// country filter, still unconverted, restricted to the collected users.
func (r *Repository) MarkConverted(ctx context.Context, country string, userIDs []string, poolID uuid.UUID) (int64, error) {
	query := `
        UPDATE ad_views
        SET converted = TRUE, pool_id = $1
        WHERE NOT converted AND ($2 = '' OR country_code = $2) AND user_id = ANY($3)
    `
	tag, err := r.db.Exec(ctx, query, poolID, country, userIDs)
	if err != nil {
		zap.L().Error("failed to mark ad views converted", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
