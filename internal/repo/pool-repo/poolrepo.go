package poolrepo

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

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, pool *domain.RevenuePool) (*domain.RevenuePool, error) {
	query := `
        INSERT INTO revenue_pools (id, country_code, period, admob_revenue_usd,
            total_coins_issued, user_share_usd, conversion_rate, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING created_at
    `
	row := r.db.QueryRow(ctx, query,
		pool.ID, pool.CountryCode, pool.Period, pool.AdmobRevenueUsd,
		pool.TotalCoinsIssued, pool.UserShareUsd, pool.ConversionRate, pool.Status,
	)
	if err := row.Scan(&pool.CreatedAt); err != nil {
		zap.L().Error("failed to create revenue pool", zap.Error(err))
		return nil, err
	}
	return pool, nil
}

func (r *Repository) Complete(ctx context.Context, poolID uuid.UUID, processedAt time.Time) error {
	query := `
        UPDATE revenue_pools
        SET status = $1, processed_at = $2
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, domain.PoolStatusCompleted, processedAt, poolID)
	if err != nil {
		zap.L().Error("failed to complete revenue pool", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetByCountryPeriod(ctx context.Context, country, period string) (*domain.RevenuePool, error) {
	query := `
        SELECT id, country_code, period, admob_revenue_usd, total_coins_issued,
               user_share_usd, conversion_rate, status, processed_at, created_at
        FROM revenue_pools
        WHERE country_code = $1 AND period = $2
    `
	var pool domain.RevenuePool
	err := r.db.QueryRow(ctx, query, country, period).Scan(
		&pool.ID, &pool.CountryCode, &pool.Period, &pool.AdmobRevenueUsd, &pool.TotalCoinsIssued,
		&pool.UserShareUsd, &pool.ConversionRate, &pool.Status, &pool.ProcessedAt, &pool.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get revenue pool", zap.Error(err))
		return nil, err
	}
	return &pool, nil
}

func (r *Repository) CreateDetail(ctx context.Context, detail *domain.ConversionDetail) (*domain.ConversionDetail, error) {
	query := `
        INSERT INTO conversion_details (pool_id, user_id, coins, cash_usd, transaction_id, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	row := r.db.QueryRow(ctx, query,
		detail.PoolID, detail.UserID, detail.Coins, detail.CashUsd, detail.TransactionID, detail.Status,
	)
	if err := row.Scan(&detail.ID, &detail.CreatedAt); err != nil {
		zap.L().Error("failed to create conversion detail", zap.Error(err))
		return nil, err
	}
	return detail, nil
}

// HasCompletedDetail reports whether the user already holds a completed
// conversion record for any pool of the (country, period) scope.
func (r *Repository) HasCompletedDetail(ctx context.Context, country, period, userID string) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1
            FROM conversion_details d
            JOIN revenue_pools p ON p.id = d.pool_id
            WHERE p.country_code = $1 AND p.period = $2 AND d.user_id = $3 AND d.status = $4
        )
    `
	var exists bool
	err := r.db.QueryRow(ctx, query, country, period, userID, domain.DetailStatusCompleted).Scan(&exists)
	if err != nil {
		zap.L().Error("failed to check conversion detail", zap.Error(err))
		return false, err
	}
	return exists, nil
}
