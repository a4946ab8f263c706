package walletrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/adrewards/backend/internal/domain"
	"github.com/adrewards/backend/internal/pg"
	"go.uber.org/zap"
)

const walletColumns = `
        id, user_id, coins_balance, cash_balance_usd,
        total_coins_earned, total_cash_earned_usd, total_withdrawn_usd,
        vpn_suspicion_score, suspicious_activity, revenue_countries,
        daily_videos_watched, interstitials_watched,
        last_cap_reset_at, last_activity_at, created_at`

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

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var w domain.Wallet
	err := row.Scan(
		&w.ID, &w.UserID, &w.CoinsBalance, &w.CashBalanceUsd,
		&w.TotalCoinsEarned, &w.TotalCashEarnedUsd, &w.TotalWithdrawnUsd,
		&w.VPNSuspicionScore, &w.SuspiciousActivity, &w.RevenueCountries,
		&w.DailyVideosWatched, &w.InterstitialsWatched,
		&w.LastCapResetAt, &w.LastActivityAt, &w.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID string) (*domain.Wallet, error) {
	query := `
        SELECT` + walletColumns + `
        FROM wallets
        WHERE user_id = $1
    `
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// GetForUpdate locks the wallet row for the duration of the enclosing
// transaction, serializing concurrent mutations to the same user.
func (r *Repository) GetForUpdate(ctx context.Context, userID string) (*domain.Wallet, error) {
	query := `
        SELECT` + walletColumns + `
        FROM wallets
        WHERE user_id = $1
        FOR UPDATE
    `
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to lock wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// Ensure creates the wallet when missing. The upsert makes concurrent first
// requests race-free; created reports whether this call inserted the row.
func (r *Repository) Ensure(ctx context.Context, userID string) (*domain.Wallet, bool, error) {
	query := `
        INSERT INTO wallets (user_id)
        VALUES ($1)
        ON CONFLICT (user_id) DO NOTHING
        RETURNING` + walletColumns + `
    `
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, userID))
	if err == nil {
		return wallet, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, false, err
	}

	wallet, err = r.GetByUserID(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	return wallet, false, nil
}

func (r *Repository) UpdateBalances(ctx context.Context, w *domain.Wallet) error {
	query := `
        UPDATE wallets
        SET coins_balance = $1, cash_balance_usd = $2,
            total_coins_earned = $3, total_cash_earned_usd = $4, total_withdrawn_usd = $5,
            last_activity_at = $6
        WHERE user_id = $7
    `
	_, err := r.db.Exec(ctx, query,
		w.CoinsBalance, w.CashBalanceUsd,
		w.TotalCoinsEarned, w.TotalCashEarnedUsd, w.TotalWithdrawnUsd,
		time.Now(), w.UserID,
	)
	if err != nil {
		zap.L().Error("failed to update wallet balances", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateSuspicion(ctx context.Context, userID string, score int, flag bool, countries []string) error {
	query := `
        UPDATE wallets
        SET vpn_suspicion_score = $1, suspicious_activity = $2, revenue_countries = $3
        WHERE user_id = $4
    `
	_, err := r.db.Exec(ctx, query, score, flag, countries, userID)
	if err != nil {
		zap.L().Error("failed to update wallet suspicion state", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateCapCounters(ctx context.Context, userID string, videos, interstitials int, resetAt time.Time) error {
	query := `
        UPDATE wallets
        SET daily_videos_watched = $1, interstitials_watched = $2, last_cap_reset_at = $3
        WHERE user_id = $4
    `
	_, err := r.db.Exec(ctx, query, videos, interstitials, resetAt, userID)
	if err != nil {
		zap.L().Error("failed to update wallet cap counters", zap.Error(err))
		return err
	}
	return nil
}

// FindInactiveWithCoins lists wallets holding coins with no ledger activity
// since before.
func (r *Repository) FindInactiveWithCoins(ctx context.Context, before time.Time, limit int) ([]domain.Wallet, error) {
	query := `
        SELECT` + walletColumns + `
        FROM wallets
        WHERE coins_balance > 0 AND last_activity_at < $1
        ORDER BY last_activity_at ASC
        LIMIT $2
    `
	return r.findInactive(ctx, query, before, limit)
}

// FindInactiveWithCash lists wallets holding cash with no ledger activity
// since before.
func (r *Repository) FindInactiveWithCash(ctx context.Context, before time.Time, limit int) ([]domain.Wallet, error) {
	query := `
        SELECT` + walletColumns + `
        FROM wallets
        WHERE cash_balance_usd > 0 AND last_activity_at < $1
        ORDER BY last_activity_at ASC
        LIMIT $2
    `
	return r.findInactive(ctx, query, before, limit)
}

func (r *Repository) findInactive(ctx context.Context, query string, before time.Time, limit int) ([]domain.Wallet, error) {
	rows, err := r.db.Query(ctx, query, before, limit)
	if err != nil {
		zap.L().Error("failed to list inactive wallets", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var wallets []domain.Wallet
	for rows.Next() {
		var w domain.Wallet
		err := rows.Scan(
			&w.ID, &w.UserID, &w.CoinsBalance, &w.CashBalanceUsd,
			&w.TotalCoinsEarned, &w.TotalCashEarnedUsd, &w.TotalWithdrawnUsd,
			&w.VPNSuspicionScore, &w.SuspiciousActivity, &w.RevenueCountries,
			&w.DailyVideosWatched, &w.InterstitialsWatched,
			&w.LastCapResetAt, &w.LastActivityAt, &w.CreatedAt,
		)
		if err != nil {
			zap.L().Error("failed to scan wallet row", zap.Error(err))
			return nil, err
		}
		wallets = append(wallets, w)
	}
	return wallets, rows.Err()
}
