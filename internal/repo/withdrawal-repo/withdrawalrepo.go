package withdrawalrepo

import (
	"context"

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

func (r *Repository) Create(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error) {
	query := `
        INSERT INTO withdrawals (user_id, amount_usd, currency, payout_batch_id, status, processed_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	row := r.db.QueryRow(ctx, query,
		withdrawal.UserID, withdrawal.AmountUsd, withdrawal.Currency,
		withdrawal.PayoutBatchID, withdrawal.Status, withdrawal.ProcessedAt,
	)
	if err := row.Scan(&withdrawal.ID); err != nil {
		zap.L().Error("failed to create withdrawal record", zap.Error(err))
		return nil, err
	}
	return withdrawal, nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID string) ([]domain.Withdrawal, error) {
	query := `
        SELECT id, user_id, amount_usd, currency, payout_batch_id, status, processed_at
        FROM withdrawals
        WHERE user_id = $1
        ORDER BY processed_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		var w domain.Withdrawal
		err := rows.Scan(&w.ID, &w.UserID, &w.AmountUsd, &w.Currency, &w.PayoutBatchID, &w.Status, &w.ProcessedAt)
		if err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, w)
	}
	return withdrawals, rows.Err()
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `
        UPDATE withdrawals
        SET status = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("failed to update withdrawal status", zap.Error(err))
		return err
	}
	return nil
}
