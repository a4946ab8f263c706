package transactionrepo

import (
	"context"

	"github.com/shopspring/decimal"

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

func (r *Repository) Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	query := `
        INSERT INTO transactions (user_id, type, coins_delta, cash_delta_usd,
            coins_balance_after, cash_balance_after_usd, reference_id, reference_type)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at
    `
	row := r.db.QueryRow(ctx, query,
		txn.UserID, txn.Type, txn.CoinsDelta, txn.CashDeltaUsd,
		txn.CoinsBalanceAfter, txn.CashBalanceAfterUsd, txn.ReferenceID, txn.ReferenceType,
	)
	if err := row.Scan(&txn.ID, &txn.CreatedAt); err != nil {
		zap.L().Error("failed to create transaction", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := `
        SELECT id, user_id, type, coins_delta, cash_delta_usd,
               coins_balance_after, cash_balance_after_usd, reference_id, reference_type, created_at
        FROM transactions
        WHERE user_id = $1
        ORDER BY created_at ASC, id ASC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to list transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var txn domain.Transaction
		err := rows.Scan(
			&txn.ID, &txn.UserID, &txn.Type, &txn.CoinsDelta, &txn.CashDeltaUsd,
			&txn.CoinsBalanceAfter, &txn.CashBalanceAfterUsd,
			&txn.ReferenceID, &txn.ReferenceType, &txn.CreatedAt,
		)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, rows.Err()
}

// SumDeltasByUser replays the ledger for one user, summing deltas from zero.
func (r *Repository) SumDeltasByUser(ctx context.Context, userID string) (int64, decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(coins_delta), 0), COALESCE(SUM(cash_delta_usd), 0)
        FROM transactions
        WHERE user_id = $1
    `
	var coins int64
	var cash decimal.Decimal
	if err := r.db.QueryRow(ctx, query, userID).Scan(&coins, &cash); err != nil {
		zap.L().Error("failed to sum transaction deltas", zap.Error(err))
		return 0, decimal.Zero, err
	}
	return coins, cash, nil
}
