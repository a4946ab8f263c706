package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/adrewards/backend/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := `
        INSERT INTO transactions (user_id, type, coins_delta, cash_delta_usd,
            coins_balance_after, cash_balance_after_usd, reference_id, reference_type)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at
    `
	txn := &domain.Transaction{
		UserID:              "user-1",
		Type:                domain.TxTypeCoinEarn,
		CoinsDelta:          10,
		CashDeltaUsd:        decimal.Zero,
		CoinsBalanceAfter:   350,
		CashBalanceAfterUsd: decimal.RequireFromString("4.2513"),
		ReferenceID:         "1041",
		ReferenceType:       "ad_view",
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successful append",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(
						txn.UserID, txn.Type, txn.CoinsDelta, txn.CashDeltaUsd,
						txn.CoinsBalanceAfter, txn.CashBalanceAfterUsd, txn.ReferenceID, txn.ReferenceType,
					).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(57), now))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(
						txn.UserID, txn.Type, txn.CoinsDelta, txn.CashDeltaUsd,
						txn.CoinsBalanceAfter, txn.CashBalanceAfterUsd, txn.ReferenceID, txn.ReferenceType,
					).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), txn)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(57), result.ID)
				assert.Equal(t, now, result.CreatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := `
        SELECT id, user_id, type, coins_delta, cash_delta_usd,
               coins_balance_after, cash_balance_after_usd, reference_id, reference_type, created_at
        FROM transactions
        WHERE user_id = $1
        ORDER BY created_at ASC, id ASC
    `

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expected  int
	}{
		{
			name: "Returns entries in append order",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{
					"id", "user_id", "type", "coins_delta", "cash_delta_usd",
					"coins_balance_after", "cash_balance_after_usd", "reference_id", "reference_type", "created_at",
				}).
					AddRow(int64(1), "user-1", domain.TxTypeCoinEarn, int64(10), "0", int64(10), "0", "1041", "ad_view", now).
					AddRow(int64(2), "user-1", domain.TxTypeCoinConversion, int64(-10), "0.0425", int64(0), "0.0425", "", "", now)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("user-1").
					WillReturnRows(rows)
			},
			expected: 2,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("user-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			txns, err := repo.ListByUserID(context.Background(), "user-1")

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, txns)
			} else {
				assert.NoError(t, err)
				assert.Len(t, txns, tt.expected)
				assert.Equal(t, domain.TxTypeCoinEarn, txns[0].Type)
				assert.Equal(t, domain.TxTypeCoinConversion, txns[1].Type)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_SumDeltasByUser(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
        SELECT COALESCE(SUM(coins_delta), 0), COALESCE(SUM(cash_delta_usd), 0)
        FROM transactions
        WHERE user_id = $1
    `

	tests := []struct {
		name          string
		mockSetup     func()
		expectErr     bool
		expectedCoins int64
		expectedCash  decimal.Decimal
	}{
		{
			name: "Sums both ledgers",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("user-1").
					WillReturnRows(pgxmock.NewRows([]string{"coins", "cash"}).AddRow(int64(340), "4.2513"))
			},
			expectedCoins: 340,
			expectedCash:  decimal.RequireFromString("4.2513"),
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("user-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			coins, cash, err := repo.SumDeltasByUser(context.Background(), "user-1")

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedCoins, coins)
				assert.True(t, tt.expectedCash.Equal(cash))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
