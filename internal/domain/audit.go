package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Audit actions.
const (
	AuditActionConversionBatch string = "CONVERSION_BATCH"
	AuditActionBalanceSweep    string = "BALANCE_SWEEP"
	AuditActionAdjustment      string = "ADMIN_ADJUSTMENT"
	AuditActionWithdrawal      string = "WITHDRAWAL"
)

// AuditEntry is one row of the audit log. Details carries one of the typed
// shapes below, serialized as JSONB.
type AuditEntry struct {
	ID            int64     `db:"id"`
	Action        string    `db:"action"`
	CorrelationID uuid.UUID `db:"correlation_id"`
	Details       any       `db:"details"`
	CreatedAt     time.Time `db:"created_at"`
}

// ConversionBatchAudit summarizes one conversion batch run.
type ConversionBatchAudit struct {
	Period             string          `json:"period"`
	CountriesProcessed []string        `json:"countries_processed"`
	CountriesSkipped   []string        `json:"countries_skipped"`
	CountriesFailed    []string        `json:"countries_failed"`
	UsersPaid          int             `json:"users_paid"`
	UsersSkipped       int             `json:"users_skipped"`
	CoinsConverted     int64           `json:"coins_converted"`
	DistributedUsd     decimal.Decimal `json:"distributed_usd"`
	UserShareUsd       decimal.Decimal `json:"user_share_usd"`
}

// BalanceSweepAudit summarizes one expiry sweep run. Failed entries make
// partial progress distinguishable from total failure.
type BalanceSweepAudit struct {
	WalletsScanned int   `json:"wallets_scanned"`
	CoinsExpired   int   `json:"coins_expired"`
	CashExpired    int   `json:"cash_expired"`
	Failed         int   `json:"failed"`
	CoinsZeroed    int64 `json:"coins_zeroed"`
}

// AdjustmentAudit records an operator-initiated balance adjustment.
type AdjustmentAudit struct {
	UserID       string          `json:"user_id"`
	CoinsDelta   int64           `json:"coins_delta"`
	CashDeltaUsd decimal.Decimal `json:"cash_delta_usd"`
	Note         string          `json:"note"`
}

// WithdrawalAudit records a payout submission.
type WithdrawalAudit struct {
	UserID        string          `json:"user_id"`
	AmountUsd     decimal.Decimal `json:"amount_usd"`
	Currency      string          `json:"currency"`
	PayoutBatchID string          `json:"payout_batch_id"`
}
