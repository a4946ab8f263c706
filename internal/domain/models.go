package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction types. Each ledger mutation writes exactly one transaction row
// with one of these types.
const (
	TxTypeCoinEarn        string = "COIN_EARN"
	TxTypeCoinConversion  string = "COIN_CONVERSION"
	TxTypeWithdrawal      string = "WITHDRAWAL"
	TxTypeAdminAdjustment string = "ADMIN_ADJUSTMENT"
	TxTypeBadgeReward     string = "BADGE_REWARD"
)

// Revenue pool statuses.
const (
	PoolStatusProcessing string = "PROCESSING"
	PoolStatusCompleted  string = "COMPLETED"
)

// Game session statuses. COMPLETED is terminal.
const (
	SessionStatusActive    string = "ACTIVE"
	SessionStatusCompleted string = "COMPLETED"
)

// Conversion detail statuses.
const (
	DetailStatusCompleted string = "COMPLETED"
)

// Withdrawal statuses. PENDING means the payout was submitted to the
// provider and has not been confirmed settled.
const (
	WithdrawalStatusPending   string = "PENDING"
	WithdrawalStatusCompleted string = "COMPLETED"
	WithdrawalStatusFailed    string = "FAILED"
)

// Wallet holds per-user balances and the persisted fraud/cap counters.
// Coins are an integral reward unit; all USD amounts are decimals.
type Wallet struct {
	ID                   int             `db:"id"`
	UserID               string          `db:"user_id"`
	CoinsBalance         int64           `db:"coins_balance"`
	CashBalanceUsd       decimal.Decimal `db:"cash_balance_usd"`
	TotalCoinsEarned     int64           `db:"total_coins_earned"`
	TotalCashEarnedUsd   decimal.Decimal `db:"total_cash_earned_usd"`
	TotalWithdrawnUsd    decimal.Decimal `db:"total_withdrawn_usd"`
	VPNSuspicionScore    int             `db:"vpn_suspicion_score"`
	SuspiciousActivity   bool            `db:"suspicious_activity"`
	RevenueCountries     []string        `db:"revenue_countries"`
	DailyVideosWatched   int             `db:"daily_videos_watched"`
	InterstitialsWatched int             `db:"interstitials_watched"`
	LastCapResetAt       time.Time       `db:"last_cap_reset_at"`
	LastActivityAt       time.Time       `db:"last_activity_at"`
	CreatedAt            time.Time       `db:"created_at"`
}

// Transaction is an immutable ledger entry. Balance snapshots are the wallet
// balances as of immediately after this entry committed and are never
// recomputed.
type Transaction struct {
	ID                  int64           `db:"id"`
	UserID              string          `db:"user_id"`
	Type                string          `db:"type"`
	CoinsDelta          int64           `db:"coins_delta"`
	CashDeltaUsd        decimal.Decimal `db:"cash_delta_usd"`
	CoinsBalanceAfter   int64           `db:"coins_balance_after"`
	CashBalanceAfterUsd decimal.Decimal `db:"cash_balance_after_usd"`
	ReferenceID         string          `db:"reference_id"`
	ReferenceType       string          `db:"reference_type"`
	CreatedAt           time.Time       `db:"created_at"`
}

// AdView is one reward-eligible ad event. CountryCode comes from the ad
// network and is authoritative for revenue attribution; IPCountry is only
// used for fraud comparison.
type AdView struct {
	ID                   int64               `db:"id"`
	UserID               string              `db:"user_id"`
	CountryCode          string              `db:"country_code"`
	IPCountry            *string             `db:"ip_country"`
	CoinsEarned          int64               `db:"coins_earned"`
	EstimatedEarningsUsd decimal.NullDecimal `db:"estimated_earnings_usd"`
	Converted            bool                `db:"converted"`
	PoolID               *uuid.UUID          `db:"pool_id"`
	AdmobImpressionID    *string             `db:"admob_impression_id"`
	CreatedAt            time.Time           `db:"created_at"`
}

// RevenuePool is one (country, settlement period) conversion batch.
// ConversionRate is fixed once computed and applied uniformly.
type RevenuePool struct {
	ID               uuid.UUID       `db:"id"`
	CountryCode      string          `db:"country_code"`
	Period           string          `db:"period"`
	AdmobRevenueUsd  decimal.Decimal `db:"admob_revenue_usd"`
	TotalCoinsIssued int64           `db:"total_coins_issued"`
	UserShareUsd     decimal.Decimal `db:"user_share_usd"`
	ConversionRate   decimal.Decimal `db:"conversion_rate"`
	Status           string          `db:"status"`
	ProcessedAt      *time.Time      `db:"processed_at"`
	CreatedAt        time.Time       `db:"created_at"`
}

// ConversionDetail links a pool to the transaction it produced for one user.
type ConversionDetail struct {
	ID            int64           `db:"id"`
	PoolID        uuid.UUID       `db:"pool_id"`
	UserID        string          `db:"user_id"`
	Coins         int64           `db:"coins"`
	CashUsd       decimal.Decimal `db:"cash_usd"`
	TransactionID int64           `db:"transaction_id"`
	Status        string          `db:"status"`
	CreatedAt     time.Time       `db:"created_at"`
}

// GameSession accumulates provisional coins while active; only a completed
// session's coins are ever paid into the ledger.
type GameSession struct {
	ID              uuid.UUID  `db:"id"`
	UserID          string     `db:"user_id"`
	Status          string     `db:"status"`
	BaseCoins       int64      `db:"base_coins"`
	GameBonus       int64      `db:"game_bonus"`
	GamesPlayed     int        `db:"games_played"`
	GamesCompleted  int        `db:"games_completed"`
	RetryAdsWatched int        `db:"retry_ads_watched"`
	CreatedAt       time.Time  `db:"created_at"`
	CompletedAt     *time.Time `db:"completed_at"`
}

// UserCoinSum is one user's unconverted coin total inside a conversion
// grouping.
type UserCoinSum struct {
	UserID string `db:"user_id"`
	Coins  int64  `db:"coins"`
}

// Withdrawal records a payout-boundary debit. PayoutBatchID is the external
// provider's reference.
type Withdrawal struct {
	ID            int64           `db:"id"`
	UserID        string          `db:"user_id"`
	AmountUsd     decimal.Decimal `db:"amount_usd"`
	Currency      string          `db:"currency"`
	PayoutBatchID string          `db:"payout_batch_id"`
	Status        string          `db:"status"`
	ProcessedAt   time.Time       `db:"processed_at"`
}
