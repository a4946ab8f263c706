package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type BalanceResponseDTO struct {
	CoinsBalance       int64           `json:"coins_balance" example:"340"`
	CashBalanceUsd     decimal.Decimal `json:"cash_balance_usd" example:"4.2513"`
	TotalCoinsEarned   int64           `json:"total_coins_earned" example:"1200"`
	TotalCashEarnedUsd decimal.Decimal `json:"total_cash_earned_usd" example:"12.04"`
	TotalWithdrawnUsd  decimal.Decimal `json:"total_withdrawn_usd" example:"7.5"`
}

type GetTransactionsResponseDTO struct {
	ID                  int64           `json:"id" example:"57"`
	Type                string          `json:"type" example:"COIN_EARN"`
	CoinsDelta          int64           `json:"coins_delta" example:"10"`
	CashDeltaUsd        decimal.Decimal `json:"cash_delta_usd" example:"0"`
	CoinsBalanceAfter   int64           `json:"coins_balance_after" example:"350"`
	CashBalanceAfterUsd decimal.Decimal `json:"cash_balance_after_usd" example:"4.2513"`
	ReferenceID         string          `json:"reference_id,omitempty" example:"1041"`
	ReferenceType       string          `json:"reference_type,omitempty" example:"ad_view"`
	CreatedAt           time.Time       `json:"created_at" example:"2026-02-09T16:09:57+03:00"`
}

type WithdrawRequestDTO struct {
	AmountUsd decimal.Decimal `json:"amount_usd" example:"5"`
	Currency  string          `json:"currency,omitempty" example:"EUR"`
	Recipient string          `json:"recipient" example:"user@example.com"`
}

type GetWithdrawalsResponseDTO struct {
	ID            int64           `json:"id" example:"12"`
	AmountUsd     decimal.Decimal `json:"amount_usd" example:"5"`
	Currency      string          `json:"currency" example:"EUR"`
	PayoutBatchID string          `json:"payout_batch_id" example:"BATCH-7HQX2"`
	Status        string          `json:"status" example:"PENDING"`
	ProcessedAt   time.Time       `json:"processed_at" example:"2026-02-09T16:09:57+03:00"`
}
