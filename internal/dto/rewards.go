package dto

import "github.com/shopspring/decimal"

type RewardAdViewRequestDTO struct {
	CountryCode          string           `json:"country_code" example:"US"`
	ImpressionID         *string          `json:"impression_id,omitempty" example:"imp-9f1c2d"`
	EstimatedEarningsUsd *decimal.Decimal `json:"estimated_earnings_usd,omitempty" example:"0.0042"`
}

type RewardAdViewResponseDTO struct {
	Granted           bool   `json:"granted" example:"true"`
	Reason            string `json:"reason,omitempty" example:"DAILY_AD_LIMIT"`
	CoinsAwarded      int64  `json:"coins_awarded" example:"10"`
	RemainingToday    int    `json:"remaining_today" example:"189"`
	RetryAfterSeconds int64  `json:"retry_after_seconds,omitempty" example:"3600"`
	AdViewID          int64  `json:"ad_view_id,omitempty" example:"1041"`
}

type InterstitialResponseDTO struct {
	UnlockedViews int `json:"unlocked_views" example:"2"`
}
