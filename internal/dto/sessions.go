package dto

import "time"

type StartSessionResponseDTO struct {
	Started           bool   `json:"started" example:"true"`
	Reason            string `json:"reason,omitempty" example:"SESSION_COOLDOWN"`
	RetryAfterSeconds int64  `json:"retry_after_seconds,omitempty" example:"540"`
	SessionID         string `json:"session_id,omitempty" example:"5f8d7a2e-1b9c-4e3f-8a6d-2c5b9e1f4a7d"`
}

type GameResultRequestDTO struct {
	Completed bool `json:"completed" example:"true"`
}

type SessionResponseDTO struct {
	SessionID       string     `json:"session_id" example:"5f8d7a2e-1b9c-4e3f-8a6d-2c5b9e1f4a7d"`
	Status          string     `json:"status" example:"ACTIVE"`
	BaseCoins       int64      `json:"base_coins" example:"100"`
	GameBonus       int64      `json:"game_bonus" example:"20"`
	GamesPlayed     int        `json:"games_played" example:"3"`
	GamesCompleted  int        `json:"games_completed" example:"2"`
	RetryAdsWatched int        `json:"retry_ads_watched" example:"1"`
	CompletedAt     *time.Time `json:"completed_at,omitempty" example:"2026-02-09T16:09:57+03:00"`
}
