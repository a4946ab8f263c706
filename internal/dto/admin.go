package dto

import "github.com/shopspring/decimal"

type LocationConversionRequestDTO struct {
	Period           string                     `json:"period" example:"2026-02"`
	RevenueByCountry map[string]decimal.Decimal `json:"revenue_by_country"`
}

type GlobalConversionRequestDTO struct {
	Period     string          `json:"period" example:"2026-02"`
	RevenueUsd decimal.Decimal `json:"revenue_usd" example:"118.3"`
}

type ConversionSummaryResponseDTO struct {
	Period             string          `json:"period" example:"2026-02"`
	CountriesProcessed []string        `json:"countries_processed"`
	CountriesSkipped   []string        `json:"countries_skipped"`
	CountriesFailed    []string        `json:"countries_failed"`
	UsersPaid          int             `json:"users_paid" example:"412"`
	UsersSkipped       int             `json:"users_skipped" example:"1"`
	CoinsConverted     int64           `json:"coins_converted" example:"60210"`
	DistributedUsd     decimal.Decimal `json:"distributed_usd" example:"100.5421"`
	UserShareUsd       decimal.Decimal `json:"user_share_usd" example:"100.555"`
}

type SweepResponseDTO struct {
	WalletsScanned int   `json:"wallets_scanned" example:"37"`
	CoinsExpired   int   `json:"coins_expired" example:"25"`
	CashExpired    int   `json:"cash_expired" example:"14"`
	Failed         int   `json:"failed" example:"0"`
	CoinsZeroed    int64 `json:"coins_zeroed" example:"8120"`
}

type ReconcileResponseDTO struct {
	UserID      string          `json:"user_id" example:"usr-1f6c9b"`
	WalletCoins int64           `json:"wallet_coins" example:"340"`
	SummedCoins int64           `json:"summed_coins" example:"340"`
	WalletCash  decimal.Decimal `json:"wallet_cash" example:"4.2513"`
	SummedCash  decimal.Decimal `json:"summed_cash" example:"4.2513"`
	Consistent  bool            `json:"consistent" example:"true"`
}
