package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/adrewards/backend/internal/domain"
	"github.com/adrewards/backend/internal/dto"
	conversionservice "github.com/adrewards/backend/internal/service/conversionservice"
	ledgerservice "github.com/adrewards/backend/internal/service/ledgerservice"
	"github.com/adrewards/backend/pkg/utils"
)

type ConversionService interface {
	ProcessLocationPools(ctx context.Context, period string, revenueByCountry map[string]decimal.Decimal) (*conversionservice.BatchSummary, error)
	ProcessGlobalPool(ctx context.Context, period string, revenueUsd decimal.Decimal) (*conversionservice.BatchSummary, error)
}

type SweepService interface {
	Sweep(ctx context.Context) (*domain.BalanceSweepAudit, error)
}

type LedgerService interface {
	Reconcile(ctx context.Context, userID string) (*ledgerservice.ReconcileReport, error)
}

type AdminHandler struct {
	conversionService ConversionService
	sweepService      SweepService
	ledgerService     LedgerService
	conversionTimeout time.Duration
}

func New(conversionService ConversionService, sweepService SweepService, ledgerService LedgerService, conversionTimeout time.Duration) *AdminHandler {
	return &AdminHandler{
		conversionService: conversionService,
		sweepService:      sweepService,
		ledgerService:     ledgerService,
		conversionTimeout: conversionTimeout,
	}
}

// ProcessLocationPools godoc
//
//	@Summary		Run location-pool conversion
//	@Description	Convert each listed country's unconverted coins against its reported revenue for the period. Each country runs in its own transaction; already-completed pools are skipped.
//	@Tags			Admin
//	@Security		AdminToken
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LocationConversionRequestDTO	true	"Period and per-country revenue"
//	@Success		200		{object}	dto.ConversionSummaryResponseDTO	"Batch summary"
//	@Failure		401		{object}	utils.Response						"Missing or invalid admin token"
//	@Failure		422		{object}	utils.Response						"Invalid period or empty revenue map"
//	@Failure		500		{object}	utils.Response						"Internal server error"
//	@Router			/api/admin/conversions/location [post]
func (h *AdminHandler) ProcessLocationPools(w http.ResponseWriter, r *http.Request) {
	var req dto.LocationConversionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !validPeriod(req.Period) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "period must be YYYY-MM")
		return
	}
	if len(req.RevenueByCountry) == 0 {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "revenue_by_country must not be empty")
		return
	}

	// The batch is bounded as a whole; a country that runs past the
	// deadline lands in CountriesFailed and can be rerun.
	ctx, cancel := context.WithTimeout(r.Context(), h.conversionTimeout)
	defer cancel()

	summary, err := h.conversionService.ProcessLocationPools(ctx, req.Period, req.RevenueByCountry)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSummaryDTO(summary))
}

// ProcessGlobalPool godoc
//
//	@Summary		Run global-pool conversion
//	@Description	Convert every remaining unconverted coin regardless of country. Intended to run after the period's location pools.
//	@Tags			Admin
//	@Security		AdminToken
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.GlobalConversionRequestDTO		true	"Period and revenue"
//	@Success		200		{object}	dto.ConversionSummaryResponseDTO	"Batch summary"
//	@Failure		401		{object}	utils.Response						"Missing or invalid admin token"
//	@Failure		422		{object}	utils.Response						"Invalid period"
//	@Failure		500		{object}	utils.Response						"Internal server error"
//	@Router			/api/admin/conversions/global [post]
func (h *AdminHandler) ProcessGlobalPool(w http.ResponseWriter, r *http.Request) {
	var req dto.GlobalConversionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !validPeriod(req.Period) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "period must be YYYY-MM")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.conversionTimeout)
	defer cancel()

	summary, err := h.conversionService.ProcessGlobalPool(ctx, req.Period, req.RevenueUsd)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSummaryDTO(summary))
}

// Sweep godoc
//
//	@Summary		Run a balance expiry sweep
//	@Description	Zero out coin and cash balances of wallets inactive past their grace periods. Per-wallet failures are counted, not fatal.
//	@Tags			Admin
//	@Security		AdminToken
//	@Produce		json
//	@Success		200	{object}	dto.SweepResponseDTO	"Sweep summary"
//	@Failure		401	{object}	utils.Response			"Missing or invalid admin token"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/sweep [post]
func (h *AdminHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	summary, err := h.sweepService.Sweep(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SweepResponseDTO{
		WalletsScanned: summary.WalletsScanned,
		CoinsExpired:   summary.CoinsExpired,
		CashExpired:    summary.CashExpired,
		Failed:         summary.Failed,
		CoinsZeroed:    summary.CoinsZeroed,
	})
}

// Reconcile godoc
//
//	@Summary		Reconcile a user's ledger
//	@Description	Replay the user's transaction deltas from zero and compare against the wallet balances.
//	@Tags			Admin
//	@Security		AdminToken
//	@Produce		json
//	@Param			id	path		string					true	"User id"
//	@Success		200	{object}	dto.ReconcileResponseDTO	"Reconciliation report"
//	@Failure		401	{object}	utils.Response			"Missing or invalid admin token"
//	@Failure		404	{object}	utils.Response			"Wallet not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/users/{id}/reconcile [get]
func (h *AdminHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	report, err := h.ledgerService.Reconcile(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrWalletNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ReconcileResponseDTO{
		UserID:      report.UserID,
		WalletCoins: report.WalletCoins,
		SummedCoins: report.SummedCoins,
		WalletCash:  report.WalletCash,
		SummedCash:  report.SummedCash,
		Consistent:  report.Consistent,
	})
}

func toSummaryDTO(summary *conversionservice.BatchSummary) dto.ConversionSummaryResponseDTO {
	return dto.ConversionSummaryResponseDTO{
		Period:             summary.Period,
		CountriesProcessed: summary.CountriesProcessed,
		CountriesSkipped:   summary.CountriesSkipped,
		CountriesFailed:    summary.CountriesFailed,
		UsersPaid:          summary.UsersPaid,
		UsersSkipped:       summary.UsersSkipped,
		CoinsConverted:     summary.CoinsConverted,
		DistributedUsd:     summary.DistributedUsd,
		UserShareUsd:       summary.UserShareUsd,
	}
}

func validPeriod(period string) bool {
	_, err := time.Parse("2006-01", period)
	return err == nil
}
