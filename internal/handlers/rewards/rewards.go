package rewards

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/adrewards/backend/internal/dto"
	adviewservice "github.com/adrewards/backend/internal/service/adviewservice"
	"github.com/adrewards/backend/pkg/auth"
	"github.com/adrewards/backend/pkg/utils"
)

type Service interface {
	RewardAdView(ctx context.Context, userID string, req adviewservice.RewardRequest) (*adviewservice.RewardResult, error)
	RecordInterstitial(ctx context.Context, userID string) (int, error)
}

type RewardsHandler struct {
	rewardService Service
}

func New(rewardService Service) *RewardsHandler {
	return &RewardsHandler{
		rewardService: rewardService,
	}
}

// RewardAdView godoc
//
//	@Summary		Reward a completed ad view
//	@Description	Run the cap and fraud gates and, when allowed, record the ad view and award coins. Policy denials return 200 with granted=false and a reason code.
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RewardAdViewRequestDTO	true	"Ad view payload"
//	@Success		200		{object}	dto.RewardAdViewResponseDTO	"Reward verdict"
//	@Failure		400		{object}	utils.Response				"Missing country code"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/adviews [post]
func (h *RewardsHandler) RewardAdView(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.RewardAdViewRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var earnings decimal.NullDecimal
	if req.EstimatedEarningsUsd != nil {
		earnings = decimal.NewNullDecimal(*req.EstimatedEarningsUsd)
	}

	result, err := h.rewardService.RewardAdView(r.Context(), userID, adviewservice.RewardRequest{
		CountryCode:          req.CountryCode,
		IPAddress:            clientIP(r),
		ImpressionID:         req.ImpressionID,
		EstimatedEarningsUsd: earnings,
	})
	if err != nil {
		switch {
		case errors.Is(err, adviewservice.ErrCountryRequired):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.RewardAdViewResponseDTO{
		Granted:           result.Granted,
		Reason:            result.Reason,
		CoinsAwarded:      result.CoinsAwarded,
		RemainingToday:    result.RemainingToday,
		RetryAfterSeconds: int64(result.RetryAfter.Seconds()),
		AdViewID:          result.AdViewID,
	})
}

// RecordInterstitial godoc
//
//	@Summary		Record a watched interstitial
//	@Description	Credit a forced interstitial against the user's interstitial debt. Earns no coins; unblocks the next rewarded views.
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.InterstitialResponseDTO	"Views unlocked by this interstitial"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/interstitials [post]
func (h *RewardsHandler) RecordInterstitial(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	unlocked, err := h.rewardService.RecordInterstitial(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.InterstitialResponseDTO{UnlockedViews: unlocked})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
