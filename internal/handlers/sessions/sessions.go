package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/adrewards/backend/internal/domain"
	"github.com/adrewards/backend/internal/dto"
	sessionservice "github.com/adrewards/backend/internal/service/sessionservice"
	"github.com/adrewards/backend/pkg/auth"
	"github.com/adrewards/backend/pkg/utils"
)

type Service interface {
	StartSession(ctx context.Context, userID string) (*sessionservice.StartResult, error)
	RecordAdCompletion(ctx context.Context, userID string, sessionID uuid.UUID) (*domain.GameSession, error)
	RecordGameResult(ctx context.Context, userID string, sessionID uuid.UUID, completed bool) (*domain.GameSession, error)
	RecordRetryAd(ctx context.Context, userID string, sessionID uuid.UUID) (*domain.GameSession, error)
	FinishSession(ctx context.Context, userID string, sessionID uuid.UUID) (*domain.GameSession, error)
}

type SessionsHandler struct {
	sessionService Service
}

func New(sessionService Service) *SessionsHandler {
	return &SessionsHandler{
		sessionService: sessionService,
	}
}

// StartSession godoc
//
//	@Summary		Start a play-and-earn session
//	@Description	Create an active session, gated by the daily completed-session limit and the cooldown since the last completed session.
//	@Tags			Sessions
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.StartSessionResponseDTO	"Start verdict"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/sessions [post]
func (h *SessionsHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	result, err := h.sessionService.StartSession(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := dto.StartSessionResponseDTO{
		Started:           result.Started,
		Reason:            result.Reason,
		RetryAfterSeconds: int64(result.RetryAfter.Seconds()),
	}
	if result.Session != nil {
		resp.SessionID = result.Session.ID.String()
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// RecordAdCompletion godoc
//
//	@Summary		Credit the session's opt-in rewarded ad
//	@Description	Accumulate the session's base coins. Provisional: nothing is paid until the session finishes.
//	@Tags			Sessions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Session id"
//	@Success		200	{object}	dto.SessionResponseDTO	"Session state"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Session not found"
//	@Failure		409	{object}	utils.Response			"Session not active"
//	@Failure		422	{object}	utils.Response			"Invalid session id"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/sessions/{id}/ad [post]
func (h *SessionsHandler) RecordAdCompletion(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.sessionService.RecordAdCompletion)
}

// RecordGameResult godoc
//
//	@Summary		Record a mini-game attempt
//	@Description	Accumulate one played game; a completed game adds the per-game bonus to the session.
//	@Tags			Sessions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Session id"
//	@Param			request	body		dto.GameResultRequestDTO	true	"Game result payload"
//	@Success		200		{object}	dto.SessionResponseDTO		"Session state"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		404		{object}	utils.Response				"Session not found"
//	@Failure		409		{object}	utils.Response				"Session not active"
//	@Failure		422		{object}	utils.Response				"Invalid session id"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/sessions/{id}/game [post]
func (h *SessionsHandler) RecordGameResult(w http.ResponseWriter, r *http.Request) {
	var req dto.GameResultRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.mutate(w, r, func(ctx context.Context, userID string, sessionID uuid.UUID) (*domain.GameSession, error) {
		return h.sessionService.RecordGameResult(ctx, userID, sessionID, req.Completed)
	})
}

// RecordRetryAd godoc
//
//	@Summary		Record a retry ad
//	@Description	Count a rewarded ad watched to retry a failed mini-game. Tracked per session; earns no coins by itself.
//	@Tags			Sessions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Session id"
//	@Success		200	{object}	dto.SessionResponseDTO	"Session state"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Session not found"
//	@Failure		409	{object}	utils.Response			"Session not active"
//	@Failure		422	{object}	utils.Response			"Invalid session id"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/sessions/{id}/retry-ad [post]
func (h *SessionsHandler) RecordRetryAd(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.sessionService.RecordRetryAd)
}

// FinishSession godoc
//
//	@Summary		Finish a session and pay out its coins
//	@Description	Award the accumulated base coins plus game bonus in one ledger operation and complete the session. Finishing twice is rejected.
//	@Tags			Sessions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Session id"
//	@Success		200	{object}	dto.SessionResponseDTO	"Completed session"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Session not found"
//	@Failure		409	{object}	utils.Response			"Session already completed"
//	@Failure		422	{object}	utils.Response			"Invalid session id"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/sessions/{id}/finish [post]
func (h *SessionsHandler) FinishSession(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.sessionService.FinishSession)
}

func (h *SessionsHandler) mutate(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, userID string, sessionID uuid.UUID) (*domain.GameSession, error)) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid session id")
		return
	}

	session, err := op(r.Context(), userID, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessionservice.ErrSessionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, sessionservice.ErrSessionNotActive):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.SessionResponseDTO{
		SessionID:       session.ID.String(),
		Status:          session.Status,
		BaseCoins:       session.BaseCoins,
		GameBonus:       session.GameBonus,
		GamesPlayed:     session.GamesPlayed,
		GamesCompleted:  session.GamesCompleted,
		RetryAdsWatched: session.RetryAdsWatched,
		CompletedAt:     session.CompletedAt,
	})
}
