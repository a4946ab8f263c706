package sessions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/adrewards/backend/internal/domain"
	"github.com/adrewards/backend/internal/dto"
	sessionservice "github.com/adrewards/backend/internal/service/sessionservice"
	"github.com/adrewards/backend/pkg/auth"
)

func NewMock(t *testing.T) (*SessionsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func sessionRequest(method, target, sessionID, body string) *http.Request {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	ctx := context.WithValue(context.Background(), auth.UserIDKey, "user-1")
	if sessionID != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", sessionID)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return r.WithContext(ctx)
}

func TestStartSessionHandler(t *testing.T) {
	handler, service := NewMock(t)
	sessionID := uuid.New()
	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.StartSessionResponseDTO
	}{
		{
			name: "Session started",
			prepareMock: func() {
				service.EXPECT().StartSession(gomock.Any(), "user-1").Return(&sessionservice.StartResult{
					Started: true,
					Session: &domain.GameSession{ID: sessionID, Status: domain.SessionStatusActive},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.StartSessionResponseDTO{
				Started:   true,
				SessionID: sessionID.String(),
			},
		},
		{
			name: "Cooldown denial",
			prepareMock: func() {
				service.EXPECT().StartSession(gomock.Any(), "user-1").Return(&sessionservice.StartResult{
					Started:    false,
					Reason:     "SESSION_COOLDOWN",
					RetryAfter: 9 * time.Minute,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.StartSessionResponseDTO{
				Started:           false,
				Reason:            "SESSION_COOLDOWN",
				RetryAfterSeconds: 540,
			},
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().StartSession(gomock.Any(), "user-1").Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := sessionRequest(http.MethodPost, "/sessions", "", "")
			w := httptest.NewRecorder()

			handler.StartSession(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.StartSessionResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestRecordAdCompletionHandler(t *testing.T) {
	handler, service := NewMock(t)
	sessionID := uuid.New()
	tests := []struct {
		name         string
		sessionID    string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:      "Ad credited",
			sessionID: sessionID.String(),
			prepareMock: func() {
				service.EXPECT().RecordAdCompletion(gomock.Any(), "user-1", sessionID).Return(&domain.GameSession{
					ID:        sessionID,
					Status:    domain.SessionStatusActive,
					BaseCoins: 100,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid session id",
			sessionID:    "not-a-uuid",
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:      "Session not found",
			sessionID: sessionID.String(),
			prepareMock: func() {
				service.EXPECT().RecordAdCompletion(gomock.Any(), "user-1", sessionID).
					Return(nil, sessionservice.ErrSessionNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:      "Session not active",
			sessionID: sessionID.String(),
			prepareMock: func() {
				service.EXPECT().RecordAdCompletion(gomock.Any(), "user-1", sessionID).
					Return(nil, sessionservice.ErrSessionNotActive)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:      "Internal server error",
			sessionID: sessionID.String(),
			prepareMock: func() {
				service.EXPECT().RecordAdCompletion(gomock.Any(), "user-1", sessionID).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := sessionRequest(http.MethodPost, "/sessions/"+tt.sessionID+"/ad", tt.sessionID, "")
			w := httptest.NewRecorder()

			handler.RecordAdCompletion(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.SessionResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, sessionID.String(), body.SessionID)
				assert.Equal(t, int64(100), body.BaseCoins)
			}
		})
	}
}

func TestRecordGameResultHandler(t *testing.T) {
	handler, service := NewMock(t)
	sessionID := uuid.New()
	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Completed game adds the bonus",
			body: `{"completed":true}`,
			prepareMock: func() {
				service.EXPECT().RecordGameResult(gomock.Any(), "user-1", sessionID, true).Return(&domain.GameSession{
					ID:             sessionID,
					Status:         domain.SessionStatusActive,
					GamesPlayed:    3,
					GamesCompleted: 2,
					GameBonus:      20,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Failed game counts the attempt only",
			body: `{"completed":false}`,
			prepareMock: func() {
				service.EXPECT().RecordGameResult(gomock.Any(), "user-1", sessionID, false).Return(&domain.GameSession{
					ID:          sessionID,
					Status:      domain.SessionStatusActive,
					GamesPlayed: 4,
					GameBonus:   20,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{"completed":invalid}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := sessionRequest(http.MethodPost, "/sessions/"+sessionID.String()+"/game", sessionID.String(), tt.body)
			w := httptest.NewRecorder()

			handler.RecordGameResult(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestRecordRetryAdHandler(t *testing.T) {
	handler, service := NewMock(t)
	sessionID := uuid.New()

	service.EXPECT().RecordRetryAd(gomock.Any(), "user-1", sessionID).Return(&domain.GameSession{
		ID:              sessionID,
		Status:          domain.SessionStatusActive,
		RetryAdsWatched: 2,
	}, nil)

	r := sessionRequest(http.MethodPost, "/sessions/"+sessionID.String()+"/retry-ad", sessionID.String(), "")
	w := httptest.NewRecorder()

	handler.RecordRetryAd(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.SessionResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, 2, body.RetryAdsWatched)
}

func TestFinishSessionHandler(t *testing.T) {
	handler, service := NewMock(t)
	sessionID := uuid.New()
	completedAt := time.Now().Truncate(time.Second)
	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Session completed",
			prepareMock: func() {
				service.EXPECT().FinishSession(gomock.Any(), "user-1", sessionID).Return(&domain.GameSession{
					ID:             sessionID,
					Status:         domain.SessionStatusCompleted,
					BaseCoins:      100,
					GameBonus:      20,
					GamesPlayed:    3,
					GamesCompleted: 2,
					CompletedAt:    &completedAt,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Already completed",
			prepareMock: func() {
				service.EXPECT().FinishSession(gomock.Any(), "user-1", sessionID).
					Return(nil, sessionservice.ErrSessionNotActive)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := sessionRequest(http.MethodPost, "/sessions/"+sessionID.String()+"/finish", sessionID.String(), "")
			w := httptest.NewRecorder()

			handler.FinishSession(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.SessionResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, domain.SessionStatusCompleted, body.Status)
				assert.Equal(t, int64(120), body.BaseCoins+body.GameBonus)
				assert.NotNil(t, body.CompletedAt)
			}
		})
	}
}
