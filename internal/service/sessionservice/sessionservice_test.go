package sessionservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/adrewards/backend/internal/domain"
	"github.com/adrewards/backend/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockSessionRepo, *MockLedger, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	sessionRepo := NewMockSessionRepo(ctrl)
	ledger := NewMockLedger(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(sessionRepo, ledger, txManager, 20, 15*time.Minute, 100, 10)
	defer ctrl.Finish()
	return service, sessionRepo, ledger, txManager
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
		return fn(ctx)
	})
}

func TestStartSession(t *testing.T) {
	service, sessionRepo, _, _ := NewMock(t)
	tests := []struct {
		name           string
		prepareMock    func()
		expectedResult *StartResult
		expectedError  error
	}{
		{
			name: "Start successfully",
			prepareMock: func() {
				sessionRepo.EXPECT().CountCompletedToday(gomock.Any(), "user-1").Return(3, nil)
				sessionRepo.EXPECT().LastCompletedAt(gomock.Any(), "user-1").Return(nil, nil)
				sessionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, session *domain.GameSession) (*domain.GameSession, error) {
					assert.Equal(t, domain.SessionStatusActive, session.Status)
					assert.Equal(t, "user-1", session.UserID)
					return session, nil
				})
			},
			expectedResult: &StartResult{Started: true},
		},
		{
			name: "Daily session limit reached",
			prepareMock: func() {
				sessionRepo.EXPECT().CountCompletedToday(gomock.Any(), "user-1").Return(20, nil)
			},
			expectedResult: &StartResult{Reason: ReasonDailySessionLimit},
		},
		{
			name: "Cooldown still running",
			prepareMock: func() {
				last := time.Now().Add(-5 * time.Minute)
				sessionRepo.EXPECT().CountCompletedToday(gomock.Any(), "user-1").Return(3, nil)
				sessionRepo.EXPECT().LastCompletedAt(gomock.Any(), "user-1").Return(&last, nil)
			},
			expectedResult: &StartResult{Reason: ReasonSessionCooldown},
		},
		{
			name: "Cooldown elapsed",
			prepareMock: func() {
				last := time.Now().Add(-30 * time.Minute)
				sessionRepo.EXPECT().CountCompletedToday(gomock.Any(), "user-1").Return(3, nil)
				sessionRepo.EXPECT().LastCompletedAt(gomock.Any(), "user-1").Return(&last, nil)
				sessionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, session *domain.GameSession) (*domain.GameSession, error) {
					return session, nil
				})
			},
			expectedResult: &StartResult{Started: true},
		},
		{
			name: "Error counting completed sessions",
			prepareMock: func() {
				sessionRepo.EXPECT().CountCompletedToday(gomock.Any(), "user-1").Return(0, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			result, err := service.StartSession(context.Background(), "user-1")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedResult.Started, result.Started)
			assert.Equal(t, tt.expectedResult.Reason, result.Reason)
			if result.Started {
				assert.NotNil(t, result.Session)
			}
			if result.Reason == ReasonSessionCooldown {
				assert.Greater(t, result.RetryAfter, time.Duration(0))
				assert.LessOrEqual(t, result.RetryAfter, 15*time.Minute)
			}
		})
	}
}

func TestRecordAdCompletion(t *testing.T) {
	service, sessionRepo, _, _ := NewMock(t)
	sessionID := uuid.New()
	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Base coins accumulate",
			prepareMock: func() {
				sessionRepo.EXPECT().GetByID(gomock.Any(), sessionID).Return(&domain.GameSession{
					ID:     sessionID,
					UserID: "user-1",
					Status: domain.SessionStatusActive,
				}, nil)
				sessionRepo.EXPECT().UpdateAccumulators(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, session *domain.GameSession) error {
					assert.Equal(t, int64(100), session.BaseCoins)
					return nil
				})
			},
		},
		{
			name: "Session not found",
			prepareMock: func() {
				sessionRepo.EXPECT().GetByID(gomock.Any(), sessionID).Return(nil, nil)
			},
			expectedError: ErrSessionNotFound,
		},
		{
			name: "Another user's session looks absent",
			prepareMock: func() {
				sessionRepo.EXPECT().GetByID(gomock.Any(), sessionID).Return(&domain.GameSession{
					ID:     sessionID,
					UserID: "user-2",
					Status: domain.SessionStatusActive,
				}, nil)
			},
			expectedError: ErrSessionNotFound,
		},
		{
			name: "Completed session rejects mutation",
			prepareMock: func() {
				sessionRepo.EXPECT().GetByID(gomock.Any(), sessionID).Return(&domain.GameSession{
					ID:     sessionID,
					UserID: "user-1",
					Status: domain.SessionStatusCompleted,
				}, nil)
			},
			expectedError: ErrSessionNotActive,
		},
		{
			name: "Session completed mid-flight",
			prepareMock: func() {
				sessionRepo.EXPECT().GetByID(gomock.Any(), sessionID).Return(&domain.GameSession{
					ID:     sessionID,
					UserID: "user-1",
					Status: domain.SessionStatusActive,
				}, nil)
				sessionRepo.EXPECT().UpdateAccumulators(gomock.Any(), gomock.Any()).Return(pgx.ErrNoRows)
			},
			expectedError: ErrSessionNotActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			session, err := service.RecordAdCompletion(context.Background(), "user-1", sessionID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(100), session.BaseCoins)
			}
		})
	}
}

func TestRecordGameResult(t *testing.T) {
	service, sessionRepo, _, _ := NewMock(t)
	sessionID := uuid.New()
	tests := []struct {
		name              string
		completed         bool
		expectedPlayed    int
		expectedCompleted int
		expectedBonus     int64
	}{
		{
			name:              "Completed game adds the bonus",
			completed:         true,
			expectedPlayed:    3,
			expectedCompleted: 2,
			expectedBonus:     20,
		},
		{
			name:              "Failed game only counts the attempt",
			completed:         false,
			expectedPlayed:    3,
			expectedCompleted: 1,
			expectedBonus:     10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessionRepo.EXPECT().GetByID(gomock.Any(), sessionID).Return(&domain.GameSession{
				ID:             sessionID,
				UserID:         "user-1",
				Status:         domain.SessionStatusActive,
				GamesPlayed:    2,
				GamesCompleted: 1,
				GameBonus:      10,
			}, nil)
			sessionRepo.EXPECT().UpdateAccumulators(gomock.Any(), gomock.Any()).Return(nil)

			session, err := service.RecordGameResult(context.Background(), "user-1", sessionID, tt.completed)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedPlayed, session.GamesPlayed)
			assert.Equal(t, tt.expectedCompleted, session.GamesCompleted)
			assert.Equal(t, tt.expectedBonus, session.GameBonus)
		})
	}
}

func TestRecordRetryAd(t *testing.T) {
	service, sessionRepo, _, _ := NewMock(t)
	sessionID := uuid.New()

	sessionRepo.EXPECT().GetByID(gomock.Any(), sessionID).Return(&domain.GameSession{
		ID:     sessionID,
		UserID: "user-1",
		Status: domain.SessionStatusActive,
	}, nil)
	sessionRepo.EXPECT().UpdateAccumulators(gomock.Any(), gomock.Any()).Return(nil)

	session, err := service.RecordRetryAd(context.Background(), "user-1", sessionID)
	assert.NoError(t, err)
	assert.Equal(t, 1, session.RetryAdsWatched)
}

func TestFinishSession(t *testing.T) {
	service, sessionRepo, ledger, txManager := NewMock(t)
	sessionID := uuid.New()
	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Pays base coins plus game bonus once",
			prepareMock: func() {
				sessionRepo.EXPECT().GetByID(gomock.Any(), sessionID).Return(&domain.GameSession{
					ID:        sessionID,
					UserID:    "user-1",
					Status:    domain.SessionStatusActive,
					BaseCoins: 100,
					GameBonus: 20,
				}, nil)
				passthroughTx(txManager)
				sessionRepo.EXPECT().Complete(gomock.Any(), sessionID, gomock.Any()).Return(true, nil)
				ledger.EXPECT().AwardCoins(gomock.Any(), "user-1", int64(120), domain.TxTypeCoinEarn, sessionID.String(), "game_session").Return(&domain.Transaction{ID: 5}, nil)
			},
		},
		{
			name: "Zero accumulated coins skip the ledger",
			prepareMock: func() {
				sessionRepo.EXPECT().GetByID(gomock.Any(), sessionID).Return(&domain.GameSession{
					ID:     sessionID,
					UserID: "user-1",
					Status: domain.SessionStatusActive,
				}, nil)
				passthroughTx(txManager)
				sessionRepo.EXPECT().Complete(gomock.Any(), sessionID, gomock.Any()).Return(true, nil)
			},
		},
		{
			name: "Second finish is rejected",
			prepareMock: func() {
				sessionRepo.EXPECT().GetByID(gomock.Any(), sessionID).Return(&domain.GameSession{
					ID:     sessionID,
					UserID: "user-1",
					Status: domain.SessionStatusCompleted,
				}, nil)
			},
			expectedError: ErrSessionNotActive,
		},
		{
			name: "Racing finish loses on the status guard",
			prepareMock: func() {
				sessionRepo.EXPECT().GetByID(gomock.Any(), sessionID).Return(&domain.GameSession{
					ID:        sessionID,
					UserID:    "user-1",
					Status:    domain.SessionStatusActive,
					BaseCoins: 100,
				}, nil)
				passthroughTx(txManager)
				sessionRepo.EXPECT().Complete(gomock.Any(), sessionID, gomock.Any()).Return(false, nil)
			},
			expectedError: ErrSessionNotActive,
		},
		{
			name: "Award failure rolls the finish back",
			prepareMock: func() {
				sessionRepo.EXPECT().GetByID(gomock.Any(), sessionID).Return(&domain.GameSession{
					ID:        sessionID,
					UserID:    "user-1",
					Status:    domain.SessionStatusActive,
					BaseCoins: 100,
				}, nil)
				passthroughTx(txManager)
				sessionRepo.EXPECT().Complete(gomock.Any(), sessionID, gomock.Any()).Return(true, nil)
				ledger.EXPECT().AwardCoins(gomock.Any(), "user-1", int64(100), domain.TxTypeCoinEarn, sessionID.String(), "game_session").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			session, err := service.FinishSession(context.Background(), "user-1", sessionID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.SessionStatusCompleted, session.Status)
			assert.NotNil(t, session.CompletedAt)
		})
	}
}
