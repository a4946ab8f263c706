package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/adrewards/backend/internal/domain"
	"github.com/adrewards/backend/internal/dto"
	withdrawalservice "github.com/adrewards/backend/internal/service/withdrawalservice"
	"github.com/adrewards/backend/pkg/auth"
)

func NewMock(t *testing.T) (*WalletHandler, *MockService, *MockWithdrawService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	withdrawService := NewMockWithdrawService(ctrl)
	handler := New(service, withdrawService)
	defer ctrl.Finish()
	return handler, service, withdrawService
}

func authCtx(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, "user-1"))
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.BalanceResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().GetWallet(gomock.Any(), "user-1").Return(&domain.Wallet{
					CoinsBalance:       340,
					CashBalanceUsd:     decimal.RequireFromString("4.2513"),
					TotalCoinsEarned:   1200,
					TotalCashEarnedUsd: decimal.RequireFromString("12.04"),
					TotalWithdrawnUsd:  decimal.RequireFromString("7.5"),
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BalanceResponseDTO{
				CoinsBalance:       340,
				CashBalanceUsd:     decimal.RequireFromString("4.2513"),
				TotalCoinsEarned:   1200,
				TotalCashEarnedUsd: decimal.RequireFromString("12.04"),
				TotalWithdrawnUsd:  decimal.RequireFromString("7.5"),
			},
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetWallet(gomock.Any(), "user-1").Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := authCtx(httptest.NewRequest(http.MethodGet, "/balance", nil))
			w := httptest.NewRecorder()

			handler.GetBalance(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody.CoinsBalance, body.CoinsBalance)
				assert.True(t, tt.expectedBody.CashBalanceUsd.Equal(body.CashBalanceUsd))
				assert.True(t, tt.expectedBody.TotalWithdrawnUsd.Equal(body.TotalWithdrawnUsd))
			}
		})
	}
}

func TestGetTransactionsHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().GetTransactions(gomock.Any(), "user-1").Return([]domain.Transaction{
					{
						ID:                57,
						Type:              domain.TxTypeCoinEarn,
						CoinsDelta:        10,
						CoinsBalanceAfter: 350,
						ReferenceID:       "1041",
						ReferenceType:     "ad_view",
						CreatedAt:         time.Now(),
					},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No transactions",
			prepareMock: func() {
				service.EXPECT().GetTransactions(gomock.Any(), "user-1").Return([]domain.Transaction{}, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetTransactions(gomock.Any(), "user-1").Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := authCtx(httptest.NewRequest(http.MethodGet, "/transactions", nil))
			w := httptest.NewRecorder()

			handler.GetTransactions(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.GetTransactionsResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, 1)
				assert.Equal(t, domain.TxTypeCoinEarn, body[0].Type)
				assert.Equal(t, int64(350), body[0].CoinsBalanceAfter)
			}
		})
	}
}

func TestWithdrawHandler(t *testing.T) {
	handler, _, withdrawService := NewMock(t)
	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful withdrawal",
			body: `{"amount_usd":"5","currency":"EUR","recipient":"user@example.com"}`,
			prepareMock: func() {
				withdrawService.EXPECT().
					Withdraw(gomock.Any(), "user-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, req withdrawalservice.Request) (*domain.Withdrawal, error) {
						assert.True(t, req.AmountUsd.Equal(decimal.RequireFromString("5")))
						assert.Equal(t, "EUR", req.Currency)
						return &domain.Withdrawal{
							ID:            12,
							AmountUsd:     req.AmountUsd,
							Currency:      "EUR",
							PayoutBatchID: "BATCH-1",
							Status:        domain.WithdrawalStatusPending,
							ProcessedAt:   time.Now(),
						}, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{"amount_usd":invalid}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name: "Invalid amount",
			body: `{"amount_usd":"0"}`,
			prepareMock: func() {
				withdrawService.EXPECT().
					Withdraw(gomock.Any(), "user-1", gomock.Any()).
					Return(nil, withdrawalservice.ErrInvalidAmount)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "withdrawal amount must be positive",
		},
		{
			name: "Insufficient balance",
			body: `{"amount_usd":"500"}`,
			prepareMock: func() {
				withdrawService.EXPECT().
					Withdraw(gomock.Any(), "user-1", gomock.Any()).
					Return(nil, withdrawalservice.ErrInsufficientCash)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: "insufficient cash balance",
		},
		{
			name: "Provider unavailable",
			body: `{"amount_usd":"5"}`,
			prepareMock: func() {
				withdrawService.EXPECT().
					Withdraw(gomock.Any(), "user-1", gomock.Any()).
					Return(nil, withdrawalservice.ErrPayoutUnavailable)
			},
			expectedCode:  http.StatusServiceUnavailable,
			expectedError: "Payout provider unavailable",
		},
		{
			name: "Internal server error",
			body: `{"amount_usd":"5"}`,
			prepareMock: func() {
				withdrawService.EXPECT().
					Withdraw(gomock.Any(), "user-1", gomock.Any()).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := authCtx(httptest.NewRequest(http.MethodPost, "/balance/withdraw", bytes.NewBufferString(tt.body)))
			w := httptest.NewRecorder()

			handler.Withdraw(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.GetWithdrawalsResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "BATCH-1", body.PayoutBatchID)
				assert.Equal(t, domain.WithdrawalStatusPending, body.Status)
			}
		})
	}
}

func TestGetWithdrawalsHandler(t *testing.T) {
	handler, _, withdrawService := NewMock(t)
	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful retrieval refreshes statuses",
			prepareMock: func() {
				withdrawService.EXPECT().RefreshStatuses(gomock.Any(), "user-1").Return([]domain.Withdrawal{
					{
						ID:            12,
						AmountUsd:     decimal.RequireFromString("5"),
						Currency:      "EUR",
						PayoutBatchID: "BATCH-1",
						Status:        domain.WithdrawalStatusCompleted,
						ProcessedAt:   time.Now(),
					},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No withdrawals",
			prepareMock: func() {
				withdrawService.EXPECT().RefreshStatuses(gomock.Any(), "user-1").Return([]domain.Withdrawal{}, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				withdrawService.EXPECT().RefreshStatuses(gomock.Any(), "user-1").Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := authCtx(httptest.NewRequest(http.MethodGet, "/withdrawals", nil))
			w := httptest.NewRecorder()

			handler.GetWithdrawals(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.GetWithdrawalsResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, 1)
				assert.Equal(t, domain.WithdrawalStatusCompleted, body[0].Status)
			}
		})
	}
}
