package withdrawalservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/adrewards/backend/internal/domain"
	"github.com/adrewards/backend/internal/payout"
	"github.com/adrewards/backend/internal/pg"
	"github.com/adrewards/backend/internal/service/ledgerservice"
)

func NewMock(t *testing.T) (*Service, *MockWithdrawalRepo, *MockWalletRepo, *MockLedger, *MockRateSource, *payout.MockProviderI, *MockAuditRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	withdrawalRepo := NewMockWithdrawalRepo(ctrl)
	walletRepo := NewMockWalletRepo(ctrl)
	ledger := NewMockLedger(ctrl)
	rates := NewMockRateSource(ctrl)
	provider := payout.NewMockProviderI(ctrl)
	auditRepo := NewMockAuditRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(withdrawalRepo, walletRepo, ledger, rates, provider, auditRepo, txManager)
	defer ctrl.Finish()
	return service, withdrawalRepo, walletRepo, ledger, rates, provider, auditRepo, txManager
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
		return fn(ctx)
	})
}

func TestWithdraw(t *testing.T) {
	service, withdrawalRepo, walletRepo, ledger, rates, provider, auditRepo, txManager := NewMock(t)
	amount := decimal.RequireFromString("5")
	tests := []struct {
		name          string
		req           Request
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Successful withdrawal in EUR",
			req:  Request{AmountUsd: amount, Currency: "EUR", Recipient: "user@example.com"},
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(&domain.Wallet{
					UserID:         "user-1",
					CashBalanceUsd: decimal.RequireFromString("7.25"),
				}, nil)
				rates.EXPECT().Rate("EUR").Return(decimal.RequireFromString("0.92"))
				provider.EXPECT().CreatePayout(gomock.Any(), "user@example.com", decimal.RequireFromString("4.60"), "EUR", "Ad rewards payout: 5.00 USD").
					Return(&payout.Payout{BatchID: "BATCH-1", Status: "PENDING"}, nil)
				passthroughTx(txManager)
				ledger.EXPECT().ProcessWithdrawal(gomock.Any(), "user-1", amount, "BATCH-1").Return(&domain.Transaction{ID: 9}, nil)
				withdrawalRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, w *domain.Withdrawal) (*domain.Withdrawal, error) {
					assert.Equal(t, "BATCH-1", w.PayoutBatchID)
					assert.Equal(t, domain.WithdrawalStatusPending, w.Status)
					assert.Equal(t, "EUR", w.Currency)
					w.ID = 12
					return w, nil
				})
				auditRepo.EXPECT().Create(gomock.Any(), domain.AuditActionWithdrawal, gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "Empty currency defaults to USD",
			req:  Request{AmountUsd: amount, Recipient: "user@example.com"},
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(&domain.Wallet{
					UserID:         "user-1",
					CashBalanceUsd: decimal.RequireFromString("7.25"),
				}, nil)
				rates.EXPECT().Rate("USD").Return(decimal.NewFromInt(1))
				provider.EXPECT().CreatePayout(gomock.Any(), "user@example.com", decimal.RequireFromString("5.00"), "USD", "Ad rewards payout: 5.00 USD").
					Return(&payout.Payout{BatchID: "BATCH-2", Status: "PENDING"}, nil)
				passthroughTx(txManager)
				ledger.EXPECT().ProcessWithdrawal(gomock.Any(), "user-1", amount, "BATCH-2").Return(&domain.Transaction{}, nil)
				withdrawalRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, w *domain.Withdrawal) (*domain.Withdrawal, error) {
					assert.Equal(t, "USD", w.Currency)
					return w, nil
				})
				auditRepo.EXPECT().Create(gomock.Any(), domain.AuditActionWithdrawal, gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:          "Non-positive amount",
			req:           Request{AmountUsd: decimal.Zero},
			expectedError: ErrInvalidAmount,
		},
		{
			name: "Insufficient cash checked before the provider",
			req:  Request{AmountUsd: decimal.RequireFromString("10")},
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(&domain.Wallet{
					UserID:         "user-1",
					CashBalanceUsd: decimal.RequireFromString("7.25"),
				}, nil)
			},
			expectedError: ErrInsufficientCash,
		},
		{
			name: "Provider failure leaves the ledger untouched",
			req:  Request{AmountUsd: amount, Recipient: "user@example.com"},
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(&domain.Wallet{
					UserID:         "user-1",
					CashBalanceUsd: decimal.RequireFromString("7.25"),
				}, nil)
				rates.EXPECT().Rate("USD").Return(decimal.NewFromInt(1))
				provider.EXPECT().CreatePayout(gomock.Any(), "user@example.com", gomock.Any(), "USD", gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			expectedError: ErrPayoutUnavailable,
		},
		{
			name: "Wallet not found",
			req:  Request{AmountUsd: amount},
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(nil, nil)
			},
			expectedError: ErrWalletNotFound,
		},
		{
			name: "Losing the debit race still reports insufficient cash",
			req:  Request{AmountUsd: amount, Recipient: "user@example.com"},
			prepareMock: func() {
				// The pre-check passes, then a concurrent debit drains the
				// wallet before the ledger re-checks inside the transaction.
				walletRepo.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(&domain.Wallet{
					UserID:         "user-1",
					CashBalanceUsd: decimal.RequireFromString("7.25"),
				}, nil)
				rates.EXPECT().Rate("USD").Return(decimal.NewFromInt(1))
				provider.EXPECT().CreatePayout(gomock.Any(), "user@example.com", gomock.Any(), "USD", gomock.Any()).
					Return(&payout.Payout{BatchID: "BATCH-4", Status: "PENDING"}, nil)
				passthroughTx(txManager)
				ledger.EXPECT().ProcessWithdrawal(gomock.Any(), "user-1", amount, "BATCH-4").
					Return(nil, ledgerservice.ErrInsufficientCash)
			},
			expectedError: ErrInsufficientCash,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			withdrawal, err := service.Withdraw(context.Background(), "user-1", tt.req)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.WithdrawalStatusPending, withdrawal.Status)
		})
	}
}

func TestRefreshStatuses(t *testing.T) {
	service, withdrawalRepo, _, _, _, provider, _, _ := NewMock(t)
	tests := []struct {
		name             string
		prepareMock      func()
		expectedStatuses []string
		expectedError    error
	}{
		{
			name: "Pending rows are polled and updated",
			prepareMock: func() {
				withdrawalRepo.EXPECT().GetByUserID(gomock.Any(), "user-1").Return([]domain.Withdrawal{
					{ID: 1, PayoutBatchID: "BATCH-1", Status: domain.WithdrawalStatusPending},
					{ID: 2, PayoutBatchID: "BATCH-2", Status: domain.WithdrawalStatusCompleted},
					{ID: 3, PayoutBatchID: "BATCH-3", Status: domain.WithdrawalStatusPending},
				}, nil)
				provider.EXPECT().GetPayoutStatus(gomock.Any(), "BATCH-1").Return(domain.WithdrawalStatusCompleted, nil)
				withdrawalRepo.EXPECT().UpdateStatus(gomock.Any(), int64(1), domain.WithdrawalStatusCompleted).Return(nil)
				provider.EXPECT().GetPayoutStatus(gomock.Any(), "BATCH-3").Return(domain.WithdrawalStatusPending, nil)
			},
			expectedStatuses: []string{
				domain.WithdrawalStatusCompleted,
				domain.WithdrawalStatusCompleted,
				domain.WithdrawalStatusPending,
			},
		},
		{
			name: "Poll failure leaves the row pending",
			prepareMock: func() {
				withdrawalRepo.EXPECT().GetByUserID(gomock.Any(), "user-1").Return([]domain.Withdrawal{
					{ID: 1, PayoutBatchID: "BATCH-1", Status: domain.WithdrawalStatusPending},
				}, nil)
				provider.EXPECT().GetPayoutStatus(gomock.Any(), "BATCH-1").Return("", errors.New("timeout"))
			},
			expectedStatuses: []string{domain.WithdrawalStatusPending},
		},
		{
			name: "Error loading withdrawals",
			prepareMock: func() {
				withdrawalRepo.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			withdrawals, err := service.RefreshStatuses(context.Background(), "user-1")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			for i, status := range tt.expectedStatuses {
				assert.Equal(t, status, withdrawals[i].Status)
			}
		})
	}
}
