package ledgerservice

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/adrewards/backend/internal/domain"
	"github.com/adrewards/backend/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockWalletRepo, *MockTransactionRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	walletRepo := NewMockWalletRepo(ctrl)
	txnRepo := NewMockTransactionRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(walletRepo, txnRepo, txManager)
	defer ctrl.Finish()
	return service, walletRepo, txnRepo, txManager
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
		return fn(ctx)
	})
}

func echoCreate(txnRepo *MockTransactionRepo) {
	txnRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
		txn.ID = 1
		return txn, nil
	})
}

func TestAwardCoins(t *testing.T) {
	service, walletRepo, txnRepo, txManager := NewMock(t)
	tests := []struct {
		name          string
		amount        int64
		prepareMock   func()
		expectedTxn   *domain.Transaction
		expectedError error
	}{
		{
			name:   "Award coins successfully",
			amount: 10,
			prepareMock: func() {
				passthroughTx(txManager)
				walletRepo.EXPECT().GetForUpdate(gomock.Any(), "user-1").Return(&domain.Wallet{
					UserID:           "user-1",
					CoinsBalance:     100,
					TotalCoinsEarned: 500,
				}, nil)
				walletRepo.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, w *domain.Wallet) error {
					assert.Equal(t, int64(110), w.CoinsBalance)
					assert.Equal(t, int64(510), w.TotalCoinsEarned)
					return nil
				})
				echoCreate(txnRepo)
			},
			expectedTxn: &domain.Transaction{
				ID:                1,
				UserID:            "user-1",
				Type:              domain.TxTypeCoinEarn,
				CoinsDelta:        10,
				CashDeltaUsd:      decimal.Zero,
				CoinsBalanceAfter: 110,
				ReferenceID:       "42",
				ReferenceType:     "ad_view",
			},
			expectedError: nil,
		},
		{
			name:          "Non-positive amount",
			amount:        0,
			prepareMock:   nil,
			expectedError: ErrInvalidAmount,
		},
		{
			name:   "Wallet not found",
			amount: 10,
			prepareMock: func() {
				passthroughTx(txManager)
				walletRepo.EXPECT().GetForUpdate(gomock.Any(), "user-1").Return(nil, nil)
			},
			expectedError: ErrWalletNotFound,
		},
		{
			name:   "Error updating wallet",
			amount: 10,
			prepareMock: func() {
				passthroughTx(txManager)
				walletRepo.EXPECT().GetForUpdate(gomock.Any(), "user-1").Return(&domain.Wallet{UserID: "user-1"}, nil)
				walletRepo.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			txn, err := service.AwardCoins(context.Background(), "user-1", tt.amount, "", "42", "ad_view")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedTxn, txn)
			}
		})
	}
}

func TestConvertCoinsToCash(t *testing.T) {
	service, walletRepo, txnRepo, txManager := NewMock(t)
	poolID := uuid.New()
	tests := []struct {
		name          string
		coins         int64
		cashUsd       decimal.Decimal
		prepareMock   func()
		expectedError error
	}{
		{
			name:    "Convert successfully",
			coins:   200,
			cashUsd: decimal.RequireFromString("1.7"),
			prepareMock: func() {
				passthroughTx(txManager)
				walletRepo.EXPECT().GetForUpdate(gomock.Any(), "user-1").Return(&domain.Wallet{
					UserID:             "user-1",
					CoinsBalance:       300,
					CashBalanceUsd:     decimal.RequireFromString("0.5"),
					TotalCashEarnedUsd: decimal.RequireFromString("2.0"),
				}, nil)
				walletRepo.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, w *domain.Wallet) error {
					assert.Equal(t, int64(100), w.CoinsBalance)
					assert.True(t, w.CashBalanceUsd.Equal(decimal.RequireFromString("2.2")))
					assert.True(t, w.TotalCashEarnedUsd.Equal(decimal.RequireFromString("3.7")))
					return nil
				})
				echoCreate(txnRepo)
			},
			expectedError: nil,
		},
		{
			name:    "Insufficient coins",
			coins:   500,
			cashUsd: decimal.RequireFromString("4.25"),
			prepareMock: func() {
				passthroughTx(txManager)
				walletRepo.EXPECT().GetForUpdate(gomock.Any(), "user-1").Return(&domain.Wallet{
					UserID:       "user-1",
					CoinsBalance: 300,
				}, nil)
			},
			expectedError: ErrInsufficientCoins,
		},
		{
			name:          "Non-positive coin amount",
			coins:         0,
			cashUsd:       decimal.Zero,
			prepareMock:   nil,
			expectedError: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			txn, err := service.ConvertCoinsToCash(context.Background(), "user-1", tt.coins, tt.cashUsd, poolID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.TxTypeCoinConversion, txn.Type)
				assert.Equal(t, -tt.coins, txn.CoinsDelta)
				assert.True(t, txn.CashDeltaUsd.Equal(tt.cashUsd))
				assert.Equal(t, poolID.String(), txn.ReferenceID)
			}
		})
	}
}

func TestProcessWithdrawal(t *testing.T) {
	service, walletRepo, txnRepo, txManager := NewMock(t)
	tests := []struct {
		name          string
		amountUsd     decimal.Decimal
		prepareMock   func()
		expectedError error
	}{
		{
			name:      "Withdraw successfully",
			amountUsd: decimal.RequireFromString("5.00"),
			prepareMock: func() {
				passthroughTx(txManager)
				walletRepo.EXPECT().GetForUpdate(gomock.Any(), "user-1").Return(&domain.Wallet{
					UserID:            "user-1",
					CashBalanceUsd:    decimal.RequireFromString("7.25"),
					TotalWithdrawnUsd: decimal.RequireFromString("10"),
				}, nil)
				walletRepo.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, w *domain.Wallet) error {
					assert.True(t, w.CashBalanceUsd.Equal(decimal.RequireFromString("2.25")))
					assert.True(t, w.TotalWithdrawnUsd.Equal(decimal.RequireFromString("15")))
					return nil
				})
				echoCreate(txnRepo)
			},
			expectedError: nil,
		},
		{
			name:      "Insufficient cash",
			amountUsd: decimal.RequireFromString("10.00"),
			prepareMock: func() {
				passthroughTx(txManager)
				walletRepo.EXPECT().GetForUpdate(gomock.Any(), "user-1").Return(&domain.Wallet{
					UserID:         "user-1",
					CashBalanceUsd: decimal.RequireFromString("7.25"),
				}, nil)
			},
			expectedError: ErrInsufficientCash,
		},
		{
			name:          "Non-positive amount",
			amountUsd:     decimal.Zero,
			prepareMock:   nil,
			expectedError: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			txn, err := service.ProcessWithdrawal(context.Background(), "user-1", tt.amountUsd, "BATCH-1")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.TxTypeWithdrawal, txn.Type)
				assert.True(t, txn.CashDeltaUsd.Equal(tt.amountUsd.Neg()))
				assert.Equal(t, "BATCH-1", txn.ReferenceID)
			}
		})
	}
}

func TestRecordAdjustment(t *testing.T) {
	service, walletRepo, txnRepo, txManager := NewMock(t)
	tests := []struct {
		name          string
		coinsDelta    int64
		cashDeltaUsd  decimal.Decimal
		prepareMock   func()
		expectedError error
	}{
		{
			name:         "Positive adjustment counts toward earned total",
			coinsDelta:   50,
			cashDeltaUsd: decimal.Zero,
			prepareMock: func() {
				passthroughTx(txManager)
				walletRepo.EXPECT().GetForUpdate(gomock.Any(), "user-1").Return(&domain.Wallet{
					UserID:           "user-1",
					CoinsBalance:     100,
					TotalCoinsEarned: 100,
				}, nil)
				walletRepo.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, w *domain.Wallet) error {
					assert.Equal(t, int64(150), w.CoinsBalance)
					assert.Equal(t, int64(150), w.TotalCoinsEarned)
					return nil
				})
				echoCreate(txnRepo)
			},
			expectedError: nil,
		},
		{
			name:         "Negative adjustment leaves earned total alone",
			coinsDelta:   -30,
			cashDeltaUsd: decimal.Zero,
			prepareMock: func() {
				passthroughTx(txManager)
				walletRepo.EXPECT().GetForUpdate(gomock.Any(), "user-1").Return(&domain.Wallet{
					UserID:           "user-1",
					CoinsBalance:     100,
					TotalCoinsEarned: 100,
				}, nil)
				walletRepo.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, w *domain.Wallet) error {
					assert.Equal(t, int64(70), w.CoinsBalance)
					assert.Equal(t, int64(100), w.TotalCoinsEarned)
					return nil
				})
				echoCreate(txnRepo)
			},
			expectedError: nil,
		},
		{
			name:         "Coins would go negative",
			coinsDelta:   -200,
			cashDeltaUsd: decimal.Zero,
			prepareMock: func() {
				passthroughTx(txManager)
				walletRepo.EXPECT().GetForUpdate(gomock.Any(), "user-1").Return(&domain.Wallet{
					UserID:       "user-1",
					CoinsBalance: 100,
				}, nil)
			},
			expectedError: ErrInsufficientCoins,
		},
		{
			name:         "Cash would go negative",
			coinsDelta:   0,
			cashDeltaUsd: decimal.RequireFromString("-5"),
			prepareMock: func() {
				passthroughTx(txManager)
				walletRepo.EXPECT().GetForUpdate(gomock.Any(), "user-1").Return(&domain.Wallet{
					UserID:         "user-1",
					CashBalanceUsd: decimal.RequireFromString("2"),
				}, nil)
			},
			expectedError: ErrInsufficientCash,
		},
		{
			name:          "Both deltas zero",
			coinsDelta:    0,
			cashDeltaUsd:  decimal.Zero,
			prepareMock:   nil,
			expectedError: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			txn, err := service.RecordAdjustment(context.Background(), "user-1", tt.coinsDelta, tt.cashDeltaUsd, "support-77", "manual")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.TxTypeAdminAdjustment, txn.Type)
				assert.Equal(t, tt.coinsDelta, txn.CoinsDelta)
			}
		})
	}
}

func TestExpireBalances(t *testing.T) {
	service, walletRepo, txnRepo, txManager := NewMock(t)
	tests := []struct {
		name          string
		expireCoins   bool
		expireCash    bool
		prepareMock   func()
		expectNilTxn  bool
		expectedError error
	}{
		{
			name:        "Expire both balances",
			expireCoins: true,
			expireCash:  true,
			prepareMock: func() {
				passthroughTx(txManager)
				walletRepo.EXPECT().GetForUpdate(gomock.Any(), "user-1").Return(&domain.Wallet{
					UserID:         "user-1",
					CoinsBalance:   120,
					CashBalanceUsd: decimal.RequireFromString("3.5"),
				}, nil)
				walletRepo.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, w *domain.Wallet) error {
					assert.Equal(t, int64(0), w.CoinsBalance)
					assert.True(t, w.CashBalanceUsd.IsZero())
					return nil
				})
				echoCreate(txnRepo)
			},
		},
		{
			name:        "Expire coins only keeps cash",
			expireCoins: true,
			expireCash:  false,
			prepareMock: func() {
				passthroughTx(txManager)
				walletRepo.EXPECT().GetForUpdate(gomock.Any(), "user-1").Return(&domain.Wallet{
					UserID:         "user-1",
					CoinsBalance:   120,
					CashBalanceUsd: decimal.RequireFromString("3.5"),
				}, nil)
				walletRepo.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, w *domain.Wallet) error {
					assert.Equal(t, int64(0), w.CoinsBalance)
					assert.True(t, w.CashBalanceUsd.Equal(decimal.RequireFromString("3.5")))
					return nil
				})
				echoCreate(txnRepo)
			},
		},
		{
			name:        "Nothing to expire writes nothing",
			expireCoins: true,
			expireCash:  true,
			prepareMock: func() {
				passthroughTx(txManager)
				walletRepo.EXPECT().GetForUpdate(gomock.Any(), "user-1").Return(&domain.Wallet{
					UserID: "user-1",
				}, nil)
			},
			expectNilTxn: true,
		},
		{
			name:        "Wallet not found",
			expireCoins: true,
			expireCash:  true,
			prepareMock: func() {
				passthroughTx(txManager)
				walletRepo.EXPECT().GetForUpdate(gomock.Any(), "user-1").Return(nil, nil)
			},
			expectedError: ErrWalletNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			txn, err := service.ExpireBalances(context.Background(), "user-1", tt.expireCoins, tt.expireCash)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			if tt.expectNilTxn {
				assert.Nil(t, txn)
			} else {
				assert.NotNil(t, txn)
				assert.Equal(t, domain.TxTypeAdminAdjustment, txn.Type)
				assert.Equal(t, "balance_expiry", txn.ReferenceID)
			}
		})
	}
}

func TestReconcile(t *testing.T) {
	service, walletRepo, txnRepo, _ := NewMock(t)
	tests := []struct {
		name           string
		prepareMock    func()
		expectedReport *ReconcileReport
		expectedError  error
	}{
		{
			name: "Consistent ledger",
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(&domain.Wallet{
					UserID:         "user-1",
					CoinsBalance:   340,
					CashBalanceUsd: decimal.RequireFromString("4.2513"),
				}, nil)
				txnRepo.EXPECT().SumDeltasByUser(gomock.Any(), "user-1").Return(int64(340), decimal.RequireFromString("4.2513"), nil)
			},
			expectedReport: &ReconcileReport{
				UserID:      "user-1",
				WalletCoins: 340,
				SummedCoins: 340,
				WalletCash:  decimal.RequireFromString("4.2513"),
				SummedCash:  decimal.RequireFromString("4.2513"),
				Consistent:  true,
			},
		},
		{
			name: "Coin mismatch flagged",
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(&domain.Wallet{
					UserID:       "user-1",
					CoinsBalance: 340,
				}, nil)
				txnRepo.EXPECT().SumDeltasByUser(gomock.Any(), "user-1").Return(int64(300), decimal.Zero, nil)
			},
			expectedReport: &ReconcileReport{
				UserID:      "user-1",
				WalletCoins: 340,
				SummedCoins: 300,
				WalletCash:  decimal.Decimal{},
				SummedCash:  decimal.Zero,
				Consistent:  false,
			},
		},
		{
			name: "Wallet not found",
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(nil, nil)
			},
			expectedError: ErrWalletNotFound,
		},
		{
			name: "Error summing deltas",
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(&domain.Wallet{UserID: "user-1"}, nil)
				txnRepo.EXPECT().SumDeltasByUser(gomock.Any(), "user-1").Return(int64(0), decimal.Decimal{}, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			report, err := service.Reconcile(context.Background(), "user-1")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedReport, report)
			}
		})
	}
}
