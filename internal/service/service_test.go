package service

import (
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/adrewards/backend/internal/config"
	"github.com/adrewards/backend/internal/payout"
	"github.com/adrewards/backend/internal/pg"
	"github.com/adrewards/backend/internal/repo"
	fraudservice "github.com/adrewards/backend/internal/service/fraudservice"
	withdrawalservice "github.com/adrewards/backend/internal/service/withdrawalservice"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	mockTxManager := pg.NewMockTXManager(ctrl)
	repos := repo.New(mockDB, mockTxManager)

	cfg := &config.Config{
		DailyVideoLimit:     20,
		DailySessionLimit:   20,
		SessionCooldown:     15 * time.Minute,
		SessionBaseCoins:    100,
		GameCompletionBonus: 10,
		CoinExpiryDays:      90,
		CashExpiryDays:      180,
		SweepInterval:       24 * time.Hour,
	}

	services := New(cfg, repos, mockTxManager,
		fraudservice.NewMockVelocityWindow(ctrl),
		withdrawalservice.NewMockRateSource(ctrl),
		payout.NewMockProviderI(ctrl),
	)

	assert.NotNil(t, services.RewardService)
	assert.NotNil(t, services.WalletService)
	assert.NotNil(t, services.WithdrawService)
	assert.NotNil(t, services.SessionService)
	assert.NotNil(t, services.ConversionService)
	assert.NotNil(t, services.SweepService)
	assert.NotNil(t, services.LedgerService)
}
