package service

import (
	"time"

	"github.com/adrewards/backend/internal/config"
	"github.com/adrewards/backend/internal/handlers/admin"
	"github.com/adrewards/backend/internal/handlers/rewards"
	"github.com/adrewards/backend/internal/handlers/sessions"
	"github.com/adrewards/backend/internal/handlers/wallet"
	"github.com/adrewards/backend/internal/payout"
	"github.com/adrewards/backend/internal/pg"
	"github.com/adrewards/backend/internal/repo"
	"github.com/adrewards/backend/internal/sweeper"
	"github.com/adrewards/backend/pkg/geo"

	adviewservice "github.com/adrewards/backend/internal/service/adviewservice"
	capservice "github.com/adrewards/backend/internal/service/capservice"
	conversionservice "github.com/adrewards/backend/internal/service/conversionservice"
	fraudservice "github.com/adrewards/backend/internal/service/fraudservice"
	ledgerservice "github.com/adrewards/backend/internal/service/ledgerservice"
	sessionservice "github.com/adrewards/backend/internal/service/sessionservice"
	walletservice "github.com/adrewards/backend/internal/service/walletservice"
	withdrawalservice "github.com/adrewards/backend/internal/service/withdrawalservice"
)

type Services struct {
	RewardService     rewards.Service
	WalletService     *walletservice.Service
	WithdrawService   wallet.WithdrawService
	SessionService    sessions.Service
	ConversionService admin.ConversionService
	SweepService      *sweeper.Service
	LedgerService     admin.LedgerService
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager, velocity fraudservice.VelocityWindow, rateCache withdrawalservice.RateSource, provider payout.ProviderI) *Services {
	ledgerService := ledgerservice.New(repo.WalletRepo, repo.TransactionRepo, txManager)
	walletService := walletservice.New(repo.WalletRepo, repo.TransactionRepo, repo.WithdrawalRepo)
	capService := capservice.New(repo.WalletRepo, cfg)
	fraudService := fraudservice.New(repo.AdViewRepo, repo.WalletRepo, velocity, cfg)
	adViewService := adviewservice.New(capService, fraudService, ledgerService, repo.AdViewRepo, geo.NewResolver(), txManager, cfg)
	sessionService := sessionservice.New(repo.SessionRepo, ledgerService, txManager,
		cfg.DailySessionLimit, cfg.SessionCooldown, cfg.SessionBaseCoins, cfg.GameCompletionBonus)
	conversionService := conversionservice.New(repo.PoolRepo, repo.AdViewRepo, ledgerService, repo.AuditRepo, txManager, cfg.RevenueShareRatio)
	withdrawService := withdrawalservice.New(repo.WithdrawalRepo, repo.WalletRepo, ledgerService, rateCache, provider, repo.AuditRepo, txManager)
	sweepService := sweeper.New(repo.WalletRepo, ledgerService, repo.AuditRepo,
		time.Duration(cfg.CoinExpiryDays)*24*time.Hour,
		time.Duration(cfg.CashExpiryDays)*24*time.Hour,
		cfg.SweepInterval)

	return &Services{
		RewardService:     adViewService,
		WalletService:     walletService,
		WithdrawService:   withdrawService,
		SessionService:    sessionService,
		ConversionService: conversionService,
		SweepService:      sweepService,
		LedgerService:     ledgerService,
	}
}
