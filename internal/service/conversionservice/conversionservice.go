package conversionservice

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/adrewards/backend/internal/domain"
	"github.com/adrewards/backend/internal/pg"
	"github.com/adrewards/backend/internal/service/ledgerservice"
)

//go:generate mockgen -source=conversionservice.go -destination=mock_conversionservice.go -package=conversionservice

// GlobalPoolCountry labels the pool that converts ad views with no
// country-specific revenue attribution.
const GlobalPoolCountry = "GLOBAL"

const rateScale = 10

type PoolRepo interface {
	Create(ctx context.Context, pool *domain.RevenuePool) (*domain.RevenuePool, error)
	Complete(ctx context.Context, poolID uuid.UUID, processedAt time.Time) error
	GetByCountryPeriod(ctx context.Context, country, period string) (*domain.RevenuePool, error)
	CreateDetail(ctx context.Context, detail *domain.ConversionDetail) (*domain.ConversionDetail, error)
	HasCompletedDetail(ctx context.Context, country, period, userID string) (bool, error)
}

type AdViewRepo interface {
	SumUnconvertedByUser(ctx context.Context, country string) ([]domain.UserCoinSum, error)
	MarkConverted(ctx context.Context, country string, userIDs []string, poolID uuid.UUID) (int64, error)
}

type Ledger interface {
	ConvertCoinsToCash(ctx context.Context, userID string, coins int64, cashUsd decimal.Decimal, poolID uuid.UUID) (*domain.Transaction, error)
}

type AuditRepo interface {
	Create(ctx context.Context, action string, correlationID uuid.UUID, details any) error
}

// BatchSummary reports the outcome of one conversion run across all
// requested countries.
type BatchSummary struct {
	Period             string
	CountriesProcessed []string
	CountriesSkipped   []string
	CountriesFailed    []string
	UsersPaid          int
	UsersSkipped       int
	CoinsConverted     int64
	DistributedUsd     decimal.Decimal
	UserShareUsd       decimal.Decimal
}

type countryResult struct {
	processed      bool
	usersPaid      int
	usersSkipped   int
	coinsConverted int64
	distributedUsd decimal.Decimal
	userShareUsd   decimal.Decimal
}

type Service struct {
	poolRepo   PoolRepo
	adViewRepo AdViewRepo
	ledger     Ledger
	auditRepo  AuditRepo
	txManager  pg.TXManager
	shareRatio decimal.Decimal
}

func New(poolRepo PoolRepo, adViewRepo AdViewRepo, ledger Ledger, auditRepo AuditRepo, txManager pg.TXManager, revenueShareRatio float64) *Service {
	return &Service{
		poolRepo:   poolRepo,
		adViewRepo: adViewRepo,
		ledger:     ledger,
		auditRepo:  auditRepo,
		txManager:  txManager,
		shareRatio: decimal.NewFromFloat(revenueShareRatio),
	}
}

// ProcessLocationPools converts each country's unconverted coins against its
// reported revenue for the period. Countries are isolated: each runs in its
// own transaction, a failure rolls back that country only and the batch
// moves on. Countries run in sorted order so a rerun retries failures in a
// stable sequence.
func (s *Service) ProcessLocationPools(ctx context.Context, period string, revenueByCountry map[string]decimal.Decimal) (*BatchSummary, error) {
	countries := make([]string, 0, len(revenueByCountry))
	for country := range revenueByCountry {
		countries = append(countries, country)
	}
	sort.Strings(countries)

	summary := &BatchSummary{Period: period}
	for _, country := range countries {
		s.runCountry(ctx, summary, country, country, period, revenueByCountry[country])
	}
	s.writeAudit(ctx, summary)
	return summary, nil
}

// ProcessGlobalPool converts every remaining unconverted coin regardless of
// country. Meant to run after the location pools of the same period.
func (s *Service) ProcessGlobalPool(ctx context.Context, period string, revenueUsd decimal.Decimal) (*BatchSummary, error) {
	summary := &BatchSummary{Period: period}
	s.runCountry(ctx, summary, GlobalPoolCountry, "", period, revenueUsd)
	s.writeAudit(ctx, summary)
	return summary, nil
}

func (s *Service) runCountry(ctx context.Context, summary *BatchSummary, poolCountry, viewFilter, period string, revenueUsd decimal.Decimal) {
	var res countryResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		res, err = s.convertCountry(ctx, poolCountry, viewFilter, period, revenueUsd)
		return err
	})
	if err != nil {
		zap.L().Error("conversion failed for country",
			zap.String("country", poolCountry), zap.String("period", period), zap.Error(err))
		summary.CountriesFailed = append(summary.CountriesFailed, poolCountry)
		return
	}
	if !res.processed {
		summary.CountriesSkipped = append(summary.CountriesSkipped, poolCountry)
		return
	}
	summary.CountriesProcessed = append(summary.CountriesProcessed, poolCountry)
	summary.UsersPaid += res.usersPaid
	summary.UsersSkipped += res.usersSkipped
	summary.CoinsConverted += res.coinsConverted
	summary.DistributedUsd = summary.DistributedUsd.Add(res.distributedUsd)
	summary.UserShareUsd = summary.UserShareUsd.Add(res.userShareUsd)
}

func (s *Service) convertCountry(ctx context.Context, poolCountry, viewFilter, period string, revenueUsd decimal.Decimal) (countryResult, error) {
	var res countryResult

	existing, err := s.poolRepo.GetByCountryPeriod(ctx, poolCountry, period)
	if err != nil {
		return res, err
	}
	if existing != nil && existing.Status == domain.PoolStatusCompleted {
		zap.L().Info("pool already completed, skipping",
			zap.String("country", poolCountry), zap.String("period", period))
		return res, nil
	}

	if !revenueUsd.IsPositive() {
		zap.L().Warn("non-positive revenue reported, skipping",
			zap.String("country", poolCountry), zap.String("period", period),
			zap.String("revenueUsd", revenueUsd.String()))
		return res, nil
	}

	sums, err := s.adViewRepo.SumUnconvertedByUser(ctx, viewFilter)
	if err != nil {
		return res, err
	}
	var totalCoins int64
	for _, sum := range sums {
		totalCoins += sum.Coins
	}
	if totalCoins == 0 {
		zap.L().Info("no unconverted coins, skipping",
			zap.String("country", poolCountry), zap.String("period", period))
		return res, nil
	}

	userShare := revenueUsd.Mul(s.shareRatio)
	rate := userShare.DivRound(decimal.NewFromInt(totalCoins), rateScale)

	pool, err := s.poolRepo.Create(ctx, &domain.RevenuePool{
		ID:               uuid.New(),
		CountryCode:      poolCountry,
		Period:           period,
		AdmobRevenueUsd:  revenueUsd,
		TotalCoinsIssued: totalCoins,
		UserShareUsd:     userShare,
		ConversionRate:   rate,
		Status:           domain.PoolStatusProcessing,
	})
	if err != nil {
		return res, err
	}

	converted := make([]string, 0, len(sums))
	for _, sum := range sums {
		paid, err := s.poolRepo.HasCompletedDetail(ctx, poolCountry, period, sum.UserID)
		if err != nil {
			return res, err
		}
		if paid {
			converted = append(converted, sum.UserID)
			continue
		}

		cashUsd := rate.Mul(decimal.NewFromInt(sum.Coins)).Round(4)
		txn, err := s.ledger.ConvertCoinsToCash(ctx, sum.UserID, sum.Coins, cashUsd, pool.ID)
		if errors.Is(err, ledgerservice.ErrInsufficientCoins) {
			// A swept or adjusted wallet no longer covers its recorded
			// views. Retire them so the next run sees a clean set.
			zap.L().Warn("wallet cannot cover unconverted views, retiring them unpaid",
				zap.String("userID", sum.UserID),
				zap.String("country", poolCountry),
				zap.Int64("coins", sum.Coins))
			converted = append(converted, sum.UserID)
			res.usersSkipped++
			continue
		}
		if err != nil {
			return res, err
		}
		_, err = s.poolRepo.CreateDetail(ctx, &domain.ConversionDetail{
			PoolID:        pool.ID,
			UserID:        sum.UserID,
			Coins:         sum.Coins,
			CashUsd:       cashUsd,
			TransactionID: txn.ID,
			Status:        domain.DetailStatusCompleted,
		})
		if err != nil {
			return res, err
		}

		converted = append(converted, sum.UserID)
		res.usersPaid++
		res.coinsConverted += sum.Coins
		res.distributedUsd = res.distributedUsd.Add(cashUsd)
	}

	if _, err := s.adViewRepo.MarkConverted(ctx, viewFilter, converted, pool.ID); err != nil {
		return res, err
	}
	if err := s.poolRepo.Complete(ctx, pool.ID, time.Now()); err != nil {
		return res, err
	}

	res.processed = true
	res.userShareUsd = userShare
	zap.L().Info("pool converted",
		zap.String("country", poolCountry),
		zap.String("period", period),
		zap.Int("usersPaid", res.usersPaid),
		zap.Int64("coinsConverted", res.coinsConverted),
		zap.String("rate", rate.String()))
	return res, nil
}

func (s *Service) writeAudit(ctx context.Context, summary *BatchSummary) {
	err := s.auditRepo.Create(ctx, domain.AuditActionConversionBatch, uuid.New(), domain.ConversionBatchAudit{
		Period:             summary.Period,
		CountriesProcessed: summary.CountriesProcessed,
		CountriesSkipped:   summary.CountriesSkipped,
		CountriesFailed:    summary.CountriesFailed,
		UsersPaid:          summary.UsersPaid,
		UsersSkipped:       summary.UsersSkipped,
		CoinsConverted:     summary.CoinsConverted,
		DistributedUsd:     summary.DistributedUsd,
		UserShareUsd:       summary.UserShareUsd,
	})
	if err != nil {
		zap.L().Warn("failed to write conversion audit entry", zap.Error(err))
	}
}
