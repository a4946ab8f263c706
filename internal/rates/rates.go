package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/adrewards/backend/pkg/clients"
)

// Response is the rate feed payload: currency code to USD multiplier.
type Response struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// Cache holds the most recently fetched currency rates. Lookups never fail:
// a currency missing from the cache (or a cache that has never been filled)
// resolves to USD parity, reported as degraded in the logs rather than
// hidden from them.
type Cache struct {
	url             string
	client          clients.HTTPClientI
	refreshInterval time.Duration

	mu        sync.RWMutex
	rates     map[string]decimal.Decimal
	fetchedAt time.Time
}

func New(rateFeedAddr string, client clients.HTTPClientI, refreshInterval time.Duration) *Cache {
	return &Cache{
		url:             rateFeedAddr,
		client:          client,
		refreshInterval: refreshInterval,
		rates:           make(map[string]decimal.Decimal),
	}
}

func (c *Cache) Start(ctx context.Context) {
	zap.L().Info("Rate cache started")
	go c.run(ctx)
}

func (c *Cache) run(ctx context.Context) {
	if err := c.Refresh(ctx); err != nil {
		zap.L().Warn("Initial rate fetch failed", zap.Error(err))
	}

	ticker := time.NewTicker(c.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping rate cache")
			return
		case <-ticker.C:
			if err := c.Refresh(ctx); err != nil {
				zap.L().Warn("Rate refresh failed, keeping last-known rates",
					zap.Time("lastFetchedAt", c.LastFetchedAt()), zap.Error(err))
			}
		}
	}
}

// Refresh fetches the feed once. On any failure the previous rates stay in
// place untouched.
func (c *Cache) Refresh(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	statusCode, respBody, _, err := c.client.Get(c.url+"/api/rates", nil)
	if err != nil {
		return fmt.Errorf("failed to fetch rates: %w", err)
	}
	if statusCode != http.StatusOK {
		return fmt.Errorf("rate feed returned status %d", statusCode)
	}

	var resp Response
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return fmt.Errorf("failed to decode rate feed response: %w", err)
	}
	if len(resp.Rates) == 0 {
		return fmt.Errorf("rate feed returned no rates")
	}

	c.mu.Lock()
	c.rates = resp.Rates
	c.fetchedAt = time.Now()
	c.mu.Unlock()

	zap.L().Info("Rates refreshed", zap.Int("currencies", len(resp.Rates)))
	return nil
}

// Rate returns the USD multiplier for a currency. USD is always 1. Unknown
// currencies fall back to 1.0, logged as degraded.
func (c *Cache) Rate(currency string) decimal.Decimal {
	one := decimal.NewFromInt(1)
	if currency == "" || currency == "USD" {
		return one
	}

	c.mu.RLock()
	rate, ok := c.rates[currency]
	fetched := !c.fetchedAt.IsZero()
	c.mu.RUnlock()

	if !ok {
		if fetched {
			zap.L().Warn("No rate for currency, degrading to USD parity",
				zap.String("currency", currency))
		} else {
			zap.L().Warn("Rate cache never filled, degrading to USD parity",
				zap.String("currency", currency))
		}
		return one
	}
	return rate
}

func (c *Cache) LastFetchedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fetchedAt
}
