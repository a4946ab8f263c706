package payout

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/adrewards/backend/pkg/clients"
)

//go:generate mockgen -source=payout.go -destination=mock_payout.go -package=payout

// ProviderI is the payment-provider capability the settlement core needs:
// submit a payout, poll its status. Failures here are plain errors and must
// never be allowed to corrupt the ledger.
type ProviderI interface {
	CreatePayout(ctx context.Context, recipient string, amountUsd decimal.Decimal, currency, note string) (*Payout, error)
	GetPayoutStatus(ctx context.Context, batchID string) (string, error)
}

type Payout struct {
	BatchID string `json:"batch_id"`
	Status  string `json:"status"`
}

type createRequest struct {
	Recipient string          `json:"recipient"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Note      string          `json:"note"`
}

type Client struct {
	url    string
	client clients.HTTPClientI
	apiKey string
}

func NewClient(payoutAddr string, client clients.HTTPClientI, apiKey string) *Client {
	return &Client{url: payoutAddr, client: client, apiKey: apiKey}
}

func (c *Client) headers() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		h.Set("Authorization", "Bearer "+c.apiKey)
	}
	return h
}

func (c *Client) CreatePayout(ctx context.Context, recipient string, amountUsd decimal.Decimal, currency, note string) (*Payout, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	body, err := json.Marshal(createRequest{
		Recipient: recipient,
		Amount:    amountUsd,
		Currency:  currency,
		Note:      note,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode payout request: %w", err)
	}

	statusCode, respBody, _, err := c.client.Post(c.url+"/api/payouts", c.headers(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to submit payout: %w", err)
	}
	if statusCode != http.StatusOK && statusCode != http.StatusCreated {
		zap.L().Error("Payout provider rejected submission",
			zap.Int("status", statusCode), zap.String("recipient", recipient))
		return nil, fmt.Errorf("payout provider returned status %d", statusCode)
	}

	var p Payout
	if err := json.Unmarshal(respBody, &p); err != nil {
		return nil, fmt.Errorf("failed to decode payout response: %w", err)
	}
	if p.BatchID == "" {
		return nil, fmt.Errorf("payout provider returned no batch id")
	}
	return &p, nil
}

func (c *Client) GetPayoutStatus(ctx context.Context, batchID string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	statusCode, respBody, _, err := c.client.Get(c.url+"/api/payouts/"+batchID, c.headers())
	if err != nil {
		return "", fmt.Errorf("failed to fetch payout status: %w", err)
	}
	if statusCode != http.StatusOK {
		return "", fmt.Errorf("payout provider returned status %d", statusCode)
	}

	var p Payout
	if err := json.Unmarshal(respBody, &p); err != nil {
		return "", fmt.Errorf("failed to decode payout status response: %w", err)
	}
	return p.Status, nil
}
