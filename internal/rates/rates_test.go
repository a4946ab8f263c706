package rates

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/adrewards/backend/pkg/clients"
)

func NewMock(t *testing.T) (*Cache, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	client := clients.NewMockHTTPClientI(ctrl)
	cache := New("http://localhost:8090", client, time.Hour)
	defer ctrl.Finish()
	return cache, client
}

func TestRefresh(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(client *clients.MockHTTPClientI)
		expectedError string
	}{
		{
			name: "Successful refresh",
			prepareMock: func(client *clients.MockHTTPClientI) {
				body := []byte(`{"base":"USD","rates":{"EUR":"0.92","BRL":"5.43"}}`)
				client.EXPECT().Get("http://localhost:8090/api/rates", nil).Return(http.StatusOK, body, nil, nil)
			},
		},
		{
			name: "Transport error",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Get("http://localhost:8090/api/rates", nil).Return(0, nil, nil, errors.New("connection refused"))
			},
			expectedError: "failed to fetch rates",
		},
		{
			name: "Non-200 status",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Get("http://localhost:8090/api/rates", nil).Return(http.StatusBadGateway, nil, nil, nil)
			},
			expectedError: "rate feed returned status 502",
		},
		{
			name: "Malformed payload",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Get("http://localhost:8090/api/rates", nil).Return(http.StatusOK, []byte(`not json`), nil, nil)
			},
			expectedError: "failed to decode rate feed response",
		},
		{
			name: "Empty rate map",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Get("http://localhost:8090/api/rates", nil).Return(http.StatusOK, []byte(`{"base":"USD","rates":{}}`), nil, nil)
			},
			expectedError: "rate feed returned no rates",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache, client := NewMock(t)
			tt.prepareMock(client)

			err := cache.Refresh(context.Background())
			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.True(t, cache.LastFetchedAt().IsZero())
			} else {
				assert.NoError(t, err)
				assert.False(t, cache.LastFetchedAt().IsZero())
				assert.True(t, cache.Rate("EUR").Equal(decimal.RequireFromString("0.92")))
			}
		})
	}
}

func TestRefreshKeepsLastKnownRates(t *testing.T) {
	cache, client := NewMock(t)

	body := []byte(`{"base":"USD","rates":{"EUR":"0.92"}}`)
	client.EXPECT().Get("http://localhost:8090/api/rates", nil).Return(http.StatusOK, body, nil, nil)
	assert.NoError(t, cache.Refresh(context.Background()))

	client.EXPECT().Get("http://localhost:8090/api/rates", nil).Return(0, nil, nil, errors.New("connection refused"))
	assert.Error(t, cache.Refresh(context.Background()))

	// The failed refresh must not wipe the previous snapshot.
	assert.True(t, cache.Rate("EUR").Equal(decimal.RequireFromString("0.92")))
}

func TestRate(t *testing.T) {
	cache, client := NewMock(t)

	// Before any fetch, every lookup degrades to parity.
	assert.True(t, cache.Rate("EUR").Equal(decimal.NewFromInt(1)))

	body := []byte(`{"base":"USD","rates":{"EUR":"0.92"}}`)
	client.EXPECT().Get("http://localhost:8090/api/rates", nil).Return(http.StatusOK, body, nil, nil)
	assert.NoError(t, cache.Refresh(context.Background()))

	assert.True(t, cache.Rate("EUR").Equal(decimal.RequireFromString("0.92")))
	assert.True(t, cache.Rate("USD").Equal(decimal.NewFromInt(1)))
	assert.True(t, cache.Rate("").Equal(decimal.NewFromInt(1)))
	// Unknown currency after a successful fetch still degrades to parity.
	assert.True(t, cache.Rate("JPY").Equal(decimal.NewFromInt(1)))
}
