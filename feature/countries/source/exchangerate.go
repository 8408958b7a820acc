package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ExchangeRateClient fetches USD-based rates from the exchange-rate API.
type ExchangeRateClient struct {
	client  *http.Client
	BaseURL string
}

// NewExchangeRateClient creates a client for the configured rates URL.
func NewExchangeRateClient(cfg Config) *ExchangeRateClient {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	return &ExchangeRateClient{
		client:  &http.Client{Timeout: time.Duration(timeout) * time.Second},
		BaseURL: cfg.RatesURL,
	}
}

// FetchRates fetches the full rate table.
func (c *ExchangeRateClient) FetchRates(ctx context.Context) (RateTable, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exchange rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("exchange rate API returned status %d", resp.StatusCode)
	}

	var payload struct {
		Rates RateTable `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode exchange rate response: %w", err)
	}
	if payload.Rates == nil {
		return nil, fmt.Errorf("exchange rate response missing rates table")
	}

	return payload.Rates, nil
}
