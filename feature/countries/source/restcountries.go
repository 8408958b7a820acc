package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// RestCountriesClient fetches the country list from the REST Countries API.
type RestCountriesClient struct {
	client  *http.Client
	BaseURL string
}

// NewRestCountriesClient creates a client for the configured countries URL.
func NewRestCountriesClient(cfg Config) *RestCountriesClient {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	return &RestCountriesClient{
		client:  &http.Client{Timeout: time.Duration(timeout) * time.Second},
		BaseURL: cfg.CountriesURL,
	}
}

// FetchAll fetches every country entry in a single request.
func (c *RestCountriesClient) FetchAll(ctx context.Context) ([]RawCountry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch countries: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("countries API returned status %d", resp.StatusCode)
	}

	var countries []RawCountry
	if err := json.NewDecoder(resp.Body).Decode(&countries); err != nil {
		return nil, fmt.Errorf("failed to decode countries response: %w", err)
	}

	return countries, nil
}
