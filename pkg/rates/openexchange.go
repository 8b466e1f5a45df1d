package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// OpenExchangeProvider fetches USD-based market rates from the open
// exchange-rate API and extracts the EUR multiplier.
type OpenExchangeProvider struct {
	url        string
	httpClient *http.Client
}

type openExchangeResponse struct {
	Result string             `json:"result"`
	Rates  map[string]float64 `json:"rates"`
}

// NewOpenExchangeProvider creates the secondary provider.
func NewOpenExchangeProvider(url string, timeout time.Duration) *OpenExchangeProvider {
	return &OpenExchangeProvider{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Multiplier returns the current USD→EUR rate.
func (p *OpenExchangeProvider) Multiplier(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch multiplier: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("rate API returned status %d: %s", resp.StatusCode, string(body))
	}
	var apiResp openExchangeResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}
	if apiResp.Result != "success" {
		return 0, fmt.Errorf("rate API returned result=%s", apiResp.Result)
	}
	eur, exists := apiResp.Rates["EUR"]
	if !exists || eur <= 0 {
		return 0, fmt.Errorf("EUR not present in response")
	}
	return eur, nil
}

// Name identifies the provider in logs.
func (p *OpenExchangeProvider) Name() string { return "open-er-api" }

var _ MultiplierSource = (*OpenExchangeProvider)(nil)
