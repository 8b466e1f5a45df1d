package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HaciendaProvider fetches the official CRC/USD reference rates from the
// Ministerio de Hacienda indicator endpoint.
type HaciendaProvider struct {
	url        string
	httpClient *http.Client
}

type haciendaResponse struct {
	Compra struct {
		Fecha string  `json:"fecha"`
		Valor float64 `json:"valor"`
	} `json:"compra"`
	Venta struct {
		Fecha string  `json:"fecha"`
		Valor float64 `json:"valor"`
	} `json:"venta"`
}

// NewHaciendaProvider creates the primary provider.
func NewHaciendaProvider(url string, timeout time.Duration) *HaciendaProvider {
	return &HaciendaProvider{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// BuySell fetches the current official buy and sell rates.
func (p *HaciendaProvider) BuySell(ctx context.Context) (float64, float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("build request: %w", err)
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("fetch rates: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, 0, fmt.Errorf("rate API returned status %d: %s", resp.StatusCode, string(body))
	}
	var apiResp haciendaResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return 0, 0, fmt.Errorf("decode response: %w", err)
	}
	if apiResp.Compra.Valor <= 0 || apiResp.Venta.Valor <= 0 {
		return 0, 0, fmt.Errorf("rate API returned non-positive rates")
	}
	return apiResp.Compra.Valor, apiResp.Venta.Valor, nil
}

// Name identifies the provider in logs.
func (p *HaciendaProvider) Name() string { return "hacienda" }

var _ BuySellSource = (*HaciendaProvider)(nil)
