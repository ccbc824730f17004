package provider

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// CurrencyClient fetches exchange rates from the currency provider.
type CurrencyClient struct {
	base    baseClient
	baseURL string
	apiKey  string
}

// NewCurrencyClient creates a currency provider client.
func NewCurrencyClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *CurrencyClient {
	return &CurrencyClient{
		base: baseClient{
			http:   &http.Client{Timeout: timeout},
			logger: logger,
			name:   "currency",
		},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// ratesResponse mirrors the provider wire format.
type ratesResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// Rates returns exchange rates for the given base currency, or nil on a
// miss.
func (c *CurrencyClient) Rates(ctx context.Context, base string) *RatesDTO {
	q := url.Values{}
	q.Set("base", base)

	var resp ratesResponse
	headers := map[string]string{"apikey": c.apiKey}
	if !c.base.getJSON(ctx, c.baseURL+"?"+q.Encode(), headers, &resp) {
		return nil
	}
	if resp.Rates == nil {
		return nil
	}

	return &RatesDTO{Base: resp.Base, Date: resp.Date, Rates: resp.Rates}
}
