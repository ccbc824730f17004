// Package provider implements clients for the external data providers
// (geo, weather, currency, news). Every call issues a single HTTP GET with
// a bounded timeout; a transport failure, a non-success status or a body
// that fails to decode is treated uniformly as "no data" and never raises
// an error to the caller.
package provider

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/alexivanou/worldinfo-api/internal/observability"
	"go.uber.org/zap"
)

// baseClient carries what every provider client needs: an HTTP client with
// a fixed timeout, auth material and a logger.
type baseClient struct {
	http   *http.Client
	logger *zap.Logger
	name   string
}

// getJSON performs one GET and decodes the body into out. It returns false
// when the provider has no data for the request, whatever the underlying
// reason (network error, non-2xx status, malformed body).
func (c *baseClient) getJSON(ctx context.Context, url string, headers map[string]string, out interface{}) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		observability.ProviderRequestsTotal.WithLabelValues(c.name, observability.OutcomeError).Inc()
		c.logger.Warn("failed to build provider request", zap.String("provider", c.name), zap.Error(err))
		return false
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		observability.ProviderRequestsTotal.WithLabelValues(c.name, observability.OutcomeError).Inc()
		c.logger.Warn("provider request failed", zap.String("provider", c.name), zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		outcome := observability.OutcomeError
		if resp.StatusCode == http.StatusNotFound {
			outcome = observability.OutcomeNotFound
		}
		observability.ProviderRequestsTotal.WithLabelValues(c.name, outcome).Inc()
		c.logger.Debug("provider returned non-success status",
			zap.String("provider", c.name), zap.Int("status", resp.StatusCode))
		return false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		observability.ProviderRequestsTotal.WithLabelValues(c.name, observability.OutcomeError).Inc()
		return false
	}
	if err := json.Unmarshal(body, out); err != nil {
		observability.ProviderRequestsTotal.WithLabelValues(c.name, observability.OutcomeError).Inc()
		c.logger.Warn("provider returned malformed body", zap.String("provider", c.name), zap.Error(err))
		return false
	}

	observability.ProviderRequestsTotal.WithLabelValues(c.name, observability.OutcomeOK).Inc()
	return true
}
