package provider

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// GeoClient fetches country and city records from the geo provider.
type GeoClient struct {
	base    baseClient
	baseURL string
	apiKey  string
}

// NewGeoClient creates a geo provider client.
func NewGeoClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *GeoClient {
	return &GeoClient{
		base: baseClient{
			http:   &http.Client{Timeout: timeout},
			logger: logger,
			name:   "geo",
		},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

func (c *GeoClient) headers() map[string]string {
	return map[string]string{"apikey": c.apiKey}
}

// Countries returns country records matching the given name, or nil when the
// provider has none.
func (c *GeoClient) Countries(ctx context.Context, name string) []CountryDTO {
	var items []CountryDTO
	endpoint := c.baseURL + "/country/name/" + url.PathEscape(name)
	if !c.base.getJSON(ctx, endpoint, c.headers(), &items) {
		return nil
	}
	return items
}

// CountryByCode returns the country record for an exact ISO code, or nil on
// a miss. The provider answers with a single-element list.
func (c *GeoClient) CountryByCode(ctx context.Context, code string) *CountryDTO {
	var items []CountryDTO
	endpoint := c.baseURL + "/country/code/" + url.PathEscape(code)
	if !c.base.getJSON(ctx, endpoint, c.headers(), &items) {
		return nil
	}
	if len(items) == 0 {
		return nil
	}
	return &items[0]
}

// Cities returns city records matching the given name, or nil when the
// provider has none.
func (c *GeoClient) Cities(ctx context.Context, name string) []CityDTO {
	var items []CityDTO
	endpoint := c.baseURL + "/city/name/" + url.PathEscape(name)
	if !c.base.getJSON(ctx, endpoint, c.headers(), &items) {
		return nil
	}
	return items
}
