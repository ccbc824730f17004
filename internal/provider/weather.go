package provider

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// WeatherClient fetches current weather from the weather provider.
type WeatherClient struct {
	base    baseClient
	baseURL string
	apiKey  string
}

// NewWeatherClient creates a weather provider client.
func NewWeatherClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *WeatherClient {
	return &WeatherClient{
		base: baseClient{
			http:   &http.Client{Timeout: timeout},
			logger: logger,
			name:   "weather",
		},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// weatherResponse mirrors the provider wire format.
type weatherResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Visibility int    `json:"visibility"`
	Name       string `json:"name"`
}

// Current returns the current weather for "city,alpha2code", or nil on a
// miss.
func (c *WeatherClient) Current(ctx context.Context, city, alpha2code string) *WeatherDTO {
	q := url.Values{}
	q.Set("units", "metric")
	q.Set("q", city+","+alpha2code)
	q.Set("appid", c.apiKey)

	var resp weatherResponse
	if !c.base.getJSON(ctx, c.baseURL+"?"+q.Encode(), nil, &resp) {
		return nil
	}

	dto := &WeatherDTO{
		City:       resp.Name,
		Temp:       resp.Main.Temp,
		Humidity:   resp.Main.Humidity,
		WindSpeed:  resp.Wind.Speed,
		Visibility: resp.Visibility,
	}
	if len(resp.Weather) > 0 {
		dto.Condition = resp.Weather[0].Main
		dto.Description = resp.Weather[0].Description
	}
	return dto
}
