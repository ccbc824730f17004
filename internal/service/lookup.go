package service

import (
	"context"

	"github.com/alexivanou/worldinfo-api/internal/cache"
	"github.com/alexivanou/worldinfo-api/internal/provider"
)

// Weather returns current weather for a city through the ephemeral cache.
// A nil result means neither the cache nor the provider had data.
func (s *Service) Weather(ctx context.Context, alpha2code, city string) (*provider.WeatherDTO, error) {
	key := alpha2code + "_" + city
	return cache.Lookup(ctx, s.cache, s.logger, "weather", key, s.cacheTTL,
		func(ctx context.Context) *provider.WeatherDTO {
			return s.weather.Current(ctx, city, alpha2code)
		})
}

// CurrencyRates returns exchange rates for a base currency through the
// ephemeral cache.
func (s *Service) CurrencyRates(ctx context.Context, base string) (*provider.RatesDTO, error) {
	return cache.Lookup(ctx, s.cache, s.logger, "currency", base, s.cacheTTL,
		func(ctx context.Context) *provider.RatesDTO {
			return s.currency.Rates(ctx, base)
		})
}
