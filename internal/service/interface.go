package service

import (
	"context"

	"github.com/alexivanou/worldinfo-api/internal/model"
	"github.com/alexivanou/worldinfo-api/internal/provider"
)

// ServiceInterface defines the service interface for testing
type ServiceInterface interface {
	ResolveCountries(ctx context.Context, pattern string) ([]model.CountryResult, error)
	CountriesByCodes(ctx context.Context, codes []string) ([]model.CountryResult, error)
	ResolveCities(ctx context.Context, pattern string) ([]model.CityResult, error)
	CitiesByPairs(ctx context.Context, pairs []model.CountryCity) ([]model.CityResult, error)
	Weather(ctx context.Context, alpha2code, city string) (*provider.WeatherDTO, error)
	CurrencyRates(ctx context.Context, base string) (*provider.RatesDTO, error)
	Headlines(ctx context.Context, alpha2code string) ([]model.NewsResult, error)
	StoredNews(ctx context.Context, alpha2code string, limit, offset int) ([]model.NewsResult, error)
}
