// Package service implements the reconciliation engine and the read-through
// lookups. Country and city resolution query the local store first and
// backfill from the geo provider on a miss; weather, currency and headline
// lookups go through the ephemeral cache and are never persisted.
package service

import (
	"context"
	"time"

	"github.com/alexivanou/worldinfo-api/internal/cache"
	"github.com/alexivanou/worldinfo-api/internal/provider"
	"github.com/alexivanou/worldinfo-api/internal/repository"
	"go.uber.org/zap"
)

// GeoAPI is the geo provider surface consumed by the reconciliation engine.
type GeoAPI interface {
	Countries(ctx context.Context, name string) []provider.CountryDTO
	CountryByCode(ctx context.Context, code string) *provider.CountryDTO
	Cities(ctx context.Context, name string) []provider.CityDTO
}

// WeatherAPI is the weather provider surface.
type WeatherAPI interface {
	Current(ctx context.Context, city, alpha2code string) *provider.WeatherDTO
}

// CurrencyAPI is the currency provider surface.
type CurrencyAPI interface {
	Rates(ctx context.Context, base string) *provider.RatesDTO
}

// NewsAPI is the news provider surface.
type NewsAPI interface {
	TopHeadlines(ctx context.Context, alpha2code string) []provider.NewsItemDTO
}

// Service provides business logic for the API
type Service struct {
	countryRepo repository.CountryRepository
	cityRepo    repository.CityRepository
	newsRepo    repository.NewsRepository

	geo      GeoAPI
	weather  WeatherAPI
	currency CurrencyAPI
	news     NewsAPI

	cache    cache.Cache
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewService creates a new service instance
func NewService(
	repos *repository.Container,
	geo GeoAPI,
	weather WeatherAPI,
	currency CurrencyAPI,
	news NewsAPI,
	c cache.Cache,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *Service {
	return &Service{
		countryRepo: repos.Country,
		cityRepo:    repos.City,
		newsRepo:    repos.News,
		geo:         geo,
		weather:     weather,
		currency:    currency,
		news:        news,
		cache:       c,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}
