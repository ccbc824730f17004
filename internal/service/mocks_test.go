package service

import (
	"context"
	"time"

	"github.com/alexivanou/worldinfo-api/internal/cache"
	"github.com/alexivanou/worldinfo-api/internal/model"
	"github.com/alexivanou/worldinfo-api/internal/provider"
	"github.com/alexivanou/worldinfo-api/internal/repository"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockCountryRepository implements repository.CountryRepository interface
type MockCountryRepository struct {
	mock.Mock
}

func (m *MockCountryRepository) SearchByPattern(ctx context.Context, pattern string) ([]model.Country, error) {
	args := m.Called(ctx, pattern)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Country), args.Error(1)
}

func (m *MockCountryRepository) ByCodes(ctx context.Context, codes []string) ([]model.Country, error) {
	args := m.Called(ctx, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Country), args.Error(1)
}

func (m *MockCountryRepository) ExistingCodes(ctx context.Context, codes []string) ([]string, error) {
	args := m.Called(ctx, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCountryRepository) CodeIDMap(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockCountryRepository) BulkInsert(ctx context.Context, countries []model.Country) error {
	args := m.Called(ctx, countries)
	return args.Error(0)
}

// MockCityRepository implements repository.CityRepository interface
type MockCityRepository struct {
	mock.Mock
}

func (m *MockCityRepository) SearchByPattern(ctx context.Context, pattern string) ([]model.CityWithCountry, error) {
	args := m.Called(ctx, pattern)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CityWithCountry), args.Error(1)
}

func (m *MockCityRepository) ByCodeNamePairs(ctx context.Context, pairs []model.CountryCity) ([]model.CityWithCountry, error) {
	args := m.Called(ctx, pairs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CityWithCountry), args.Error(1)
}

func (m *MockCityRepository) BulkInsert(ctx context.Context, cities []model.City) error {
	args := m.Called(ctx, cities)
	return args.Error(0)
}

// MockNewsRepository implements repository.NewsRepository interface
type MockNewsRepository struct {
	mock.Mock
}

func (m *MockNewsRepository) BulkInsert(ctx context.Context, items []model.News) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockNewsRepository) ByCountryCode(ctx context.Context, alpha2code string, limit, offset int) ([]model.News, error) {
	args := m.Called(ctx, alpha2code, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.News), args.Error(1)
}

// MockGeoAPI implements the GeoAPI interface
type MockGeoAPI struct {
	mock.Mock
}

func (m *MockGeoAPI) Countries(ctx context.Context, name string) []provider.CountryDTO {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]provider.CountryDTO)
}

func (m *MockGeoAPI) CountryByCode(ctx context.Context, code string) *provider.CountryDTO {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*provider.CountryDTO)
}

func (m *MockGeoAPI) Cities(ctx context.Context, name string) []provider.CityDTO {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]provider.CityDTO)
}

// MockWeatherAPI implements the WeatherAPI interface
type MockWeatherAPI struct {
	mock.Mock
}

func (m *MockWeatherAPI) Current(ctx context.Context, city, alpha2code string) *provider.WeatherDTO {
	args := m.Called(ctx, city, alpha2code)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*provider.WeatherDTO)
}

// MockCurrencyAPI implements the CurrencyAPI interface
type MockCurrencyAPI struct {
	mock.Mock
}

func (m *MockCurrencyAPI) Rates(ctx context.Context, base string) *provider.RatesDTO {
	args := m.Called(ctx, base)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*provider.RatesDTO)
}

// MockNewsAPI implements the NewsAPI interface
type MockNewsAPI struct {
	mock.Mock
}

func (m *MockNewsAPI) TopHeadlines(ctx context.Context, alpha2code string) []provider.NewsItemDTO {
	args := m.Called(ctx, alpha2code)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]provider.NewsItemDTO)
}

type testMocks struct {
	countryRepo *MockCountryRepository
	cityRepo    *MockCityRepository
	newsRepo    *MockNewsRepository
	geo         *MockGeoAPI
	weather     *MockWeatherAPI
	currency    *MockCurrencyAPI
	news        *MockNewsAPI
}

func newTestService() (*Service, *testMocks) {
	m := &testMocks{
		countryRepo: new(MockCountryRepository),
		cityRepo:    new(MockCityRepository),
		newsRepo:    new(MockNewsRepository),
		geo:         new(MockGeoAPI),
		weather:     new(MockWeatherAPI),
		currency:    new(MockCurrencyAPI),
		news:        new(MockNewsAPI),
	}
	repos := &repository.Container{
		Country: m.countryRepo,
		City:    m.cityRepo,
		News:    m.newsRepo,
	}
	svc := NewService(repos, m.geo, m.weather, m.currency, m.news,
		cache.NewMemory(), time.Minute, zap.NewNop())
	return svc, m
}
