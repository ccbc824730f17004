package service

import (
	"context"
	"testing"

	"github.com/alexivanou/worldinfo-api/internal/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestService_Weather_CachesResult(t *testing.T) {
	svc, m := newTestService()
	dto := &provider.WeatherDTO{City: "London", Temp: 18.5, Condition: "Clouds"}
	m.weather.On("Current", mock.Anything, "London", "GB").Return(dto).Once()

	first, err := svc.Weather(context.Background(), "GB", "London")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, 18.5, first.Temp)

	// Second call within the TTL is served from the cache.
	second, err := svc.Weather(context.Background(), "GB", "London")
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, first.Temp, second.Temp)
	m.weather.AssertNumberOfCalls(t, "Current", 1)
}

func TestService_Weather_MissNotCached(t *testing.T) {
	svc, m := newTestService()
	m.weather.On("Current", mock.Anything, "Nowhere", "XX").Return(nil).Twice()

	first, err := svc.Weather(context.Background(), "XX", "Nowhere")
	require.NoError(t, err)
	assert.Nil(t, first)

	// A miss is not cached; the provider is asked again.
	second, err := svc.Weather(context.Background(), "XX", "Nowhere")
	require.NoError(t, err)
	assert.Nil(t, second)
	m.weather.AssertNumberOfCalls(t, "Current", 2)
}

func TestService_Weather_KeyIncludesCountry(t *testing.T) {
	svc, m := newTestService()
	m.weather.On("Current", mock.Anything, "London", "GB").
		Return(&provider.WeatherDTO{City: "London", Temp: 18}).Once()
	m.weather.On("Current", mock.Anything, "London", "CA").
		Return(&provider.WeatherDTO{City: "London", Temp: 5}).Once()

	gb, err := svc.Weather(context.Background(), "GB", "London")
	require.NoError(t, err)
	ca, err := svc.Weather(context.Background(), "CA", "London")
	require.NoError(t, err)

	// Same city name, different countries: distinct cache entries.
	assert.Equal(t, 18.0, gb.Temp)
	assert.Equal(t, 5.0, ca.Temp)
}

func TestService_CurrencyRates_CachesResult(t *testing.T) {
	svc, m := newTestService()
	dto := &provider.RatesDTO{Base: "EUR", Rates: map[string]float64{"USD": 1.08}}
	m.currency.On("Rates", mock.Anything, "EUR").Return(dto).Once()

	first, err := svc.CurrencyRates(context.Background(), "EUR")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, 1.08, first.Rates["USD"])

	second, err := svc.CurrencyRates(context.Background(), "EUR")
	require.NoError(t, err)
	require.NotNil(t, second)
	m.currency.AssertNumberOfCalls(t, "Rates", 1)
}

func TestService_CurrencyRates_Miss(t *testing.T) {
	svc, m := newTestService()
	m.currency.On("Rates", mock.Anything, "ZZZ").Return(nil).Once()

	rates, err := svc.CurrencyRates(context.Background(), "ZZZ")
	require.NoError(t, err)
	assert.Nil(t, rates)
}
