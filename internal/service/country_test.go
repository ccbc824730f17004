package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexivanou/worldinfo-api/internal/model"
	"github.com/alexivanou/worldinfo-api/internal/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestService_ResolveCountries(t *testing.T) {
	storedUK := model.Country{
		ID: 1, Name: "United Kingdom", Alpha2Code: "GB", Demonym: "British",
		Currencies: model.StringList{"GBP"}, Languages: model.StringList{"English"},
	}
	fetchedUK := provider.CountryDTO{
		Name: "United Kingdom", Alpha2Code: "GB", Demonym: "British",
		Currencies: []provider.CurrencyRef{{Code: "GBP"}},
		Languages:  []provider.LanguageRef{{Name: "English"}},
	}

	tests := []struct {
		name          string
		pattern       string
		setupMocks    func(*testMocks)
		expectedError string
		expectedCount int
	}{
		{
			name:    "local hit skips provider",
			pattern: "united",
			setupMocks: func(m *testMocks) {
				m.countryRepo.On("SearchByPattern", mock.Anything, "united").
					Return([]model.Country{storedUK}, nil).Once()
			},
			expectedCount: 1,
		},
		{
			name:    "local miss imports and re-queries",
			pattern: "kingdom",
			setupMocks: func(m *testMocks) {
				m.countryRepo.On("SearchByPattern", mock.Anything, "kingdom").
					Return([]model.Country{}, nil).Once()
				m.geo.On("Countries", mock.Anything, "kingdom").
					Return([]provider.CountryDTO{fetchedUK}).Once()
				m.countryRepo.On("BulkInsert", mock.Anything, mock.MatchedBy(func(rows []model.Country) bool {
					return len(rows) == 1 && rows[0].Alpha2Code == "GB" &&
						len(rows[0].Currencies) == 1 && rows[0].Currencies[0] == "GBP"
				})).Return(nil).Once()
				m.countryRepo.On("SearchByPattern", mock.Anything, "kingdom").
					Return([]model.Country{storedUK}, nil).Once()
			},
			expectedCount: 1,
		},
		{
			name:    "provider miss yields empty result",
			pattern: "atlantis",
			setupMocks: func(m *testMocks) {
				m.countryRepo.On("SearchByPattern", mock.Anything, "atlantis").
					Return([]model.Country{}, nil).Once()
				m.geo.On("Countries", mock.Anything, "atlantis").
					Return([]provider.CountryDTO{}).Once()
			},
			expectedCount: 0,
		},
		{
			name:    "insert failure surfaces",
			pattern: "kingdom",
			setupMocks: func(m *testMocks) {
				m.countryRepo.On("SearchByPattern", mock.Anything, "kingdom").
					Return([]model.Country{}, nil).Once()
				m.geo.On("Countries", mock.Anything, "kingdom").
					Return([]provider.CountryDTO{fetchedUK}).Once()
				m.countryRepo.On("BulkInsert", mock.Anything, mock.Anything).
					Return(errors.New("db down")).Once()
			},
			expectedError: "failed to import countries",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestService()
			tt.setupMocks(m)

			results, err := svc.ResolveCountries(context.Background(), tt.pattern)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Len(t, results, tt.expectedCount)
			}
			m.countryRepo.AssertExpectations(t)
			m.geo.AssertExpectations(t)
		})
	}
}

func TestService_ResolveCountries_NoProviderCallOnHit(t *testing.T) {
	svc, m := newTestService()
	m.countryRepo.On("SearchByPattern", mock.Anything, "france").
		Return([]model.Country{{ID: 2, Name: "France", Alpha2Code: "FR"}}, nil).Once()

	results, err := svc.ResolveCountries(context.Background(), "france")

	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "France", results[0].Name)
	m.geo.AssertNotCalled(t, "Countries", mock.Anything, mock.Anything)
}

func TestService_CountriesByCodes(t *testing.T) {
	svc, m := newTestService()
	m.countryRepo.On("ByCodes", mock.Anything, []string{"gb", "fr"}).
		Return([]model.Country{
			{ID: 1, Name: "United Kingdom", Alpha2Code: "GB"},
			{ID: 2, Name: "France", Alpha2Code: "FR"},
		}, nil).Once()

	results, err := svc.CountriesByCodes(context.Background(), []string{"gb", "fr"})

	assert.NoError(t, err)
	assert.Len(t, results, 2)
	// Read-only path: no import on an empty or partial match.
	m.geo.AssertNotCalled(t, "Countries", mock.Anything, mock.Anything)
	m.geo.AssertNotCalled(t, "CountryByCode", mock.Anything, mock.Anything)
}
