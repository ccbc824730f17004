package service

import (
	"context"
	"fmt"

	"github.com/alexivanou/worldinfo-api/internal/model"
	"github.com/alexivanou/worldinfo-api/internal/provider"
	"go.uber.org/zap"
)

// ResolveCountries searches stored countries by a case-insensitive pattern
// matched against name or demonym. When the store has no match, missing
// records are imported from the geo provider before the query is re-run, so
// the returned set always reflects persisted state. An empty result is not
// an error.
func (s *Service) ResolveCountries(ctx context.Context, pattern string) ([]model.CountryResult, error) {
	countries, err := s.countryRepo.SearchByPattern(ctx, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search countries: %w", err)
	}

	if len(countries) == 0 {
		if dtos := s.geo.Countries(ctx, pattern); len(dtos) > 0 {
			rows := make([]model.Country, 0, len(dtos))
			for _, dto := range dtos {
				rows = append(rows, buildCountry(dto))
			}
			if err := s.countryRepo.BulkInsert(ctx, rows); err != nil {
				return nil, fmt.Errorf("failed to import countries: %w", err)
			}
			s.logger.Info("imported countries from provider",
				zap.String("pattern", pattern), zap.Int("count", len(rows)))

			// Re-run the original query so the result set reflects
			// persisted, queryable state.
			countries, err = s.countryRepo.SearchByPattern(ctx, pattern)
			if err != nil {
				return nil, fmt.Errorf("failed to search countries after import: %w", err)
			}
		}
	}

	results := make([]model.CountryResult, 0, len(countries))
	for _, c := range countries {
		results = append(results, model.CountryFromRow(c))
	}
	return results, nil
}

// CountriesByCodes returns stored countries for a list of ISO Alpha2 codes.
// Read-only: no import is triggered.
func (s *Service) CountriesByCodes(ctx context.Context, codes []string) ([]model.CountryResult, error) {
	countries, err := s.countryRepo.ByCodes(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("failed to get countries by codes: %w", err)
	}

	results := make([]model.CountryResult, 0, len(countries))
	for _, c := range countries {
		results = append(results, model.CountryFromRow(c))
	}
	return results, nil
}

// buildCountry maps a provider country record onto the local schema,
// flattening the nested currency and language collections.
func buildCountry(dto provider.CountryDTO) model.Country {
	currencies := make(model.StringList, 0, len(dto.Currencies))
	for _, c := range dto.Currencies {
		currencies = append(currencies, c.Code)
	}
	languages := make(model.StringList, 0, len(dto.Languages))
	for _, l := range dto.Languages {
		languages = append(languages, l.Name)
	}

	return model.Country{
		Alpha2Code:  dto.Alpha2Code,
		Alpha3Code:  dto.Alpha3Code,
		NumericCode: dto.NumericCode,
		Name:        dto.Name,
		Capital:     dto.Capital,
		Region:      dto.Region,
		Subregion:   dto.Subregion,
		Population:  dto.Population,
		Latitude:    dto.Latitude,
		Longitude:   dto.Longitude,
		Demonym:     dto.Demonym,
		Area:        dto.Area,
		Flag:        dto.Flag,
		Currencies:  currencies,
		Languages:   languages,
	}
}
