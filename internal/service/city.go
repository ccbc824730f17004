package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexivanou/worldinfo-api/internal/model"
	"go.uber.org/zap"
)

// ResolveCities searches stored cities by a case-insensitive pattern matched
// against name or region. On a store miss the cities are fetched from the
// geo provider together with any countries they reference that are not yet
// stored, everything is persisted, and the original query is re-run; the
// engine never returns freshly fetched records directly.
func (s *Service) ResolveCities(ctx context.Context, pattern string) ([]model.CityResult, error) {
	cities, err := s.cityRepo.SearchByPattern(ctx, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search cities: %w", err)
	}
	if len(cities) > 0 {
		return cityResults(cities), nil
	}

	dtos := s.geo.Cities(ctx, pattern)
	if len(dtos) == 0 {
		return nil, nil
	}

	// Distinct country codes referenced by the fetched cities.
	codeSet := make(map[string]struct{}, len(dtos))
	for _, dto := range dtos {
		codeSet[strings.ToUpper(dto.Country.Alpha2Code)] = struct{}{}
	}
	codes := make([]string, 0, len(codeSet))
	for code := range codeSet {
		codes = append(codes, code)
	}

	if err := s.importMissingCountries(ctx, codes); err != nil {
		return nil, err
	}

	// Re-read the full code set to resolve foreign keys from persisted
	// state, including countries another caller may have just imported.
	codeIDs, err := s.countryRepo.CodeIDMap(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to map country codes: %w", err)
	}

	rows := make([]model.City, 0, len(dtos))
	for _, dto := range dtos {
		countryID, ok := codeIDs[strings.ToLower(dto.Country.Alpha2Code)]
		if !ok {
			// Country lookup failed earlier for this code; drop the city
			// rather than failing the whole import.
			s.logger.Warn("dropping city with unresolved country",
				zap.String("city", dto.Name), zap.String("code", dto.Country.Alpha2Code))
			continue
		}
		rows = append(rows, model.City{
			CountryID: countryID,
			Name:      dto.Name,
			Region:    dto.StateOrRegion,
			Latitude:  dto.Latitude,
			Longitude: dto.Longitude,
		})
	}

	if len(rows) > 0 {
		if err := s.cityRepo.BulkInsert(ctx, rows); err != nil {
			return nil, fmt.Errorf("failed to import cities: %w", err)
		}
		s.logger.Info("imported cities from provider",
			zap.String("pattern", pattern), zap.Int("count", len(rows)))
	}

	cities, err = s.cityRepo.SearchByPattern(ctx, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search cities after import: %w", err)
	}
	return cityResults(cities), nil
}

// importMissingCountries persists any of the given codes that are absent
// from the store. A provider miss for a single code is skipped, not fatal.
func (s *Service) importMissingCountries(ctx context.Context, codes []string) error {
	existing, err := s.countryRepo.ExistingCodes(ctx, codes)
	if err != nil {
		return fmt.Errorf("failed to check existing countries: %w", err)
	}
	existingSet := make(map[string]struct{}, len(existing))
	for _, code := range existing {
		existingSet[strings.ToUpper(code)] = struct{}{}
	}

	var toSave []model.Country
	for _, code := range codes {
		if _, ok := existingSet[code]; ok {
			continue
		}
		dto := s.geo.CountryByCode(ctx, code)
		if dto == nil {
			s.logger.Warn("country lookup failed, skipping code", zap.String("code", code))
			continue
		}
		toSave = append(toSave, buildCountry(*dto))
	}

	if len(toSave) == 0 {
		return nil
	}
	if err := s.countryRepo.BulkInsert(ctx, toSave); err != nil {
		return fmt.Errorf("failed to import countries: %w", err)
	}
	s.logger.Info("imported countries for city resolution", zap.Int("count", len(toSave)))
	return nil
}

// CitiesByPairs returns stored cities matching any of the given
// (country code, city name) pairs. Read-only: no import is triggered.
func (s *Service) CitiesByPairs(ctx context.Context, pairs []model.CountryCity) ([]model.CityResult, error) {
	cities, err := s.cityRepo.ByCodeNamePairs(ctx, pairs)
	if err != nil {
		return nil, fmt.Errorf("failed to get cities by codes: %w", err)
	}
	return cityResults(cities), nil
}

func cityResults(cities []model.CityWithCountry) []model.CityResult {
	results := make([]model.CityResult, 0, len(cities))
	for _, c := range cities {
		results = append(results, model.CityFromRow(c))
	}
	return results
}
