package repository

import (
	"context"

	"github.com/alexivanou/worldinfo-api/internal/config"
	"github.com/alexivanou/worldinfo-api/internal/model"
	"github.com/jmoiron/sqlx"
)

// insertChunkSize is the ceiling for rows per bulk-insert call.
const insertChunkSize = 1000

// CountryRepository defines store operations for countries.
type CountryRepository interface {
	// SearchByPattern matches a case-insensitive pattern against country
	// name or demonym.
	SearchByPattern(ctx context.Context, pattern string) ([]model.Country, error)
	// ByCodes returns countries whose ISO Alpha2 code is in codes
	// (case-insensitive).
	ByCodes(ctx context.Context, codes []string) ([]model.Country, error)
	// ExistingCodes returns the subset of codes already present in the
	// store, upper-cased.
	ExistingCodes(ctx context.Context, codes []string) ([]string, error)
	// CodeIDMap returns lower-cased ISO Alpha2 code -> primary key for all
	// stored countries.
	CodeIDMap(ctx context.Context) (map[string]int64, error)
	// BulkInsert persists countries in chunks; rows conflicting on the
	// alpha2code unique key are silently skipped.
	BulkInsert(ctx context.Context, countries []model.Country) error
}

// CityRepository defines store operations for cities.
type CityRepository interface {
	// SearchByPattern matches a case-insensitive pattern against city name
	// or region, joined with country data.
	SearchByPattern(ctx context.Context, pattern string) ([]model.CityWithCountry, error)
	// ByCodeNamePairs performs one disjunctive case-insensitive exact-match
	// query over (country code, city name) pairs. Read-only, no import.
	ByCodeNamePairs(ctx context.Context, pairs []model.CountryCity) ([]model.CityWithCountry, error)
	// BulkInsert persists cities in chunks.
	BulkInsert(ctx context.Context, cities []model.City) error
}

// NewsRepository defines store operations for news items.
type NewsRepository interface {
	// BulkInsert persists news items in chunks.
	BulkInsert(ctx context.Context, items []model.News) error
	// ByCountryCode returns stored news for a country, newest first.
	ByCountryCode(ctx context.Context, alpha2code string, limit, offset int) ([]model.News, error)
}

// Container holds all repositories
type Container struct {
	Country CountryRepository
	City    CityRepository
	News    NewsRepository
}

// NewRepositories creates repository implementations based on DB type
func NewRepositories(db *sqlx.DB, dbType config.DBType) *Container {
	if dbType == config.DBTypePostgreSQL {
		return &Container{
			Country: &pgCountryRepository{db: db},
			City:    &pgCityRepository{db: db},
			News:    &pgNewsRepository{db: db},
		}
	}

	// Default to SQLite
	return &Container{
		Country: &sqliteCountryRepository{db: db},
		City:    &sqliteCityRepository{db: db},
		News:    &sqliteNewsRepository{db: db},
	}
}

// IsDatabaseEmpty reports whether any country has been imported yet.
func IsDatabaseEmpty(ctx context.Context, db *sqlx.DB) (bool, error) {
	var count int
	err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM countries")
	if err != nil {
		// Simplify error handling for non-existent tables
		return true, nil
	}
	return count == 0, nil
}

func chunked[T any](items []T, size int, fn func(batch []T) error) error {
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		if err := fn(items[i:end]); err != nil {
			return err
		}
	}
	return nil
}
