package repository

import (
	"context"
	"strings"

	"github.com/alexivanou/worldinfo-api/internal/model"
	"github.com/jmoiron/sqlx"
)

// --- SQLite Implementation ---
//
// SQLite ships without a regexp engine, so pattern searches approximate the
// Postgres case-insensitive regex match with a LOWER(...) LIKE substring
// match. Everything else mirrors the Postgres implementation.

type sqliteCountryRepository struct {
	db *sqlx.DB
}

func (r *sqliteCountryRepository) SearchByPattern(ctx context.Context, pattern string) ([]model.Country, error) {
	q := `
		SELECT * FROM countries
		WHERE LOWER(name) LIKE '%' || LOWER(?) || '%'
		   OR LOWER(demonym) LIKE '%' || LOWER(?) || '%'
		ORDER BY name
	`
	var countries []model.Country
	if err := r.db.SelectContext(ctx, &countries, q, pattern, pattern); err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *sqliteCountryRepository) ByCodes(ctx context.Context, codes []string) ([]model.Country, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	lowered := make([]string, 0, len(codes))
	for _, code := range codes {
		lowered = append(lowered, strings.ToLower(code))
	}

	q, args, err := sqlx.In("SELECT * FROM countries WHERE LOWER(alpha2code) IN (?) ORDER BY name", lowered)
	if err != nil {
		return nil, err
	}
	var countries []model.Country
	if err := r.db.SelectContext(ctx, &countries, q, args...); err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *sqliteCountryRepository) ExistingCodes(ctx context.Context, codes []string) ([]string, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	lowered := make([]string, 0, len(codes))
	for _, code := range codes {
		lowered = append(lowered, strings.ToLower(code))
	}

	q, args, err := sqlx.In("SELECT UPPER(alpha2code) FROM countries WHERE LOWER(alpha2code) IN (?)", lowered)
	if err != nil {
		return nil, err
	}
	var found []string
	if err := r.db.SelectContext(ctx, &found, q, args...); err != nil {
		return nil, err
	}
	return found, nil
}

func (r *sqliteCountryRepository) CodeIDMap(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		ID   int64  `db:"id"`
		Code string `db:"code"`
	}
	q := "SELECT id, LOWER(alpha2code) AS code FROM countries"
	if err := r.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}

	codes := make(map[string]int64, len(rows))
	for _, row := range rows {
		codes[row.Code] = row.ID
	}
	return codes, nil
}

func (r *sqliteCountryRepository) BulkInsert(ctx context.Context, countries []model.Country) error {
	return chunked(countries, insertChunkSize, func(batch []model.Country) error {
		_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO countries (alpha2code, alpha3code, numeric_code, name, capital, region, subregion,
			population, latitude, longitude, demonym, area, flag, currencies, languages)
		VALUES (:alpha2code, :alpha3code, :numeric_code, :name, :capital, :region, :subregion,
			:population, :latitude, :longitude, :demonym, :area, :flag, :currencies, :languages)
		ON CONFLICT (alpha2code) DO NOTHING`,
			batch)
		return err
	})
}

type sqliteCityRepository struct {
	db *sqlx.DB
}

const sqliteCityColumns = `
	c.id, c.country_id, c.name, c.region, c.latitude, c.longitude,
	cnt.name AS country_name, cnt.alpha2code AS country_alpha2
`

func (r *sqliteCityRepository) SearchByPattern(ctx context.Context, pattern string) ([]model.CityWithCountry, error) {
	q := `
		SELECT ` + sqliteCityColumns + `
		FROM cities c
		JOIN countries cnt ON cnt.id = c.country_id
		WHERE LOWER(c.name) LIKE '%' || LOWER(?) || '%'
		   OR LOWER(c.region) LIKE '%' || LOWER(?) || '%'
		ORDER BY c.name
	`
	var cities []model.CityWithCountry
	if err := r.db.SelectContext(ctx, &cities, q, pattern, pattern); err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *sqliteCityRepository) ByCodeNamePairs(ctx context.Context, pairs []model.CountryCity) ([]model.CityWithCountry, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	conditions := make([]string, 0, len(pairs))
	args := make([]interface{}, 0, len(pairs)*2)
	for _, pair := range pairs {
		conditions = append(conditions, "(LOWER(c.name) = ? AND LOWER(cnt.alpha2code) = ?)")
		args = append(args, strings.ToLower(pair.CityName), strings.ToLower(pair.Alpha2Code))
	}

	q := `
		SELECT ` + sqliteCityColumns + `
		FROM cities c
		JOIN countries cnt ON cnt.id = c.country_id
		WHERE ` + strings.Join(conditions, " OR ") + `
		ORDER BY c.name
	`
	var cities []model.CityWithCountry
	if err := r.db.SelectContext(ctx, &cities, q, args...); err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *sqliteCityRepository) BulkInsert(ctx context.Context, cities []model.City) error {
	return chunked(cities, insertChunkSize, func(batch []model.City) error {
		_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO cities (country_id, name, region, latitude, longitude)
		VALUES (:country_id, :name, :region, :latitude, :longitude)`,
			batch)
		return err
	})
}

type sqliteNewsRepository struct {
	db *sqlx.DB
}

func (r *sqliteNewsRepository) BulkInsert(ctx context.Context, items []model.News) error {
	return chunked(items, insertChunkSize, func(batch []model.News) error {
		_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO news (country_id, source, author, title, description, url, published_at)
		VALUES (:country_id, :source, :author, :title, :description, :url, :published_at)`,
			batch)
		return err
	})
}

func (r *sqliteNewsRepository) ByCountryCode(ctx context.Context, alpha2code string, limit, offset int) ([]model.News, error) {
	q := `
		SELECT n.*
		FROM news n
		JOIN countries cnt ON cnt.id = n.country_id
		WHERE LOWER(cnt.alpha2code) = LOWER(?)
		ORDER BY n.published_at DESC
		LIMIT ? OFFSET ?
	`
	var items []model.News
	if err := r.db.SelectContext(ctx, &items, q, alpha2code, limit, offset); err != nil {
		return nil, err
	}
	return items, nil
}
