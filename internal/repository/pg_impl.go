package repository

import (
	"context"
	"strings"

	"github.com/alexivanou/worldinfo-api/internal/model"
	"github.com/jmoiron/sqlx"
)

// --- PostgreSQL Implementation ---

type pgCountryRepository struct {
	db *sqlx.DB
}

func (r *pgCountryRepository) SearchByPattern(ctx context.Context, pattern string) ([]model.Country, error) {
	q := `
		SELECT * FROM countries
		WHERE name ~* $1 OR demonym ~* $1
		ORDER BY name
	`
	var countries []model.Country
	if err := r.db.SelectContext(ctx, &countries, q, pattern); err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *pgCountryRepository) ByCodes(ctx context.Context, codes []string) ([]model.Country, error) {
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
	if err := r.db.SelectContext(ctx, &countries, r.db.Rebind(q), args...); err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *pgCountryRepository) ExistingCodes(ctx context.Context, codes []string) ([]string, error) {
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
	if err := r.db.SelectContext(ctx, &found, r.db.Rebind(q), args...); err != nil {
		return nil, err
	}
	return found, nil
}

func (r *pgCountryRepository) CodeIDMap(ctx context.Context) (map[string]int64, error) {
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

func (r *pgCountryRepository) BulkInsert(ctx context.Context, countries []model.Country) error {
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

type pgCityRepository struct {
	db *sqlx.DB
}

const pgCityColumns = `
	c.id, c.country_id, c.name, c.region, c.latitude, c.longitude,
	cnt.name AS country_name, cnt.alpha2code AS country_alpha2
`

func (r *pgCityRepository) SearchByPattern(ctx context.Context, pattern string) ([]model.CityWithCountry, error) {
	q := `
		SELECT ` + pgCityColumns + `
		FROM cities c
		JOIN countries cnt ON cnt.id = c.country_id
		WHERE c.name ~* $1 OR c.region ~* $1
		ORDER BY c.name
	`
	var cities []model.CityWithCountry
	if err := r.db.SelectContext(ctx, &cities, q, pattern); err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *pgCityRepository) ByCodeNamePairs(ctx context.Context, pairs []model.CountryCity) ([]model.CityWithCountry, error) {
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
		SELECT ` + pgCityColumns + `
		FROM cities c
		JOIN countries cnt ON cnt.id = c.country_id
		WHERE ` + strings.Join(conditions, " OR ") + `
		ORDER BY c.name
	`
	var cities []model.CityWithCountry
	if err := r.db.SelectContext(ctx, &cities, r.db.Rebind(q), args...); err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *pgCityRepository) BulkInsert(ctx context.Context, cities []model.City) error {
	return chunked(cities, insertChunkSize, func(batch []model.City) error {
		_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO cities (country_id, name, region, latitude, longitude)
		VALUES (:country_id, :name, :region, :latitude, :longitude)`,
			batch)
		return err
	})
}

type pgNewsRepository struct {
	db *sqlx.DB
}

func (r *pgNewsRepository) BulkInsert(ctx context.Context, items []model.News) error {
	return chunked(items, insertChunkSize, func(batch []model.News) error {
		_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO news (country_id, source, author, title, description, url, published_at)
		VALUES (:country_id, :source, :author, :title, :description, :url, :published_at)`,
			batch)
		return err
	})
}

func (r *pgNewsRepository) ByCountryCode(ctx context.Context, alpha2code string, limit, offset int) ([]model.News, error) {
	q := `
		SELECT n.*
		FROM news n
		JOIN countries cnt ON cnt.id = n.country_id
		WHERE LOWER(cnt.alpha2code) = LOWER($1)
		ORDER BY n.published_at DESC
		LIMIT $2 OFFSET $3
	`
	var items []model.News
	if err := r.db.SelectContext(ctx, &items, q, alpha2code, limit, offset); err != nil {
		return nil, err
	}
	return items, nil
}
