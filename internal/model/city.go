package model

// City represents a city in the database. Every city references exactly one
// country; the foreign key is RESTRICT so a referenced country cannot be
// deleted.
type City struct {
	ID        int64   `db:"id"`
	CountryID int64   `db:"country_id"`
	Name      string  `db:"name"`
	Region    string  `db:"region"`
	Latitude  float64 `db:"latitude"`
	Longitude float64 `db:"longitude"`
}

// CityWithCountry is a city row joined with its country, as returned by the
// search and by-codes queries.
type CityWithCountry struct {
	City
	CountryName   string `db:"country_name"`
	CountryAlpha2 string `db:"country_alpha2"`
}

// CountryCity identifies a city by ISO Alpha2 country code and city name.
type CountryCity struct {
	Alpha2Code string
	CityName   string
}
