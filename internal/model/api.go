package model

import "time"

// CountryResult represents a country in API responses.
type CountryResult struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Alpha2Code  string   `json:"alpha2code"`
	Alpha3Code  string   `json:"alpha3code"`
	NumericCode string   `json:"numeric_code"`
	Capital     string   `json:"capital"`
	Region      string   `json:"region"`
	Subregion   string   `json:"subregion"`
	Population  int64    `json:"population"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Demonym     string   `json:"demonym"`
	Area        float64  `json:"area"`
	Flag        string   `json:"flag"`
	Currencies  []string `json:"currencies"`
	Languages   []string `json:"languages"`
}

// CityResult represents a city in API responses.
type CityResult struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Region      string     `json:"region"`
	Country     string     `json:"country"`
	CountryCode string     `json:"country_code"`
	Coordinates Coordinate `json:"coordinates"`
}

// Coordinate represents geographic coordinates.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// NewsResult represents a news item in API responses.
type NewsResult struct {
	Source      string    `json:"source"`
	Author      string    `json:"author"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
}

// CountryFromRow maps a stored country onto the API shape.
func CountryFromRow(c Country) CountryResult {
	return CountryResult{
		ID:          c.ID,
		Name:        c.Name,
		Alpha2Code:  c.Alpha2Code,
		Alpha3Code:  c.Alpha3Code,
		NumericCode: c.NumericCode,
		Capital:     c.Capital,
		Region:      c.Region,
		Subregion:   c.Subregion,
		Population:  c.Population,
		Latitude:    c.Latitude,
		Longitude:   c.Longitude,
		Demonym:     c.Demonym,
		Area:        c.Area,
		Flag:        c.Flag,
		Currencies:  c.Currencies,
		Languages:   c.Languages,
	}
}

// CityFromRow maps a joined city row onto the API shape.
func CityFromRow(c CityWithCountry) CityResult {
	return CityResult{
		ID:          c.ID,
		Name:        c.Name,
		Region:      c.Region,
		Country:     c.CountryName,
		CountryCode: c.CountryAlpha2,
		Coordinates: Coordinate{Lat: c.Latitude, Lon: c.Longitude},
	}
}
