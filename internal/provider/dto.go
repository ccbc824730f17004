package provider

import "time"

// CountryDTO is the schema-validated country record returned by the geo
// provider.
type CountryDTO struct {
	Name        string        `json:"name"`
	Alpha2Code  string        `json:"alpha2code"`
	Alpha3Code  string        `json:"alpha3code"`
	Capital     string        `json:"capital"`
	Region      string        `json:"region"`
	Subregion   string        `json:"subregion"`
	Population  int64         `json:"population"`
	Latitude    float64       `json:"latitude"`
	Longitude   float64       `json:"longitude"`
	Demonym     string        `json:"demonym"`
	Area        float64       `json:"area"`
	NumericCode string        `json:"numeric_code"`
	Flag        string        `json:"flag"`
	Currencies  []CurrencyRef `json:"currencies"`
	Languages   []LanguageRef `json:"languages"`
}

// CurrencyRef is a nested currency reference inside a country record.
type CurrencyRef struct {
	Code string `json:"code"`
}

// LanguageRef is a nested language reference inside a country record.
type LanguageRef struct {
	Name string `json:"name"`
}

// CityDTO is a city record returned by the geo provider. The country block
// carries only the name and the ISO Alpha2 code.
type CityDTO struct {
	Name          string          `json:"name"`
	StateOrRegion string          `json:"state_or_region"`
	Country       CountryShortDTO `json:"country"`
	Latitude      float64         `json:"latitude"`
	Longitude     float64         `json:"longitude"`
}

// CountryShortDTO identifies the country a city belongs to.
type CountryShortDTO struct {
	Name       string `json:"name"`
	Alpha2Code string `json:"code"`
}

// WeatherDTO is the normalized current-weather value object. It is never
// persisted relationally; it lives only in the ephemeral cache.
type WeatherDTO struct {
	City        string  `json:"city"`
	Temp        float64 `json:"temp"`
	Humidity    int     `json:"humidity"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	WindSpeed   float64 `json:"wind_speed"`
	Visibility  int     `json:"visibility"`
}

// RatesDTO is the normalized currency-rates value object, cache-only.
type RatesDTO struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// NewsItemDTO is a headline returned by the news provider. Author,
// description and URL may be absent.
type NewsItemDTO struct {
	Source      string    `json:"source"`
	Author      string    `json:"author"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
}
