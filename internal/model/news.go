package model

import "time"

// News represents a stored news item tied to a country. Rows are created by
// the import job only; repeated imports may accumulate duplicates.
type News struct {
	ID          int64     `db:"id"`
	CountryID   int64     `db:"country_id"`
	Source      string    `db:"source"`
	Author      string    `db:"author"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	URL         string    `db:"url"`
	PublishedAt time.Time `db:"published_at"`
}
