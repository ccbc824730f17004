package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Country represents a country in the database. Rows are immutable reference
// data: they are created by the reconciliation path and never updated.
type Country struct {
	ID          int64      `db:"id"`
	Alpha2Code  string     `db:"alpha2code"`
	Alpha3Code  string     `db:"alpha3code"`
	NumericCode string     `db:"numeric_code"`
	Name        string     `db:"name"`
	Capital     string     `db:"capital"`
	Region      string     `db:"region"`
	Subregion   string     `db:"subregion"`
	Population  int64      `db:"population"`
	Latitude    float64    `db:"latitude"`
	Longitude   float64    `db:"longitude"`
	Demonym     string     `db:"demonym"`
	Area        float64    `db:"area"`
	Flag        string     `db:"flag"`
	Currencies  StringList `db:"currencies"`
	Languages   StringList `db:"languages"`
}

// StringList stores a flat list of strings as a JSON text column so the
// schema stays portable between PostgreSQL and SQLite.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	raw, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
}
