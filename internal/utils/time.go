package utils

import (
	"fmt"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	ShortDateLayout = "02/01/06"
)

// DefaultLocation is the zone used when the config names none.
const DefaultLocation = "America/Sao_Paulo"

// LoadLocation resolves a zone name, falling back to DefaultLocation when empty.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultLocation
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load location %q: %w", name, err)
	}
	return loc, nil
}

// CivilDate returns the calendar day of t as seen in loc, as midnight UTC.
// Every date the aggregator sees goes through here so week and month
// arithmetic never mixes zones.
func CivilDate(t time.Time, loc *time.Location) time.Time {
	if loc != nil {
		t = t.In(loc)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar day in loc.
func Today(loc *time.Location) time.Time {
	return CivilDate(time.Now(), loc)
}

// ParseDate accepts YYYY-MM-DD or DD/MM/YY.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		d, err = time.Parse(ShortDateLayout, s)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD or DD/MM/YY", s)
	}
	return d, nil
}

// FormatDate renders the calendar fields of d as YYYY-MM-DD.
func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}
