package stats

import (
	"time"

	"github.com/misterclayt0n/vigor/internal/models"
)

// dateOnly drops the clock and zone of t, keeping its calendar fields.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekStart returns the Sunday on or before d.
func WeekStart(d time.Time) time.Time {
	day := dateOnly(d)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// MonthStart returns the first day of d's month.
func MonthStart(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// WindowStart returns the first day of the goal window containing asOf.
// Anything other than a weekly period is treated as monthly.
func WindowStart(period string, asOf time.Time) time.Time {
	if period == models.PeriodWeekly {
		return WeekStart(asOf)
	}
	return MonthStart(asOf)
}

// onOrAfter reports whether the workout date falls on or after start.
func onOrAfter(w models.Workout, start time.Time) bool {
	return !dateOnly(w.Date).Before(start)
}
