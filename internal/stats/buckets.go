package stats

import (
	"sort"
	"time"

	"github.com/misterclayt0n/vigor/internal/models"
)

const (
	// MaxWeeklyBuckets is how many of the most recent weeks BucketByWeek keeps.
	MaxWeeklyBuckets = 8
	// MaxDailyBuckets is how many of the most recent dates BucketByDate keeps.
	MaxDailyBuckets = 7
)

// WeeklyBucket sums the workouts of one Sunday-based week.
type WeeklyBucket struct {
	WeekStart     time.Time `json:"week_start"`
	WorkoutCount  int       `json:"workout_count"`
	TotalDuration int       `json:"total_duration"`
	TotalCalories int       `json:"total_calories"`
}

// DailyBucket sums the workouts of one calendar date.
type DailyBucket struct {
	Date          time.Time `json:"date"`
	TotalDuration int       `json:"total_duration"`
	TotalCalories int       `json:"total_calories"`
}

// BucketByWeek groups workouts by the Sunday on or before their date. The
// result is ascending by week start and holds at most MaxWeeklyBuckets of
// the most recent weeks.
func BucketByWeek(workouts []models.Workout) []WeeklyBucket {
	weeks := newOrderedMap[time.Time, WeeklyBucket]()
	for _, w := range workouts {
		b := weeks.entry(WeekStart(w.Date))
		b.WorkoutCount++
		b.TotalDuration += w.DurationMinutes
		b.TotalCalories += w.CaloriesBurned
	}

	out := make([]WeeklyBucket, 0, weeks.len())
	weeks.each(func(start time.Time, b *WeeklyBucket) {
		bucket := *b
		bucket.WeekStart = start
		out = append(out, bucket)
	})

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].WeekStart.Before(out[j].WeekStart)
	})
	return lastN(out, MaxWeeklyBuckets)
}

// BucketByDate merges workouts sharing a calendar date. The result is
// ascending by date and holds at most MaxDailyBuckets of the most recent dates.
func BucketByDate(workouts []models.Workout) []DailyBucket {
	days := newOrderedMap[time.Time, DailyBucket]()
	for _, w := range workouts {
		b := days.entry(dateOnly(w.Date))
		b.TotalDuration += w.DurationMinutes
		b.TotalCalories += w.CaloriesBurned
	}

	out := make([]DailyBucket, 0, days.len())
	days.each(func(day time.Time, b *DailyBucket) {
		bucket := *b
		bucket.Date = day
		out = append(out, bucket)
	})

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return lastN(out, MaxDailyBuckets)
}

func lastN[T any](s []T, n int) []T {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
