package stats

import (
	"math"
	"time"

	"github.com/misterclayt0n/vigor/internal/models"
)

// Summary holds the all-time totals shown on the stat cards.
type Summary struct {
	Count         int `json:"count"`
	TotalDuration int `json:"total_duration"`
	TotalCalories int `json:"total_calories"`
	AvgDuration   int `json:"avg_duration"`
}

// Summarize totals the workouts. An empty slice yields the zero Summary.
func Summarize(workouts []models.Workout) Summary {
	var s Summary
	for _, w := range workouts {
		s.Count++
		s.TotalDuration += w.DurationMinutes
		s.TotalCalories += w.CaloriesBurned
	}
	s.AvgDuration = roundedAvg(s.TotalDuration, s.Count)
	return s
}

// ThisWeekCount counts workouts dated on or after the Sunday of asOf's week.
func ThisWeekCount(workouts []models.Workout, asOf time.Time) int {
	start := WeekStart(asOf)
	count := 0
	for _, w := range workouts {
		if onOrAfter(w, start) {
			count++
		}
	}
	return count
}

// WeekStreak counts consecutive weeks, ending with asOf's week, that hold at
// least one workout. A week without workouts so far breaks the streak at zero.
func WeekStreak(workouts []models.Workout, asOf time.Time) int {
	weeks := make(map[time.Time]bool, len(workouts))
	for _, w := range workouts {
		weeks[WeekStart(w.Date)] = true
	}

	streak := 0
	for week := WeekStart(asOf); weeks[week]; week = week.AddDate(0, 0, -7) {
		streak++
	}
	return streak
}

func roundedAvg(total, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(count)))
}
