package tracker

import (
	"time"

	"github.com/misterclayt0n/vigor/internal/models"
)

// DefaultGoals are seeded into a fresh database.
func DefaultGoals() []models.Goal {
	return []models.Goal{
		{ID: "1", Title: "Weekly Workout Duration", Target: 300, Unit: models.UnitMinutes, Period: models.PeriodWeekly},
		{ID: "2", Title: "Monthly Calories Burned", Target: 8000, Unit: models.UnitCalories, Period: models.PeriodMonthly},
	}
}

// SampleWorkouts are seeded by `init --sample`.
func SampleWorkouts() []models.Workout {
	return []models.Workout{
		{ID: "1", Type: "Running", DurationMinutes: 30, CaloriesBurned: 300, Date: time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)},
		{ID: "2", Type: "Weightlifting", DurationMinutes: 45, CaloriesBurned: 200, Date: time.Date(2024, time.June, 11, 0, 0, 0, 0, time.UTC)},
		{ID: "3", Type: "Yoga", DurationMinutes: 60, CaloriesBurned: 150, Date: time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC)},
	}
}
