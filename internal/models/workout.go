package models

import "time"

// Suggested workout categories. Workout.Type is free-form and not limited to these.
var WorkoutTypes = []string{
	"Running", "Cycling", "Swimming", "Weightlifting", "Yoga",
	"Pilates", "Basketball", "Soccer", "Tennis", "Dancing", "Walking", "Other",
}

// Workout is a single logged workout. Date carries only calendar fields
// (midnight UTC); the time of day is meaningless.
type Workout struct {
	ID              string    `json:"id"`
	Type            string    `json:"type"`
	DurationMinutes int       `json:"duration_minutes"`
	CaloriesBurned  int       `json:"calories_burned"`
	Date            time.Time `json:"date"`
}
