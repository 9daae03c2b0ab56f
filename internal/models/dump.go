package models

//
// For TOML export/import only
//

type WorkoutTOML struct {
	ID              string `toml:"id"`
	Type            string `toml:"type"`
	DurationMinutes int    `toml:"duration_minutes"`
	CaloriesBurned  int    `toml:"calories_burned"`
	Date            string `toml:"date"` // YYYY-MM-DD
}

type GoalTOML struct {
	ID     string  `toml:"id"`
	Title  string  `toml:"title"`
	Target float64 `toml:"target"`
	Unit   string  `toml:"unit"`
	Period string  `toml:"period"`
}

type Dump struct {
	Workouts []WorkoutTOML `toml:"workout"`
	Goals    []GoalTOML    `toml:"goal"`
}
