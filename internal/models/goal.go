package models

const (
	UnitMinutes  = "minutes"
	UnitCalories = "calories"

	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// Goal is a target for the summed duration or calories of the workouts in
// the current week or month. Units other than minutes and calories are
// accepted but never accumulate progress.
type Goal struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Target float64 `json:"target"`
	Unit   string  `json:"unit"`
	Period string  `json:"period"`
}
