// Package tips holds the static health tips and workout suggestions.
package tips

import "strings"

type Tip struct {
	Title    string
	Content  string
	Category string
}

type Suggestion struct {
	Name        string
	Duration    string
	Description string
	Difficulty  string
}

var healthTips = []Tip{
	{"Stay Hydrated", "Drink at least 8 glasses of water daily, especially before, during, and after workouts.", "Nutrition"},
	{"Progressive Overload", "Gradually increase the weight, frequency, or intensity of your workouts to continue seeing progress.", "Training"},
	{"Rest and Recovery", "Allow at least one full rest day per week and get 7-9 hours of quality sleep each night.", "Recovery"},
	{"Warm-Up Properly", "Always start with 5-10 minutes of light cardio and dynamic stretching before intense exercise.", "Safety"},
	{"Protein Intake", "Consume 0.8-1g of protein per kg of body weight daily to support muscle recovery and growth.", "Nutrition"},
}

var suggestions = []Suggestion{
	{"HIIT Cardio", "20 minutes", "High-intensity intervals: 30 seconds work, 30 seconds rest", "Intermediate"},
	{"Full Body Strength", "45 minutes", "Compound movements: squats, deadlifts, push-ups, rows", "Beginner"},
	{"Yoga Flow", "30 minutes", "Gentle stretching and mindfulness for flexibility and recovery", "All Levels"},
	{"Running Intervals", "35 minutes", "5 min warm-up, 20 min intervals, 10 min cool-down", "Intermediate"},
}

// HealthTips returns the tips in category (case insensitive), or all of them
// when category is empty.
func HealthTips(category string) []Tip {
	var out []Tip
	for _, tip := range healthTips {
		if category == "" || strings.EqualFold(tip.Category, category) {
			out = append(out, tip)
		}
	}
	return out
}

// Categories lists tip categories in first-appearance order.
func Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, tip := range healthTips {
		if !seen[tip.Category] {
			seen[tip.Category] = true
			out = append(out, tip.Category)
		}
	}
	return out
}

func Suggestions() []Suggestion {
	return append([]Suggestion(nil), suggestions...)
}
