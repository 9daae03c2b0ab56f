package stats

import (
	"sort"

	"github.com/misterclayt0n/vigor/internal/models"
)

// TypeFrequency is the number of workouts logged for one type.
type TypeFrequency struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// TypeDuration is the total minutes logged for one type.
type TypeDuration struct {
	Type     string `json:"type"`
	Duration int    `json:"duration"`
}

// TypeStats is one row of the per-type statistics table.
type TypeStats struct {
	Type          string `json:"type"`
	Sessions      int    `json:"sessions"`
	TotalDuration int    `json:"total_duration"`
	TotalCalories int    `json:"total_calories"`
	AvgDuration   int    `json:"avg_duration"`
	AvgCalories   int    `json:"avg_calories"`
}

// TypeFrequencies returns workout counts per type, most frequent first.
// Ties keep the order in which the types first appear. topN <= 0 returns
// every type.
func TypeFrequencies(workouts []models.Workout, topN int) []TypeFrequency {
	counts := newOrderedMap[string, int]()
	for _, w := range workouts {
		*counts.entry(w.Type)++
	}

	out := make([]TypeFrequency, 0, counts.len())
	counts.each(func(t string, n *int) {
		out = append(out, TypeFrequency{Type: t, Count: *n})
	})

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}

// DurationByType sums minutes per type in first-appearance order.
func DurationByType(workouts []models.Workout) []TypeDuration {
	totals := newOrderedMap[string, int]()
	for _, w := range workouts {
		*totals.entry(w.Type) += w.DurationMinutes
	}

	out := make([]TypeDuration, 0, totals.len())
	totals.each(func(t string, d *int) {
		out = append(out, TypeDuration{Type: t, Duration: *d})
	})
	return out
}

// StatsByType builds per-type totals and rounded averages in first-appearance order.
func StatsByType(workouts []models.Workout) []TypeStats {
	rows := newOrderedMap[string, TypeStats]()
	for _, w := range workouts {
		row := rows.entry(w.Type)
		row.Sessions++
		row.TotalDuration += w.DurationMinutes
		row.TotalCalories += w.CaloriesBurned
	}

	out := make([]TypeStats, 0, rows.len())
	rows.each(func(t string, row *TypeStats) {
		r := *row
		r.Type = t
		r.AvgDuration = roundedAvg(r.TotalDuration, r.Sessions)
		r.AvgCalories = roundedAvg(r.TotalCalories, r.Sessions)
		out = append(out, r)
	})
	return out
}
