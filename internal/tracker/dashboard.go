package tracker

import (
	"time"

	"github.com/misterclayt0n/vigor/internal/models"
	"github.com/misterclayt0n/vigor/internal/stats"
)

// RecentWorkouts is how many workouts the dashboard lists.
const RecentWorkouts = 5

// GoalStatus pairs a goal with its progress in the current window.
type GoalStatus struct {
	Goal     models.Goal
	Progress stats.GoalProgress
}

// Dashboard is every aggregate the commands render, computed from one
// snapshot of the lists.
type Dashboard struct {
	AsOf          time.Time
	Summary       stats.Summary
	ThisWeek      int
	WeekStreak    int
	Daily         []stats.DailyBucket
	Weekly        []stats.WeeklyBucket
	TypeDurations []stats.TypeDuration
	PopularTypes  []stats.TypeFrequency
	TypeStats     []stats.TypeStats
	Goals         []GoalStatus
	Recent        []models.Workout
}

// Dashboard aggregates the current lists as of today. topN limits PopularTypes.
func (t *Tracker) Dashboard(topN int) Dashboard {
	workouts := t.Workouts()
	asOf := t.Today()

	d := Dashboard{
		AsOf:          asOf,
		Summary:       stats.Summarize(workouts),
		ThisWeek:      stats.ThisWeekCount(workouts, asOf),
		WeekStreak:    stats.WeekStreak(workouts, asOf),
		Daily:         stats.BucketByDate(workouts),
		Weekly:        stats.BucketByWeek(workouts),
		TypeDurations: stats.DurationByType(workouts),
		PopularTypes:  stats.TypeFrequencies(workouts, topN),
		TypeStats:     stats.StatsByType(workouts),
		Recent:        t.Recent(RecentWorkouts),
	}
	for _, g := range t.Goals() {
		d.Goals = append(d.Goals, GoalStatus{Goal: g, Progress: stats.Progress(g, workouts, asOf)})
	}
	return d
}
