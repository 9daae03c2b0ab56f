package tracker

import (
	"fmt"
	"testing"
	"time"

	"github.com/misterclayt0n/vigor/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday 2024-06-12 01:00 UTC is still Tuesday the 11th in São Paulo.
var fixedNow = time.Date(2024, time.June, 12, 1, 0, 0, 0, time.UTC)

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	return New(SampleWorkouts(), DefaultGoals(),
		WithLocation(loc),
		WithClock(func() time.Time { return fixedNow }),
	)
}

func TestAddWorkout_DefaultsToTodayInLocation(t *testing.T) {
	tr := newTestTracker(t)

	w, err := tr.AddWorkout(WorkoutInput{Type: " Cycling ", DurationMinutes: 40, CaloriesBurned: 350})
	require.NoError(t, err)
	assert.NotEmpty(t, w.ID)
	assert.Equal(t, "Cycling", w.Type)
	assert.Equal(t, "2024-06-11", w.Date.Format("2006-01-02"))

	all := tr.Workouts()
	require.Len(t, all, 4)
	assert.Equal(t, w, all[3])
}

func TestAddWorkout_ExplicitDate(t *testing.T) {
	tr := newTestTracker(t)
	date := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	w, err := tr.AddWorkout(WorkoutInput{Type: "Yoga", DurationMinutes: 20, CaloriesBurned: 80, Date: date})
	require.NoError(t, err)
	assert.Equal(t, date, w.Date)
}

func TestAddWorkout_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		in   WorkoutInput
		want error
	}{
		{"missing type", WorkoutInput{Type: "  ", DurationMinutes: 30, CaloriesBurned: 100}, ErrMissingType},
		{"zero duration", WorkoutInput{Type: "Running", CaloriesBurned: 100}, ErrInvalidDuration},
		{"negative calories", WorkoutInput{Type: "Running", DurationMinutes: 30, CaloriesBurned: -1}, ErrInvalidCalories},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestTracker(t)
			_, err := tr.AddWorkout(tt.in)
			assert.ErrorIs(t, err, tt.want)
			assert.Len(t, tr.Workouts(), 3)
		})
	}
}

func TestAddGoal(t *testing.T) {
	tr := newTestTracker(t)

	g, err := tr.AddGoal(GoalInput{Title: "Cardio", Target: 120, Unit: "Minutes"})
	require.NoError(t, err)
	assert.Equal(t, models.PeriodWeekly, g.Period)
	assert.Equal(t, models.UnitMinutes, g.Unit)
	assert.Len(t, tr.Goals(), 3)

	// Free-form units are accepted; they just never make progress.
	_, err = tr.AddGoal(GoalInput{Title: "Distance", Target: 10, Unit: "miles", Period: "monthly"})
	require.NoError(t, err)
}

func TestAddGoal_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		in   GoalInput
		want error
	}{
		{"missing title", GoalInput{Target: 10, Unit: "minutes"}, ErrMissingTitle},
		{"zero target", GoalInput{Title: "x", Unit: "minutes"}, ErrInvalidTarget},
		{"negative target", GoalInput{Title: "x", Target: -5, Unit: "minutes"}, ErrInvalidTarget},
		{"missing unit", GoalInput{Title: "x", Target: 10}, ErrMissingUnit},
		{"bad period", GoalInput{Title: "x", Target: 10, Unit: "minutes", Period: "daily"}, ErrInvalidPeriod},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestTracker(t)
			_, err := tr.AddGoal(tt.in)
			assert.ErrorIs(t, err, tt.want)
			assert.Len(t, tr.Goals(), 2)
		})
	}
}

func TestValidateWorkout(t *testing.T) {
	ok := models.Workout{Type: "Running", DurationMinutes: 30, CaloriesBurned: 300}
	assert.NoError(t, ValidateWorkout(ok))

	noType := ok
	noType.Type = " "
	assert.ErrorIs(t, ValidateWorkout(noType), ErrMissingType)

	noCalories := ok
	noCalories.CaloriesBurned = 0
	assert.ErrorIs(t, ValidateWorkout(noCalories), ErrInvalidCalories)
}

func TestValidateGoal(t *testing.T) {
	tests := []struct {
		name string
		goal models.Goal
		want error
	}{
		{"valid", models.Goal{Title: "x", Target: 1, Unit: "minutes", Period: "monthly"}, nil},
		{"free-form unit", models.Goal{Title: "x", Target: 1, Unit: "miles", Period: "weekly"}, nil},
		{"missing title", models.Goal{Target: 1, Unit: "minutes", Period: "weekly"}, ErrMissingTitle},
		{"missing unit", models.Goal{Title: "x", Target: 1, Period: "weekly"}, ErrMissingUnit},
		{"empty period", models.Goal{Title: "x", Target: 1, Unit: "minutes"}, ErrInvalidPeriod},
		{"yearly period", models.Goal{Title: "x", Target: 1, Unit: "minutes", Period: "yearly"}, ErrInvalidPeriod},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGoal(tt.goal)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRecent(t *testing.T) {
	workoutsOf := func(n int) []models.Workout {
		ws := make([]models.Workout, n)
		for i := range ws {
			ws[i] = models.Workout{ID: fmt.Sprint(i), Type: "Running", DurationMinutes: 10, CaloriesBurned: 10}
		}
		return ws
	}
	ids := func(ws []models.Workout) []string {
		out := []string{}
		for _, w := range ws {
			out = append(out, w.ID)
		}
		return out
	}

	tests := []struct {
		name  string
		count int
		want  []string
	}{
		{"none", 0, []string{}},
		{"fewer than five", 3, []string{"2", "1", "0"}},
		{"exactly five", 5, []string{"4", "3", "2", "1", "0"}},
		{"more than five", 8, []string{"7", "6", "5", "4", "3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New(workoutsOf(tt.count), nil)
			assert.Equal(t, tt.want, ids(tr.Recent(RecentWorkouts)))
		})
	}
}

func TestRecent_NewestFirstAfterAdd(t *testing.T) {
	tr := newTestTracker(t)
	w, err := tr.AddWorkout(WorkoutInput{Type: "Swimming", DurationMinutes: 25, CaloriesBurned: 250})
	require.NoError(t, err)

	recent := tr.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, w, recent[0])
	assert.Equal(t, "Yoga", recent[1].Type)
	assert.Empty(t, tr.Recent(0))
}

func TestWorkouts_ReturnsCopy(t *testing.T) {
	tr := newTestTracker(t)
	ws := tr.Workouts()
	ws[0].Type = "Mutated"
	assert.Equal(t, "Running", tr.Workouts()[0].Type)
}

func TestDashboard(t *testing.T) {
	tr := newTestTracker(t)
	d := tr.Dashboard(5)

	assert.Equal(t, "2024-06-11", d.AsOf.Format("2006-01-02"))
	assert.Equal(t, 3, d.Summary.Count)
	assert.Equal(t, 135, d.Summary.TotalDuration)
	assert.Equal(t, 650, d.Summary.TotalCalories)
	assert.Equal(t, 45, d.Summary.AvgDuration)
	assert.Equal(t, 3, d.ThisWeek)
	assert.Equal(t, 1, d.WeekStreak)
	assert.Len(t, d.Daily, 3)
	assert.Len(t, d.Weekly, 1)
	assert.Len(t, d.PopularTypes, 3)
	assert.Len(t, d.TypeStats, 3)
	require.Len(t, d.Recent, 3)
	assert.Equal(t, "Yoga", d.Recent[0].Type)
	assert.Equal(t, "Running", d.Recent[2].Type)

	require.Len(t, d.Goals, 2)
	weekly := d.Goals[0]
	assert.Equal(t, 135, weekly.Progress.Current)
	assert.InDelta(t, 45.0, weekly.Progress.Percent, 1e-9)
	monthly := d.Goals[1]
	assert.Equal(t, 650, monthly.Progress.Current)
	assert.InDelta(t, 8.125, monthly.Progress.Percent, 1e-9)
}
