package stats

import (
	"math"
	"time"

	"github.com/misterclayt0n/vigor/internal/models"
)

// GoalProgress is how far the current window's workouts are toward a goal.
// Percent is always within [0, 100].
type GoalProgress struct {
	Current int     `json:"current"`
	Target  float64 `json:"target"`
	Percent float64 `json:"percent"`
}

// Progress sums the goal's unit over workouts dated within the goal window
// containing asOf. Unknown units accumulate nothing. A non-positive target
// never reaches the tracker, but yields 0 percent here rather than dividing.
func Progress(goal models.Goal, workouts []models.Workout, asOf time.Time) GoalProgress {
	start := WindowStart(goal.Period, asOf)

	current := 0
	for _, w := range workouts {
		if !onOrAfter(w, start) {
			continue
		}
		switch goal.Unit {
		case models.UnitMinutes:
			current += w.DurationMinutes
		case models.UnitCalories:
			current += w.CaloriesBurned
		}
	}

	p := GoalProgress{Current: current, Target: goal.Target}
	if goal.Target > 0 {
		p.Percent = math.Max(0, math.Min(float64(current)/goal.Target*100, 100))
	}
	return p
}
