// Package tracker holds the workout and goal lists of a session and feeds
// them to the aggregator.
package tracker

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/misterclayt0n/vigor/internal/models"
	"github.com/misterclayt0n/vigor/internal/utils"
)

var (
	ErrMissingType     = errors.New("workout type is required")
	ErrInvalidDuration = errors.New("duration must be a positive number of minutes")
	ErrInvalidCalories = errors.New("calories burned must be a positive number")
	ErrMissingTitle    = errors.New("goal title is required")
	ErrInvalidTarget   = errors.New("goal target must be positive")
	ErrMissingUnit     = errors.New("goal unit is required")
	ErrInvalidPeriod   = errors.New("goal period must be weekly or monthly")
)

// Tracker owns the canonical workout and goal lists. It is not safe for
// concurrent use; aggregate from the copies returned by Workouts and Goals.
type Tracker struct {
	workouts []models.Workout
	goals    []models.Goal
	loc      *time.Location
	now      func() time.Time
}

type Option func(*Tracker)

// WithLocation sets the zone in which "today" is determined.
func WithLocation(loc *time.Location) Option {
	return func(t *Tracker) { t.loc = loc }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// New builds a Tracker over copies of the given lists.
func New(workouts []models.Workout, goals []models.Goal, opts ...Option) *Tracker {
	t := &Tracker{
		workouts: append([]models.Workout(nil), workouts...),
		goals:    append([]models.Goal(nil), goals...),
		loc:      time.UTC,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// WorkoutInput is the raw workout form.
type WorkoutInput struct {
	Type            string
	DurationMinutes int
	CaloriesBurned  int
	Date            time.Time // zero means today
}

// GoalInput is the raw goal form.
type GoalInput struct {
	Title  string
	Target float64
	Unit   string
	Period string // empty means weekly
}

// ValidateWorkout applies the workout form rules to a record that did not
// come through AddWorkout, such as a row from an imported dump.
func ValidateWorkout(w models.Workout) error {
	switch {
	case strings.TrimSpace(w.Type) == "":
		return ErrMissingType
	case w.DurationMinutes <= 0:
		return ErrInvalidDuration
	case w.CaloriesBurned <= 0:
		return ErrInvalidCalories
	}
	return nil
}

// ValidateGoal applies the goal form rules. Unit and period are expected
// already normalized to lower case.
func ValidateGoal(g models.Goal) error {
	switch {
	case strings.TrimSpace(g.Title) == "":
		return ErrMissingTitle
	case g.Target <= 0:
		return ErrInvalidTarget
	case strings.TrimSpace(g.Unit) == "":
		return ErrMissingUnit
	case g.Period != models.PeriodWeekly && g.Period != models.PeriodMonthly:
		return ErrInvalidPeriod
	}
	return nil
}

// AddWorkout validates the form and appends a new workout. Nothing is
// appended when validation fails.
func (t *Tracker) AddWorkout(in WorkoutInput) (models.Workout, error) {
	date := t.Today()
	if !in.Date.IsZero() {
		date = utils.CivilDate(in.Date, nil)
	}

	w := models.Workout{
		Type:            strings.TrimSpace(in.Type),
		DurationMinutes: in.DurationMinutes,
		CaloriesBurned:  in.CaloriesBurned,
		Date:            date,
	}
	if err := ValidateWorkout(w); err != nil {
		return models.Workout{}, err
	}

	w.ID = uuid.New().String()
	t.workouts = append(t.workouts, w)
	return w, nil
}

// AddGoal validates the form and appends a new goal.
func (t *Tracker) AddGoal(in GoalInput) (models.Goal, error) {
	title := strings.TrimSpace(in.Title)
	unit := strings.ToLower(strings.TrimSpace(in.Unit))
	period := strings.ToLower(strings.TrimSpace(in.Period))
	if period == "" {
		period = models.PeriodWeekly
	}

	g := models.Goal{
		Title:  title,
		Target: in.Target,
		Unit:   unit,
		Period: period,
	}
	if err := ValidateGoal(g); err != nil {
		return models.Goal{}, err
	}

	g.ID = uuid.New().String()
	t.goals = append(t.goals, g)
	return g, nil
}

// Recent returns up to n of the most recently added workouts, newest first.
func (t *Tracker) Recent(n int) []models.Workout {
	if n <= 0 {
		return nil
	}
	if n > len(t.workouts) {
		n = len(t.workouts)
	}
	out := make([]models.Workout, 0, n)
	for i := len(t.workouts) - 1; i >= len(t.workouts)-n; i-- {
		out = append(out, t.workouts[i])
	}
	return out
}

// Workouts returns a copy of the workout list in insertion order.
func (t *Tracker) Workouts() []models.Workout {
	return append([]models.Workout(nil), t.workouts...)
}

// Goals returns a copy of the goal list in insertion order.
func (t *Tracker) Goals() []models.Goal {
	return append([]models.Goal(nil), t.goals...)
}

// Today is the current calendar day in the tracker's zone.
func (t *Tracker) Today() time.Time {
	return utils.CivilDate(t.now(), t.loc)
}
