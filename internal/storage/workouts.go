package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/misterclayt0n/vigor/internal/models"
	"github.com/misterclayt0n/vigor/internal/utils"
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertWorkout(ctx context.Context, db execer, w models.Workout) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO workouts (id, type, duration_minutes, calories_burned, date)
         VALUES (?, ?, ?, ?, ?)`,
		w.ID,
		w.Type,
		w.DurationMinutes,
		w.CaloriesBurned,
		utils.FormatDate(w.Date),
	)
	return err
}

func (s *Storage) CreateWorkout(ctx context.Context, w models.Workout) error {
	if err := insertWorkout(ctx, s.DB, w); err != nil {
		return fmt.Errorf("failed to create workout: %w", err)
	}
	return nil
}

// ListWorkouts returns every workout in the order it was logged.
func (s *Storage) ListWorkouts(ctx context.Context) ([]models.Workout, error) {
	rows, err := s.DB.QueryContext(ctx, `
        SELECT id, type, duration_minutes, calories_burned, date
        FROM workouts
        ORDER BY seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query workouts: %w", err)
	}
	defer rows.Close()

	var workouts []models.Workout
	for rows.Next() {
		var w models.Workout
		var rawDate string
		if err := rows.Scan(&w.ID, &w.Type, &w.DurationMinutes, &w.CaloriesBurned, &rawDate); err != nil {
			return nil, fmt.Errorf("failed to scan workout: %w", err)
		}
		w.Date, err = utils.ParseDate(rawDate)
		if err != nil {
			return nil, fmt.Errorf("workout %s: %w", w.ID, err)
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating workouts: %w", err)
	}
	return workouts, nil
}
