package storage

import (
	"context"
	"fmt"

	"github.com/misterclayt0n/vigor/internal/models"
)

func insertGoal(ctx context.Context, db execer, g models.Goal) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO goals (id, title, target, unit, period)
         VALUES (?, ?, ?, ?, ?)`,
		g.ID,
		g.Title,
		g.Target,
		g.Unit,
		g.Period,
	)
	return err
}

func (s *Storage) CreateGoal(ctx context.Context, g models.Goal) error {
	if err := insertGoal(ctx, s.DB, g); err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

// ListGoals returns every goal in the order it was added.
func (s *Storage) ListGoals(ctx context.Context) ([]models.Goal, error) {
	rows, err := s.DB.QueryContext(ctx, `
        SELECT id, title, target, unit, period
        FROM goals
        ORDER BY seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		var g models.Goal
		if err := rows.Scan(&g.ID, &g.Title, &g.Target, &g.Unit, &g.Period); err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goals: %w", err)
	}
	return goals, nil
}

// SeedDefaults inserts goals and workouts in one transaction, but only into
// a database that has no goals yet. It reports whether anything was written.
func (s *Storage) SeedDefaults(ctx context.Context, goals []models.Goal, workouts []models.Workout) (bool, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM goals`).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count goals: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	for _, g := range goals {
		if err := insertGoal(ctx, tx, g); err != nil {
			return false, fmt.Errorf("failed to seed goal %s: %w", g.Title, err)
		}
	}
	for _, w := range workouts {
		if err := insertWorkout(ctx, tx, w); err != nil {
			return false, fmt.Errorf("failed to seed workout %s: %w", w.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return true, nil
}
