package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/vigor/internal/models"
	"github.com/misterclayt0n/vigor/internal/tracker"
	"github.com/misterclayt0n/vigor/internal/utils"
	"github.com/sirupsen/logrus"
)

// ExportToTOML writes every workout and goal to a single TOML file.
func (s *Storage) ExportToTOML(ctx context.Context, outputPath string) error {
	workouts, err := s.ListWorkouts(ctx)
	if err != nil {
		return err
	}
	goals, err := s.ListGoals(ctx)
	if err != nil {
		return err
	}

	dump := models.Dump{
		Workouts: make([]models.WorkoutTOML, 0, len(workouts)),
		Goals:    make([]models.GoalTOML, 0, len(goals)),
	}
	for _, w := range workouts {
		dump.Workouts = append(dump.Workouts, models.WorkoutTOML{
			ID:              w.ID,
			Type:            w.Type,
			DurationMinutes: w.DurationMinutes,
			CaloriesBurned:  w.CaloriesBurned,
			Date:            utils.FormatDate(w.Date),
		})
	}
	for _, g := range goals {
		dump.Goals = append(dump.Goals, models.GoalTOML(g))
	}

	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(dump); err != nil {
		return fmt.Errorf("encoding TOML: %w", err)
	}

	// Make the output path absolute relative to the current directory.
	outputPath, err = filepath.Abs(outputPath)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"path":     outputPath,
		"workouts": len(dump.Workouts),
		"goals":    len(dump.Goals),
	}).Info("exported")
	return nil
}

// ImportFromTOML replaces all workouts and goals with the contents of the
// dump at filePath. Rows are checked with the same rules as the tracker
// forms. Nothing changes if any row is invalid or fails to insert.
func (s *Storage) ImportFromTOML(ctx context.Context, filePath string) (*models.Dump, error) {
	var dump models.Dump
	if _, err := toml.DecodeFile(filePath, &dump); err != nil {
		return nil, fmt.Errorf("decoding TOML %s: %w", filePath, err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"workouts", "goals"} {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s;", table)); err != nil {
			return nil, fmt.Errorf("clearing table %s: %w", table, err)
		}
	}

	for _, wt := range dump.Workouts {
		date, err := utils.ParseDate(wt.Date)
		if err != nil {
			return nil, fmt.Errorf("workout %s: %w", wt.ID, err)
		}
		w := models.Workout{
			ID:              wt.ID,
			Type:            wt.Type,
			DurationMinutes: wt.DurationMinutes,
			CaloriesBurned:  wt.CaloriesBurned,
			Date:            date,
		}
		if err := tracker.ValidateWorkout(w); err != nil {
			return nil, fmt.Errorf("workout %s: %w", wt.ID, err)
		}
		if err := insertWorkout(ctx, tx, w); err != nil {
			return nil, fmt.Errorf("inserting workout %s: %w", wt.ID, err)
		}
	}
	for _, gt := range dump.Goals {
		g := models.Goal(gt)
		if err := tracker.ValidateGoal(g); err != nil {
			return nil, fmt.Errorf("goal %s: %w", gt.ID, err)
		}
		if err := insertGoal(ctx, tx, g); err != nil {
			return nil, fmt.Errorf("inserting goal %s: %w", gt.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}
	return &dump, nil
}
