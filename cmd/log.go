package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/misterclayt0n/vigor/internal/models"
	"github.com/misterclayt0n/vigor/internal/tracker"
	"github.com/misterclayt0n/vigor/internal/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	workoutType     string
	workoutMinutes  int
	workoutCalories int
	workoutDate     string
)

var logWorkoutCmd = &cobra.Command{
	Use:   "log-workout",
	Short: "Log a workout",
	Long: "Log a workout. Suggested types: " + strings.Join(models.WorkoutTypes, ", ") +
		".\nThe date defaults to today in the configured timezone.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		tr, err := loadTracker(cmd.Context(), st)
		if err != nil {
			return fmt.Errorf("failed to load workouts: %w", err)
		}

		var date time.Time
		if workoutDate != "" {
			date, err = utils.ParseDate(workoutDate)
			if err != nil {
				return err
			}
		}

		w, err := tr.AddWorkout(tracker.WorkoutInput{
			Type:            workoutType,
			DurationMinutes: workoutMinutes,
			CaloriesBurned:  workoutCalories,
			Date:            date,
		})
		if err != nil {
			return err
		}

		if err := st.CreateWorkout(cmd.Context(), w); err != nil {
			return err
		}

		logrus.WithField("id", w.ID).Debug("workout logged")
		fmt.Printf("✅ Logged %s: %d min, %d kcal on %s\n", w.Type, w.DurationMinutes, w.CaloriesBurned, utils.FormatDate(w.Date))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logWorkoutCmd)

	logWorkoutCmd.Flags().StringVarP(&workoutType, "type", "t", "", "Workout type (e.g. Running)")
	logWorkoutCmd.Flags().IntVarP(&workoutMinutes, "minutes", "m", 0, "Duration in minutes")
	logWorkoutCmd.Flags().IntVarP(&workoutCalories, "calories", "c", 0, "Calories burned")
	logWorkoutCmd.Flags().StringVarP(&workoutDate, "date", "d", "", "Workout date (e.g. 2025-02-07 or 07/02/25)")
	logWorkoutCmd.MarkFlagRequired("type")
	logWorkoutCmd.MarkFlagRequired("minutes")
	logWorkoutCmd.MarkFlagRequired("calories")
}
