package cmd

import (
	"fmt"

	"github.com/misterclayt0n/vigor/internal/models"
	"github.com/misterclayt0n/vigor/internal/tracker"
	"github.com/spf13/cobra"
)

var withSample bool

var initSetupCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database and seed the default goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage()
		if err != nil {
			return fmt.Errorf("Failed to open database: %w", err)
		}
		defer st.Close()

		var workouts []models.Workout
		if withSample {
			workouts = tracker.SampleWorkouts()
		}

		seeded, err := st.SeedDefaults(cmd.Context(), tracker.DefaultGoals(), workouts)
		if err != nil {
			return fmt.Errorf("Failed to seed database: %w", err)
		}
		if !seeded {
			fmt.Println("✅ Database already initialized")
			return nil
		}

		fmt.Printf("✅ Database initialized with %d goals and %d workouts\n", len(tracker.DefaultGoals()), len(workouts))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initSetupCmd)
	initSetupCmd.Flags().BoolVar(&withSample, "sample", false, "Also seed three sample workouts")
}
