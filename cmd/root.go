package cmd

import (
	"context"
	"fmt"

	"github.com/misterclayt0n/vigor/internal/config"
	"github.com/misterclayt0n/vigor/internal/logging"
	"github.com/misterclayt0n/vigor/internal/storage"
	"github.com/misterclayt0n/vigor/internal/tracker"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "vigor",
	Short: "Log workouts, track goals and see your training stats",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level := cfg.Log.Level
		if verbose {
			level = "debug"
		}
		logging.Setup(logging.LoggerSetupParams{LogLevel: level, LogFormatJSON: cfg.Log.JSON})
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

// openStorage opens the configured database. Callers close it.
func openStorage() (*storage.Storage, error) {
	return storage.NewStorage(cfg.DB.ConnectionString)
}

// loadTracker reads every workout and goal into a Tracker set to the
// configured timezone.
func loadTracker(ctx context.Context, st *storage.Storage) (*tracker.Tracker, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	workouts, err := st.ListWorkouts(ctx)
	if err != nil {
		return nil, err
	}
	goals, err := st.ListGoals(ctx)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"workouts": len(workouts),
		"goals":    len(goals),
		"timezone": loc.String(),
	}).Debug("loaded tracker")
	return tracker.New(workouts, goals, tracker.WithLocation(loc)), nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/vigor/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
