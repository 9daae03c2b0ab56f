package cmd

import (
	"fmt"

	"github.com/misterclayt0n/vigor/internal/stats"
	"github.com/misterclayt0n/vigor/internal/utils"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show totals, goal progress and the most recent workouts",
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
		d := tr.Dashboard(cfg.Dashboard.TopTypes)

		printBoxedHeader("FITNESS TRACKER")
		printMetric("Total workouts", d.Summary.Count)
		printMetric("Total duration", fmt.Sprintf("%dm", d.Summary.TotalDuration))
		printMetric("Calories burned", d.Summary.TotalCalories)
		printMetric("This week", fmt.Sprintf("%d workouts (since %s)", d.ThisWeek, utils.FormatDate(stats.WeekStart(d.AsOf))))
		printMetric("Week streak", fmt.Sprintf("%d weeks", d.WeekStreak))
		fmt.Println()

		if len(d.Goals) > 0 {
			printSection("Goals:")
			for _, g := range d.Goals {
				fmt.Printf("  %-28s %s\n", g.Goal.Title, renderProgress(g.Progress.Percent, 20))
			}
			fmt.Println()
		}

		if len(d.Recent) > 0 {
			printSection("Recent workouts:")
			for _, w := range d.Recent {
				fmt.Printf("  %s  %-14s %4dm %6d kcal\n", utils.FormatDate(w.Date), w.Type, w.DurationMinutes, w.CaloriesBurned)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
