package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/vigor/internal/stats"
	"github.com/misterclayt0n/vigor/internal/utils"
	"github.com/spf13/cobra"
)

// There is a single local user; the admin view shows the count the way a
// multi-user install would.
const totalUsers = 1

var topTypes int

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Show aggregate statistics: weekly trends, popular workout types and per-type totals",
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

		n := cfg.Dashboard.TopTypes
		if topTypes > 0 {
			n = topTypes
		}
		d := tr.Dashboard(n)

		printBoxedHeader("ADMIN")
		printMetric("Total users", totalUsers)
		printMetric("Total workouts", d.Summary.Count)
		printMetric("Avg duration", fmt.Sprintf("%dm", d.Summary.AvgDuration))
		printMetric("Total calories", d.Summary.TotalCalories)
		fmt.Println()

		printSection("Weekly activity trends:")
		maxCount := 0
		for _, w := range d.Weekly {
			maxCount = max(maxCount, w.WorkoutCount)
		}
		blue := color.New(color.FgBlue).SprintFunc()
		for _, w := range d.Weekly {
			fmt.Printf("  %s %s %d workouts, %d min, %d kcal\n",
				utils.FormatDate(w.WeekStart),
				blue(padRight(renderBar(w.WorkoutCount, maxCount, chartWidth), chartWidth)),
				w.WorkoutCount, w.TotalDuration, w.TotalCalories)
		}
		fmt.Println()

		printSection("Popular workout types:")
		colors := typeColors(popularTypeNames(d.PopularTypes))
		for _, p := range d.PopularTypes {
			share := 0.0
			if d.Summary.Count > 0 {
				share = float64(p.Count) / float64(d.Summary.Count) * 100
			}
			fmt.Printf("  %s %-14s %3d (%.0f%%)\n", colors[p.Type]("██"), p.Type, p.Count, share)
		}
		fmt.Println()

		printSection("Workout statistics summary:")
		fmt.Println("  ┌────────────────┬──────────┬──────────────┬────────────────┬──────────────┐")
		fmt.Println("  │ Workout Type   │ Sessions │ Avg Duration │ Total Calories │ Avg Calories │")
		fmt.Println("  ├────────────────┼──────────┼──────────────┼────────────────┼──────────────┤")
		for _, row := range d.TypeStats {
			fmt.Printf("  │ %-14s │ %8d │ %11dm │ %14d │ %12d │\n",
				row.Type, row.Sessions, row.AvgDuration, row.TotalCalories, row.AvgCalories)
		}
		fmt.Println("  └────────────────┴──────────┴──────────────┴────────────────┴──────────────┘")
		return nil
	},
}

func popularTypeNames(popular []stats.TypeFrequency) []string {
	names := make([]string, 0, len(popular))
	for _, p := range popular {
		names = append(names, p.Type)
	}
	return names
}

func init() {
	rootCmd.AddCommand(adminCmd)
	adminCmd.Flags().IntVarP(&topTypes, "top", "n", 0, "Number of popular workout types to show (default from config)")
}
