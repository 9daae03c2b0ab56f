package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/vigor/internal/stats"
	"github.com/misterclayt0n/vigor/internal/utils"
	"github.com/spf13/cobra"
)

const chartWidth = 30

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Chart minutes and calories for the last logged days, and minutes per workout type",
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

		printDailyChart(d.Daily)
		fmt.Println()
		printTypeDurationChart(d.TypeDurations)
		return nil
	},
}

func printDailyChart(days []stats.DailyBucket) {
	printSection("Daily progress:")
	if len(days) == 0 {
		fmt.Println("  No workouts logged yet")
		return
	}

	maxDuration := 0
	for _, b := range days {
		maxDuration = max(maxDuration, b.TotalDuration)
	}

	blue := color.New(color.FgBlue).SprintFunc()
	for _, b := range days {
		fmt.Printf("  %s %s %4d min %6d kcal\n",
			utils.FormatDate(b.Date),
			blue(padRight(renderBar(b.TotalDuration, maxDuration, chartWidth), chartWidth)),
			b.TotalDuration, b.TotalCalories)
	}
}

func printTypeDurationChart(types []stats.TypeDuration) {
	printSection("Workout types distribution (minutes):")
	if len(types) == 0 {
		fmt.Println("  No workouts logged yet")
		return
	}

	maxDuration := 0
	for _, t := range types {
		maxDuration = max(maxDuration, t.Duration)
	}

	magenta := color.New(color.FgMagenta).SprintFunc()
	for _, t := range types {
		fmt.Printf("  %-14s %s %d\n", t.Type, magenta(padRight(renderBar(t.Duration, maxDuration, chartWidth), chartWidth)), t.Duration)
	}
}

func init() {
	rootCmd.AddCommand(progressCmd)
}
