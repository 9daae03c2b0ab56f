package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/vigor/internal/models"
	"github.com/misterclayt0n/vigor/internal/utils"
	"github.com/spf13/cobra"
)

var (
	filterType string
	filterDay  string
)

// listWorkoutsCmd shows the workout log grouped by day, oldest first.
var listWorkoutsCmd = &cobra.Command{
	Use:   "list-workouts",
	Short: "Display logged workouts, optionally filtered by type and/or day",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		workouts, err := st.ListWorkouts(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to retrieve workouts: %w", err)
		}

		// Case insensitive filtering by type.
		if filterType != "" {
			var filtered []models.Workout
			for _, w := range workouts {
				if strings.EqualFold(w.Type, filterType) {
					filtered = append(filtered, w)
				}
			}
			workouts = filtered
		}

		if filterDay != "" {
			day, err := utils.ParseDate(filterDay)
			if err != nil {
				return err
			}
			var filtered []models.Workout
			for _, w := range workouts {
				if w.Date.Equal(day) {
					filtered = append(filtered, w)
				}
			}
			workouts = filtered
		}

		if len(workouts) == 0 {
			fmt.Println("No workouts found")
			return nil
		}

		for _, group := range groupByDay(workouts) {
			fmt.Printf("%s\n", color.New(color.FgCyan, color.Bold).Sprint(utils.FormatDate(group[0].Date)))
			for _, w := range group {
				fmt.Printf("  %-14s %4d min  %5d kcal  %s\n", w.Type, w.DurationMinutes, w.CaloriesBurned, color.New(color.Faint).Sprint(w.ID))
			}
		}
		return nil
	},
}

// groupByDay splits workouts into runs sharing a date, ordered by date.
// Workouts on the same date keep their logged order.
func groupByDay(workouts []models.Workout) [][]models.Workout {
	byDay := make(map[string][]models.Workout)
	var days []string
	for _, w := range workouts {
		key := utils.FormatDate(w.Date)
		if _, ok := byDay[key]; !ok {
			days = append(days, key)
		}
		byDay[key] = append(byDay[key], w)
	}
	sort.Strings(days)

	groups := make([][]models.Workout, 0, len(days))
	for _, d := range days {
		groups = append(groups, byDay[d])
	}
	return groups
}

func init() {
	rootCmd.AddCommand(listWorkoutsCmd)
	listWorkoutsCmd.Flags().StringVarP(&filterType, "type", "t", "", "Filter by workout type (case insensitive)")
	listWorkoutsCmd.Flags().StringVarP(&filterDay, "day", "d", "", "Filter by day (e.g. 2025-02-07 or 07/02/25)")
}
