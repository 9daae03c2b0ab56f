package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/vigor/internal/models"
	"github.com/misterclayt0n/vigor/internal/utils"
	"github.com/spf13/cobra"
)

// details is a flag to enable verbose workout details.
var details bool

// calendarCmd prints the calendar grid.
// Days with workouts are printed with a color based on the first workout type of that day,
// and a legend is printed below the calendar.
var calendarCmd = &cobra.Command{
	Use:   "calendar [month] [year]",
	Short: "Display a calendar of workout days with a legend mapping colors to workout types",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, err := cfg.Location()
		if err != nil {
			return err
		}

		// Determine month and year (default to current month/year).
		today := utils.Today(loc)
		month := today.Month()
		year := today.Year()
		if len(args) >= 1 {
			m, err := strconv.Atoi(args[0])
			if err != nil || m < 1 || m > 12 {
				return fmt.Errorf("invalid month: %s", args[0])
			}
			month = time.Month(m)
		}
		if len(args) == 2 {
			y, err := strconv.Atoi(args[1])
			if err != nil || y < 1 {
				return fmt.Errorf("invalid year: %s", args[1])
			}
			year = y
		}

		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		workouts, err := st.ListWorkouts(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get workouts: %w", err)
		}

		firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		lastOfMonth := firstOfMonth.AddDate(0, 1, -1)
		byDay, types := workoutsInMonth(workouts, year, month)
		colors := typeColors(types)

		header := fmt.Sprintf("%s %d", month.String(), year)
		fmt.Println(centerText(header, 20))
		fmt.Println("Su Mo Tu We Th Fr Sa")

		// Determine weekday of first day (0 = Sunday).
		weekday := int(firstOfMonth.Weekday())
		for i := 0; i < weekday; i++ {
			fmt.Print("   ")
		}

		for day := 1; day <= lastOfMonth.Day(); day++ {
			dayStr := fmt.Sprintf("%2d", day)
			if list, ok := byDay[day]; ok {
				dayStr = colors[list[0].Type](dayStr + "*")
			} else if year == today.Year() && month == today.Month() && day == today.Day() {
				dayStr = color.New(color.Underline).Sprint(dayStr)
			}
			fmt.Printf("%s ", dayStr)
			weekday++
			if weekday%7 == 0 {
				fmt.Println()
			}
		}
		fmt.Print("\n\n")

		if len(types) > 0 {
			fmt.Println("Legend:")
			for _, t := range types {
				fmt.Printf("  %s: %s\n", colors[t]("██"), t)
			}
		}

		if details {
			fmt.Println("\nWorkout Details:")
			for day := 1; day <= lastOfMonth.Day(); day++ {
				list, ok := byDay[day]
				if !ok {
					continue
				}
				fmt.Printf("\n%s:\n", list[0].Date.Format("Mon, 02 Jan 2006"))
				for _, w := range list {
					fmt.Printf("  %s: %d min, %d kcal\n", w.Type, w.DurationMinutes, w.CaloriesBurned)
				}
			}
		}

		return nil
	},
}

// workoutsInMonth groups the month's workouts by day of month and lists the
// workout types in the order they first appear.
func workoutsInMonth(workouts []models.Workout, year int, month time.Month) (map[int][]models.Workout, []string) {
	byDay := make(map[int][]models.Workout)
	seen := make(map[string]bool)
	var types []string
	for _, w := range workouts {
		if w.Date.Year() != year || w.Date.Month() != month {
			continue
		}
		byDay[w.Date.Day()] = append(byDay[w.Date.Day()], w)
		if !seen[w.Type] {
			seen[w.Type] = true
			types = append(types, w.Type)
		}
	}
	return byDay, types
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().BoolVarP(&details, "details", "d", false, "Print the workouts of each day")
}
