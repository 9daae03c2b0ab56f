package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/vigor/internal/stats"
	"github.com/misterclayt0n/vigor/internal/tracker"
	"github.com/misterclayt0n/vigor/internal/utils"
	"github.com/spf13/cobra"
)

var (
	goalTitle  string
	goalTarget float64
	goalUnit   string
	goalPeriod string
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Show progress toward every goal in the current week or month",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		tr, err := loadTracker(cmd.Context(), st)
		if err != nil {
			return fmt.Errorf("failed to load goals: %w", err)
		}
		d := tr.Dashboard(cfg.Dashboard.TopTypes)

		if len(d.Goals) == 0 {
			fmt.Println("No goals yet, add one with add-goal")
			return nil
		}

		bold := color.New(color.Bold).SprintFunc()
		faint := color.New(color.Faint).SprintFunc()
		for _, g := range d.Goals {
			fmt.Printf("%s %s\n", bold(g.Goal.Title), faint(fmt.Sprintf("(%s, since %s)", g.Goal.Period, utils.FormatDate(stats.WindowStart(g.Goal.Period, d.AsOf)))))
			fmt.Printf("  %d / %g %s\n", g.Progress.Current, g.Progress.Target, g.Goal.Unit)
			fmt.Printf("  %s complete\n\n", renderProgress(g.Progress.Percent, 30))
		}
		return nil
	},
}

var addGoalCmd = &cobra.Command{
	Use:   "add-goal",
	Short: "Add a weekly or monthly goal measured in minutes or calories",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		tr, err := loadTracker(cmd.Context(), st)
		if err != nil {
			return fmt.Errorf("failed to load goals: %w", err)
		}

		g, err := tr.AddGoal(tracker.GoalInput{
			Title:  goalTitle,
			Target: goalTarget,
			Unit:   goalUnit,
			Period: goalPeriod,
		})
		if err != nil {
			return err
		}

		if err := st.CreateGoal(cmd.Context(), g); err != nil {
			return err
		}

		fmt.Printf("✅ Added goal: %s (%g %s, %s)\n", g.Title, g.Target, g.Unit, g.Period)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(goalsCmd)
	rootCmd.AddCommand(addGoalCmd)

	addGoalCmd.Flags().StringVar(&goalTitle, "title", "", "Goal title")
	addGoalCmd.Flags().Float64Var(&goalTarget, "target", 0, "Target amount")
	addGoalCmd.Flags().StringVar(&goalUnit, "unit", "", "Unit: minutes or calories")
	addGoalCmd.Flags().StringVar(&goalPeriod, "period", "weekly", "Period: weekly or monthly")
	addGoalCmd.MarkFlagRequired("title")
	addGoalCmd.MarkFlagRequired("target")
	addGoalCmd.MarkFlagRequired("unit")
}
