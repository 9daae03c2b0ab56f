package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/vigor/internal/tips"
	"github.com/spf13/cobra"
)

var tipCategory string

var categoryColors = map[string]color.Attribute{
	"Nutrition": color.FgGreen,
	"Training":  color.FgBlue,
	"Recovery":  color.FgMagenta,
	"Safety":    color.FgRed,
}

var tipsCmd = &cobra.Command{
	Use:   "tips",
	Short: "Show health tips and workout suggestions",
	RunE: func(cmd *cobra.Command, args []string) error {
		list := tips.HealthTips(tipCategory)
		if len(list) == 0 {
			return fmt.Errorf("unknown category %q, choose one of: %s", tipCategory, strings.Join(tips.Categories(), ", "))
		}

		printSection("Health tips:")
		for _, tip := range list {
			attr, ok := categoryColors[tip.Category]
			if !ok {
				attr = color.FgWhite
			}
			fmt.Printf("  %s %s\n", color.New(color.Bold).Sprint(tip.Title), color.New(attr).Sprintf("[%s]", tip.Category))
			fmt.Printf("    %s\n", tip.Content)
		}

		if tipCategory != "" {
			return nil
		}

		fmt.Println()
		printSection("Workout suggestions:")
		for _, s := range tips.Suggestions() {
			fmt.Printf("  %s (%s, %s)\n", color.New(color.Bold).Sprint(s.Name), s.Duration, s.Difficulty)
			fmt.Printf("    %s\n", s.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tipsCmd)
	tipsCmd.Flags().StringVar(&tipCategory, "category", "", "Only show tips in this category")
}
