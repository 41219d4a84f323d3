package vitality

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sk21munashe/vitality-daily-sub000/internal/tracker"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(t *tracker.Tracker) error {
			d := t.Dashboard()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", d.Date)
			fmt.Fprintf(out, "Water:    %.0f / %.0f ml (%.0f%%)\n", d.Water.Current, d.Water.Goal, d.Water.Percent)
			fmt.Fprintf(out, "Calories: %.0f / %.0f kcal (%.0f%%)\n", d.Calories.Current, d.Calories.Goal, d.Calories.Percent)
			fmt.Fprintf(out, "Fitness:  %.0f / %.0f min (%.0f%%)\n", d.Fitness.Current, d.Fitness.Goal, d.Fitness.Percent)
			fmt.Fprintf(out, "Meals:    %d\n", d.MealsLogged)
			if d.SleepHours > 0 {
				fmt.Fprintf(out, "Sleep:    %.1f h\n", d.SleepHours)
			}
			fmt.Fprintf(out, "Streak:   %d days, %d points\n", d.Streak, d.TotalPoints)
			if d.DailyComplete {
				fmt.Fprintln(out, "All daily goals met!")
			}
			return nil
		})
	},
}

var chartsMetric string
var chartsDays int

var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Show a daily trend for a metric",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(t *tracker.Tracker) error {
			buckets, err := t.ChartData(chartsMetric, chartsDays)
			if err != nil {
				return err
			}
			for _, b := range buckets {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %.1f\n", b.Label, b.Value)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd, chartsCmd)

	chartsCmd.Flags().StringVar(&chartsMetric, "metric", "water", "Metric (water|calories|fitness|sleep|weight)")
	chartsCmd.Flags().IntVar(&chartsDays, "days", 7, "Window (7|30|365)")
}
