package vitality

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sk21munashe/vitality-daily-sub000/internal/model"
	"github.com/sk21munashe/vitality-daily-sub000/internal/tracker"
)

var habitCmd = &cobra.Command{
	Use:   "habit",
	Short: "Manage daily habits",
}

var (
	habitName   string
	habitIcon   string
	habitColor  string
	habitTarget int
	habitUnit   string
)

var habitAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a habit",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(t *tracker.Tracker) error {
			h, err := t.CreateHabit(habitName, habitIcon, model.HabitColor(habitColor), habitTarget, habitUnit)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created habit %q (%s)\n", h.Name, h.ID)
			return nil
		})
	},
}

var habitListCmd = &cobra.Command{
	Use:   "list",
	Short: "List habits with today's progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(t *tracker.Tracker) error {
			habits := t.Store().Habits()
			if len(habits) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No habits yet. Add one with `vitality habit add`.")
				return nil
			}
			today := t.Store().Today()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTODAY\tTARGET")
			for _, h := range habits {
				count := t.Store().HabitCountOn(h.ID, today)
				fmt.Fprintf(w, "%s\t%s\t%d\t%d %s\n", h.ID, h.Name, count, h.TargetCount, h.Unit)
			}
			return w.Flush()
		})
	},
}

var habitLogCount int

var habitLogCmd = &cobra.Command{
	Use:   "log <habit-id>",
	Short: "Record habit completions for today",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(t *tracker.Tracker) error {
			log, result, err := t.LogHabit(args[0], habitLogCount)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Habit logged, count is now %d (+%d pts)\n", log.Count, result.PointsAwarded)
			announce(cmd, result)
			return nil
		})
	},
}

var habitDeleteCmd = &cobra.Command{
	Use:   "delete <habit-id>",
	Short: "Delete a habit and its logs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(t *tracker.Tracker) error {
			if err := t.DeleteHabit(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Habit deleted")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(habitCmd)
	habitCmd.AddCommand(habitAddCmd, habitListCmd, habitLogCmd, habitDeleteCmd)

	habitAddCmd.Flags().StringVar(&habitName, "name", "", "Habit name")
	habitAddCmd.Flags().StringVar(&habitIcon, "icon", "", "Icon")
	habitAddCmd.Flags().StringVar(&habitColor, "color", "blue", "Color")
	habitAddCmd.Flags().IntVar(&habitTarget, "target", 1, "Completions per day")
	habitAddCmd.Flags().StringVar(&habitUnit, "unit", "times", "Unit label")

	habitLogCmd.Flags().IntVar(&habitLogCount, "count", 1, "Completions to add")
}
