package vitality

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sk21munashe/vitality-daily-sub000/internal/tracker"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "View or change daily goals",
}

var goalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(t *tracker.Tracker) error {
			g := t.Profile().Goals
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Water:    %d ml\n", g.WaterGoalML)
			fmt.Fprintf(out, "Calories: %d kcal\n", g.CalorieGoal)
			fmt.Fprintf(out, "Fitness:  %d min\n", g.FitnessGoalMin)
			if g.Macros != nil {
				fmt.Fprintf(out, "Macros:   %dP / %dC / %dF\n", g.Macros.ProteinG, g.Macros.CarbsG, g.Macros.FatG)
			}
			return nil
		})
	},
}

var (
	goalWater    int
	goalCalories int
	goalFitness  int
)

var goalSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update daily goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(t *tracker.Tracker) error {
			var patch tracker.GoalsPatch
			if cmd.Flags().Changed("water") {
				patch.WaterGoalML = &goalWater
			}
			if cmd.Flags().Changed("calories") {
				patch.CalorieGoal = &goalCalories
			}
			if cmd.Flags().Changed("fitness") {
				patch.FitnessGoalMin = &goalFitness
			}
			g, err := t.UpdateGoals(patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Goals: %d ml water, %d kcal, %d min fitness\n", g.WaterGoalML, g.CalorieGoal, g.FitnessGoalMin)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalShowCmd, goalSetCmd)

	goalSetCmd.Flags().IntVar(&goalWater, "water", 0, "Water goal in ml")
	goalSetCmd.Flags().IntVar(&goalCalories, "calories", 0, "Calorie goal")
	goalSetCmd.Flags().IntVar(&goalFitness, "fitness", 0, "Fitness goal in minutes")
}
