package vitality

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sk21munashe/vitality-daily-sub000/internal/model"
	"github.com/sk21munashe/vitality-daily-sub000/internal/plan"
	"github.com/sk21munashe/vitality-daily-sub000/internal/tracker"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Calorie targets and the AI meal plan",
}

var (
	planAge      int
	planGender   string
	planHeight   float64
	planWeight   float64
	planActivity string
	planGoal     string
)

var planCalcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate BMR, TDEE, and macro targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(t *tracker.Tracker) error {
			health := model.HealthProfile{
				Age:           planAge,
				Gender:        planGender,
				HeightCm:      planHeight,
				WeightKg:      planWeight,
				ActivityLevel: planActivity,
				Goal:          planGoal,
			}
			calc, err := plan.Calculate(health)
			if err != nil {
				return err
			}
			t.SaveHealthProfile(health)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "BMR:      %d kcal\n", calc.BMR)
			fmt.Fprintf(out, "TDEE:     %d kcal\n", calc.TDEE)
			fmt.Fprintf(out, "Target:   %d kcal/day\n", calc.DailyCalories)
			fmt.Fprintf(out, "Macros:   %dg protein, %dg carbs, %dg fat\n", calc.Macros.ProteinG, calc.Macros.CarbsG, calc.Macros.FatG)
			return nil
		})
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the saved meal plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(t *tracker.Tracker) error {
			p := t.Plan()
			if p == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No plan saved. Generate one with the serve API or `vitality plan calc`.")
				return nil
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Daily target: %d kcal (%dP/%dC/%dF)\n", p.DailyCalories, p.Macros.ProteinG, p.Macros.CarbsG, p.Macros.FatG)
			for _, day := range p.WeeklyPlan {
				fmt.Fprintf(out, "%s: %s / %s / %s\n", day.Day, day.Meals.Breakfast, day.Meals.Lunch, day.Meals.Dinner)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.AddCommand(planCalcCmd, planShowCmd)

	planCalcCmd.Flags().IntVar(&planAge, "age", 0, "Age in years")
	planCalcCmd.Flags().StringVar(&planGender, "gender", "", "Gender (male|female)")
	planCalcCmd.Flags().Float64Var(&planHeight, "height", 0, "Height in cm")
	planCalcCmd.Flags().Float64Var(&planWeight, "weight", 0, "Weight in kg")
	planCalcCmd.Flags().StringVar(&planActivity, "activity", "moderate", "Activity level")
	planCalcCmd.Flags().StringVar(&planGoal, "goal", "maintain", "Goal (lose|maintain|gain)")
}
