package vitality

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sk21munashe/vitality-daily-sub000/internal/model"
	"github.com/sk21munashe/vitality-daily-sub000/internal/tracker"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record water, meals, workouts, sleep, or weight",
}

var waterAmount int

var logWaterCmd = &cobra.Command{
	Use:   "water",
	Short: "Log water in milliliters",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(t *tracker.Tracker) error {
			record, result, err := t.LogWater(waterAmount)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %d ml at %s (+%d pts)\n", record.AmountML, record.Time, result.PointsAwarded)
			announce(cmd, result)
			return nil
		})
	},
}

var (
	foodMeal     string
	foodName     string
	foodCalories int
	foodProtein  int
	foodCarbs    int
	foodFat      int
)

var logFoodCmd = &cobra.Command{
	Use:   "food",
	Short: "Log a meal or snack",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(t *tracker.Tracker) error {
			item := model.FoodItem{
				Name:     foodName,
				Calories: foodCalories,
				ProteinG: foodProtein,
				CarbsG:   foodCarbs,
				FatG:     foodFat,
			}
			record, result, err := t.LogFood(model.MealType(foodMeal), item)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%d kcal) for %s (+%d pts)\n", record.FoodItem.Name, record.FoodItem.Calories, record.MealType, result.PointsAwarded)
			announce(cmd, result)
			return nil
		})
	},
}

var (
	fitnessActivity string
	fitnessDuration int
	fitnessBurned   int
	fitnessNotes    string
)

var logFitnessCmd = &cobra.Command{
	Use:   "fitness",
	Short: "Log a workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(t *tracker.Tracker) error {
			record, result, err := t.LogFitness(fitnessActivity, fitnessDuration, fitnessBurned, fitnessNotes)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %d min of %s (+%d pts)\n", record.DurationMin, record.ActivityType, result.PointsAwarded)
			announce(cmd, result)
			return nil
		})
	},
}

var (
	sleepBedtime string
	sleepWake    string
	sleepQuality int
)

var logSleepCmd = &cobra.Command{
	Use:   "sleep",
	Short: "Log last night's sleep",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(t *tracker.Tracker) error {
			record, err := t.LogSleep(sleepBedtime, sleepWake, sleepQuality)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %dh%02dm of sleep (quality %d/5)\n", record.DurationMin/60, record.DurationMin%60, record.Quality)
			return nil
		})
	},
}

var (
	weightKg    float64
	weightNotes string
)

var logWeightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Log a weigh-in in kilograms",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(t *tracker.Tracker) error {
			record, err := t.LogWeight(weightKg, weightNotes)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %.1f kg on %s\n", record.WeightKg, record.Date)
			return nil
		})
	},
}

func announce(cmd *cobra.Command, result tracker.LogResult) {
	if result.BonusAwarded {
		fmt.Fprintln(cmd.OutOrStdout(), "All goals met today, +50 bonus points!")
	}
	for _, id := range result.NewAchievements {
		fmt.Fprintf(cmd.OutOrStdout(), "Achievement unlocked: %s\n", id)
	}
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logWaterCmd, logFoodCmd, logFitnessCmd, logSleepCmd, logWeightCmd)

	logWaterCmd.Flags().IntVar(&waterAmount, "amount", 250, "Amount in ml")

	logFoodCmd.Flags().StringVar(&foodMeal, "meal", "snack", "Meal type (breakfast|lunch|dinner|snack)")
	logFoodCmd.Flags().StringVar(&foodName, "name", "", "Food name")
	logFoodCmd.Flags().IntVar(&foodCalories, "calories", 0, "Calories")
	logFoodCmd.Flags().IntVar(&foodProtein, "protein", 0, "Protein in grams")
	logFoodCmd.Flags().IntVar(&foodCarbs, "carbs", 0, "Carbs in grams")
	logFoodCmd.Flags().IntVar(&foodFat, "fat", 0, "Fat in grams")

	logFitnessCmd.Flags().StringVar(&fitnessActivity, "activity", "", "Activity type")
	logFitnessCmd.Flags().IntVar(&fitnessDuration, "duration", 0, "Duration in minutes")
	logFitnessCmd.Flags().IntVar(&fitnessBurned, "calories", 0, "Calories burned")
	logFitnessCmd.Flags().StringVar(&fitnessNotes, "notes", "", "Notes")

	logSleepCmd.Flags().StringVar(&sleepBedtime, "bedtime", "", "Bedtime (HH:MM)")
	logSleepCmd.Flags().StringVar(&sleepWake, "wake", "", "Wake time (HH:MM)")
	logSleepCmd.Flags().IntVar(&sleepQuality, "quality", 3, "Quality 1-5")

	logWeightCmd.Flags().Float64Var(&weightKg, "kg", 0, "Weight in kilograms")
	logWeightCmd.Flags().StringVar(&weightNotes, "notes", "", "Notes")
}
