package vitality

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "vitality",
	Short: "vitality tracks water, meals, workouts, sleep, and weight",
	Long:  "vitality is a local-first wellness tracker with goals, streaks, achievements, and an AI-generated health plan.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
