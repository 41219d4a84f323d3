package vitality

import (
	"github.com/spf13/cobra"

	"github.com/sk21munashe/vitality-daily-sub000/internal/config"
	"github.com/sk21munashe/vitality-daily-sub000/internal/plan"
	"github.com/sk21munashe/vitality-daily-sub000/internal/server"
	"github.com/sk21munashe/vitality-daily-sub000/internal/tracker"
	"github.com/sk21munashe/vitality-daily-sub000/internal/vision"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API for the web app",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return withTracker(func(t *tracker.Tracker) error {
			coach := &plan.Client{BaseURL: cfg.PlanBaseURL, APIKey: cfg.PlanAPIKey}
			analyzer := &vision.Client{BaseURL: cfg.VisionBaseURL, APIKey: cfg.VisionAPIKey}
			return server.New(t, coach, analyzer, cfg.Port).Start()
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
