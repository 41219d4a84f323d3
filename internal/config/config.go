package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/sk21munashe/vitality-daily-sub000/internal/app"
)

type Config struct {
	Port         string
	DatabasePath string
	StorePrefix  string

	// Remote sync is optional; without a user id the app runs
	// local-only.
	SyncBaseURL string
	SyncToken   string
	SyncUserID  string

	PlanBaseURL   string
	PlanAPIKey    string
	VisionBaseURL string
	VisionAPIKey  string
}

// Load reads configuration from the environment, after loading a .env
// file when one exists.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		DatabasePath:  os.Getenv("VITALITY_DB"),
		StorePrefix:   getEnv("VITALITY_STORE_PREFIX", "vitality:"),
		SyncBaseURL:   os.Getenv("VITALITY_SYNC_URL"),
		SyncToken:     os.Getenv("VITALITY_SYNC_TOKEN"),
		SyncUserID:    os.Getenv("VITALITY_SYNC_USER"),
		PlanBaseURL:   os.Getenv("VITALITY_PLAN_URL"),
		PlanAPIKey:    os.Getenv("VITALITY_PLAN_API_KEY"),
		VisionBaseURL: os.Getenv("VITALITY_VISION_URL"),
		VisionAPIKey:  os.Getenv("VITALITY_VISION_API_KEY"),
	}

	if cfg.DatabasePath == "" {
		path, err := app.DefaultDBPath()
		if err != nil {
			return Config{}, fmt.Errorf("resolve database path: %w", err)
		}
		cfg.DatabasePath = path
	}
	if cfg.SyncUserID != "" && cfg.SyncBaseURL == "" {
		return Config{}, fmt.Errorf("VITALITY_SYNC_URL is required when VITALITY_SYNC_USER is set")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
