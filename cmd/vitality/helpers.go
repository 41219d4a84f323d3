package vitality

import (
	"context"
	"strings"

	"github.com/sk21munashe/vitality-daily-sub000/internal/app"
	"github.com/sk21munashe/vitality-daily-sub000/internal/config"
	"github.com/sk21munashe/vitality-daily-sub000/internal/db"
	"github.com/sk21munashe/vitality-daily-sub000/internal/store"
	"github.com/sk21munashe/vitality-daily-sub000/internal/syncer"
	"github.com/sk21munashe/vitality-daily-sub000/internal/tracker"
)

func resolveDBPath(cfg config.Config) string {
	if strings.TrimSpace(dbPath) != "" {
		return dbPath
	}
	return cfg.DatabasePath
}

func withTracker(run func(*tracker.Tracker) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	path := resolveDBPath(cfg)
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	s, err := store.New(sqldb, cfg.StorePrefix)
	if err != nil {
		return err
	}

	opts := []tracker.Option{}
	if cfg.SyncUserID != "" {
		remote := &syncer.Client{Token: cfg.SyncToken, BaseURL: cfg.SyncBaseURL}
		opts = append(opts, tracker.WithRemote(remote, cfg.SyncUserID))
	}
	t := tracker.New(s, opts...)
	t.StartSession(context.Background())
	return run(t)
}
