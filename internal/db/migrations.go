package db

import (
	"database/sql"
	"fmt"
)

type migration struct {
	version int
	name    string
	sql     string
}

// The record store persists whole-collection JSON snapshots, one row
// per logical collection key, read at startup and rewritten on every
// mutation. The schema is a single key-value table plus the migration
// bookkeeping.
var migrations = []migration{
	{
		version: 1,
		name:    "initial_schema",
		sql: `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS snapshots (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`,
	},
}

func ApplyMigrations(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	for _, m := range migrations {
		applied, err := migrationApplied(db, m.version)
		if err != nil {
			return err
		}
		if applied {
			continue
		}
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", m.version, err)
		}
		if _, err := tx.Exec(m.sql); err != nil {
			tx.Rollback()
			return fmt.Errorf("apply migration %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations(version, name) VALUES(?, ?)`, m.version, m.name); err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.version, err)
		}
	}
	return nil
}

func migrationApplied(db *sql.DB, version int) (bool, error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM schema_migrations WHERE version = ?`, version).Scan(&count); err != nil {
		return false, fmt.Errorf("check migration %d: %w", version, err)
	}
	return count > 0, nil
}

// GetSnapshot returns the stored JSON for key, or sql.ErrNoRows when
// the key has never been written.
func GetSnapshot(db *sql.DB, key string) (string, error) {
	var value string
	if err := db.QueryRow(`SELECT value FROM snapshots WHERE key = ?`, key).Scan(&value); err != nil {
		return "", err
	}
	return value, nil
}

// PutSnapshot rewrites the whole snapshot for key.
func PutSnapshot(db *sql.DB, key, value string) error {
	_, err := db.Exec(`
INSERT INTO snapshots(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET
  value=excluded.value,
  updated_at=excluded.updated_at
`, key, value)
	if err != nil {
		return fmt.Errorf("write snapshot %q: %w", key, err)
	}
	return nil
}

// DeleteSnapshot removes a stored collection entirely (bulk reset).
func DeleteSnapshot(db *sql.DB, key string) error {
	if _, err := db.Exec(`DELETE FROM snapshots WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete snapshot %q: %w", key, err)
	}
	return nil
}
