package db

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS records (
		kind       TEXT    NOT NULL,
		id         INTEGER NOT NULL CHECK(id > 0),
		position   INTEGER NOT NULL,
		body       TEXT    NOT NULL,
		created_at TEXT    NOT NULL,
		updated_at TEXT    NOT NULL,
		PRIMARY KEY (kind, id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_records_kind_position ON records(kind, position)`,

	`CREATE TABLE IF NOT EXISTS record_sequences (
		kind    TEXT PRIMARY KEY,
		next_id INTEGER NOT NULL CHECK(next_id > 0)
	)`,

	`CREATE TABLE IF NOT EXISTS profile (
		id         INTEGER PRIMARY KEY CHECK(id = 1),
		body       TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}

// Migrate applies every schema statement. Statements are idempotent, so the
// full list runs on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
