package state

import (
	"database/sql"
)

const currentSchemaVersion = 2

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS panel_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			active_panel TEXT NOT NULL,
			selected_id TEXT
		);

		CREATE TABLE IF NOT EXISTS ui_values (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		);
	`)
	if err != nil {
		return err
	}

	// Set initial version if not exists
	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	if err != nil {
		return err
	}

	// Migration: add selected_id column if missing
	_, _ = db.Exec(`ALTER TABLE panel_state ADD COLUMN selected_id TEXT`)

	return nil
}
