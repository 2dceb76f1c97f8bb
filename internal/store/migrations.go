package store

import "database/sql"

// Migrate runs all database migrations. Exported so tests can apply the
// schema to in-memory databases.
func Migrate(db *sql.DB) error {
	migrations := []string{
		// Raw logged events (food, exercise, water, weight)
		`CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			kind TEXT NOT NULL CHECK (kind IN ('food', 'exercise', 'water', 'weight')),
			logged_at TEXT NOT NULL,
			value REAL NOT NULL,
			note TEXT DEFAULT '',
			created_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_events_logged_at ON events(logged_at)`,
		`CREATE INDEX IF NOT EXISTS idx_events_kind ON events(kind, logged_at)`,

		// User profile (singleton row)
		`CREATE TABLE IF NOT EXISTS profiles (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			sex TEXT NOT NULL DEFAULT '',
			age INTEGER NOT NULL DEFAULT 0,
			height_cm REAL NOT NULL DEFAULT 0,
			weight_kg REAL NOT NULL DEFAULT 0,
			activity_level TEXT NOT NULL DEFAULT '',
			sustainability_mode INTEGER NOT NULL DEFAULT 0,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}
	return nil
}
