// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for sessions and morning orthostatic tests.
package storage

// initSchema creates or updates the database schema. The raw HR and RR
// series plus the derived stat structs are stored as JSON columns; they
// are opaque to the storage layer.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		start_time DATETIME NOT NULL,
		end_time DATETIME NOT NULL,
		hr_data TEXT NOT NULL,
		rr_intervals TEXT NOT NULL,
		stats TEXT NOT NULL,
		advanced_stats TEXT NOT NULL,
		notes TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS morning_tests (
		id TEXT PRIMARY KEY,
		timestamp DATETIME NOT NULL,
		lying_avg_hr REAL NOT NULL,
		standing_avg_hr REAL NOT NULL,
		hr_delta REAL NOT NULL,
		lying_rmssd REAL NOT NULL,
		standing_rmssd REAL NOT NULL,
		readiness_score INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_start ON sessions(start_time DESC);
	CREATE INDEX IF NOT EXISTS idx_morning_tests_timestamp ON morning_tests(timestamp DESC);
	`

	_, err := d.db.Exec(schema)
	return err
}
