// Package sqlite provides SQLite-based persistent storage for sprachlog.
// Uses WAL mode for crash-safe writes. The core computation engine never
// touches this package — the tracker service loads history from here,
// runs the pure functions, and writes results back.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)
)

// DB wraps a SQLite connection with WAL mode and migrations.
type DB struct {
	db *sql.DB
}

// Open creates or opens the SQLite database at dir/state.db.
// Enables WAL mode, foreign keys, and a 5-second busy timeout.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dir, "state.db")
	dsn := dbPath + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// SQLite is single-writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	d := &DB{db: db}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return d, nil
}

// Close cleanly shuts down the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Ping checks database connectivity.
func (d *DB) Ping() error {
	return d.db.Ping()
}

// migrate runs idempotent schema migrations.
func (d *DB) migrate() error {
	migrations := []string{
		// Per-day task lists, seeded from the plan template on first view
		`CREATE TABLE IF NOT EXISTS tasks (
			date              TEXT NOT NULL,
			id                TEXT NOT NULL,
			name              TEXT NOT NULL,
			emoji             TEXT NOT NULL DEFAULT '',
			duration          INTEGER NOT NULL DEFAULT 0,
			completed         BOOLEAN NOT NULL DEFAULT 0,
			description       TEXT NOT NULL DEFAULT '',
			notes             TEXT NOT NULL DEFAULT '',
			link              TEXT NOT NULL DEFAULT '',
			tags              TEXT NOT NULL DEFAULT '',
			pomodoro_sessions INTEGER NOT NULL DEFAULT 0,
			position          INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (date, id)
		)`,

		// Free-text note per day (streak-qualifying activity)
		`CREATE TABLE IF NOT EXISTS day_notes (
			date  TEXT PRIMARY KEY,
			notes TEXT NOT NULL
		)`,

		// One stats snapshot per day, replaced wholesale on change
		`CREATE TABLE IF NOT EXISTS daily_stats (
			date              TEXT PRIMARY KEY,
			tasks_completed   INTEGER NOT NULL,
			total_tasks       INTEGER NOT NULL,
			time_spent        INTEGER NOT NULL,
			pomodoro_sessions INTEGER NOT NULL,
			completion_rate   INTEGER NOT NULL
		)`,

		// Achievement catalog with unlock state (locked→unlocked, one-way)
		`CREATE TABLE IF NOT EXISTS achievements (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			description TEXT NOT NULL,
			icon        TEXT NOT NULL,
			metric      TEXT NOT NULL,
			threshold   REAL NOT NULL,
			unlocked    BOOLEAN NOT NULL DEFAULT 0,
			unlocked_at INTEGER
		)`,

		// Vocabulary bank
		`CREATE TABLE IF NOT EXISTS vocabulary (
			id          TEXT PRIMARY KEY,
			word        TEXT NOT NULL,
			translation TEXT NOT NULL,
			example     TEXT NOT NULL DEFAULT '',
			level       TEXT NOT NULL DEFAULT 'A1',
			category    TEXT NOT NULL DEFAULT '',
			source      TEXT NOT NULL DEFAULT '',
			date        TEXT NOT NULL,
			added_at    INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_vocab_date ON vocabulary(date)`,

		// Notification log (policy: daily cap, quiet hours)
		`CREATE TABLE IF NOT EXISTS notifications (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			type       TEXT NOT NULL,
			title      TEXT NOT NULL,
			body       TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			shown      BOOLEAN NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_notif_created ON notifications(created_at)`,

		// Key-value store for goals and misc settings
		`CREATE TABLE IF NOT EXISTS settings (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}

	for _, m := range migrations {
		if _, err := d.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}

// ResetAll wipes every user record. User-initiated only — nothing in the
// tracker deletes history on its own.
func (d *DB) ResetAll() error {
	tables := []string{"tasks", "day_notes", "daily_stats", "achievements", "vocabulary", "notifications", "settings"}
	for _, t := range tables {
		if _, err := d.db.Exec(`DELETE FROM ` + t); err != nil {
			return fmt.Errorf("reset %s: %w", t, err)
		}
	}
	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}
