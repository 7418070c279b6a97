package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			kind TEXT NOT NULL DEFAULT 'checkbox',

			recurrence_kind TEXT NOT NULL DEFAULT 'daily',
			weekdays TEXT,
			day_of_month INTEGER,
			start_date TEXT NOT NULL,
			end_date TEXT,

			reminder_time TEXT,
			allowed_locations TEXT,
			excluded_locations TEXT,

			streak_enabled INTEGER DEFAULT 0,
			priority INTEGER DEFAULT 0,
			archived INTEGER DEFAULT 0,
			options TEXT,

			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		// One row per (task, day); the id doubles as the uniqueness key.
		`CREATE TABLE IF NOT EXISTS records (
			id TEXT PRIMARY KEY,
			task_id TEXT NOT NULL,
			date TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			value TEXT,
			completed_at DATETIME,
			FOREIGN KEY(task_id) REFERENCES tasks(id)
		);`,
		`CREATE TABLE IF NOT EXISTS wellness (
			date TEXT PRIMARY KEY,
			water_glasses INTEGER DEFAULT 0,
			sleep_hours REAL DEFAULT 0,
			weight REAL,
			note TEXT,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS finance_entries (
			id TEXT PRIMARY KEY,
			date TEXT NOT NULL,
			kind TEXT NOT NULL,
			amount_cents INTEGER NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			note TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_records_date ON records(date);`,
		`CREATE INDEX IF NOT EXISTS idx_records_task_id ON records(task_id);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_archived ON tasks(archived);`,
		`CREATE INDEX IF NOT EXISTS idx_finance_entries_date ON finance_entries(date);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
