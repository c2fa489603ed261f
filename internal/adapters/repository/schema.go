package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		color      TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS countdowns (
		id            TEXT PRIMARY KEY,
		title         TEXT NOT NULL,
		description   TEXT,
		target_date   TIMESTAMPTZ NOT NULL,
		notify_before INTEGER,
		is_timer      BOOLEAN NOT NULL DEFAULT FALSE,
		is_completed  BOOLEAN NOT NULL DEFAULT FALSE,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_countdowns_pending ON countdowns (target_date) WHERE is_completed = FALSE`,
	`CREATE TABLE IF NOT EXISTS habits (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		description TEXT,
		frequency   TEXT NOT NULL,
		custom_days TEXT,
		category_id TEXT,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_habits_category ON habits (category_id)`,
	`CREATE TABLE IF NOT EXISTS habit_logs (
		id           TEXT PRIMARY KEY,
		habit_id     TEXT NOT NULL REFERENCES habits (id) ON DELETE CASCADE,
		completed_at TIMESTAMPTZ NOT NULL,
		completed_on TEXT NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_habit_logs_day ON habit_logs (habit_id, completed_on)`,
	`CREATE INDEX IF NOT EXISTS idx_habit_logs_completed_at ON habit_logs (habit_id, completed_at)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		color      TEXT NOT NULL,
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS countdowns (
		id            TEXT PRIMARY KEY,
		title         TEXT NOT NULL,
		description   TEXT,
		target_date   DATETIME NOT NULL,
		notify_before INTEGER,
		is_timer      BOOLEAN NOT NULL DEFAULT 0,
		is_completed  BOOLEAN NOT NULL DEFAULT 0,
		created_at    DATETIME NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_countdowns_pending ON countdowns (target_date) WHERE is_completed = 0`,
	`CREATE TABLE IF NOT EXISTS habits (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		description TEXT,
		frequency   TEXT NOT NULL,
		custom_days TEXT,
		category_id TEXT,
		created_at  DATETIME NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_habits_category ON habits (category_id)`,
	`CREATE TABLE IF NOT EXISTS habit_logs (
		id           TEXT PRIMARY KEY,
		habit_id     TEXT NOT NULL REFERENCES habits (id) ON DELETE CASCADE,
		completed_at DATETIME NOT NULL,
		completed_on TEXT NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_habit_logs_day ON habit_logs (habit_id, completed_on)`,
	`CREATE INDEX IF NOT EXISTS idx_habit_logs_completed_at ON habit_logs (habit_id, completed_at)`,
}

// CreateSchema is idempotent and runs in a single transaction.
func CreateSchema(ctx context.Context, db *sqlx.DB) error {
	stmts := postgresSchema
	if db.DriverName() == "sqlite" {
		stmts = sqliteSchema
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting schema transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	return tx.Commit()
}
