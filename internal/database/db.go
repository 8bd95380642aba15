// Package database persists display preferences and background presets in
// a local sqlite file. Nothing timing-related is ever written: the
// stopwatch always starts from zero.
package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Database wraps the sqlite connection. Construct with Open.
type Database struct {
	DB *sql.DB
}

// Open initializes the database connection and schema at the given path.
func Open(ctx context.Context, path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	d := &Database{DB: db}
	if err := d.createTables(ctx); err != nil {
		db.Close()
		return nil, err
	}
	d.migrate(ctx)
	if err := d.seedBuiltinBackgrounds(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// Close releases the underlying connection.
func (d *Database) Close() error {
	return d.DB.Close()
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS backgrounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			color TEXT NOT NULL,
			star_color TEXT NOT NULL,
			builtin INTEGER DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
	}

	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("creating table: %q: %w", query, err)
		}
	}
	return nil
}

// migrate applies idempotent schema changes for databases created by
// earlier versions. ALTER failures mean the column already exists.
func (d *Database) migrate(ctx context.Context) {
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE backgrounds ADD COLUMN star_color TEXT NOT NULL DEFAULT '#ffffff'")
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE backgrounds ADD COLUMN builtin INTEGER DEFAULT 0")
}
