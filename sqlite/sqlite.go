// Package sqlite provides SQLite-based storage for captured profiles.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection, applies connection pragmas and
// creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// One connection serializes writes from concurrent capture workers.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	for _, pragma := range db.pragmas() {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	db.db = conn
	return nil
}

// pragmas returns the statements run on every new connection. WAL is not
// available for in-memory databases.
func (db *DB) pragmas() []string {
	pragmas := []string{"PRAGMA busy_timeout = 5000"}
	if db.path != ":memory:" {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}
	return pragmas
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// schema holds one row per capture. The profile is a JSON document; name,
// source URL and capture time are copied out of it for filtering and
// ordering.
const schema = `
CREATE TABLE IF NOT EXISTS captures (
	id TEXT PRIMARY KEY,
	source_url TEXT NOT NULL,
	name TEXT NOT NULL DEFAULT '',
	content_hash TEXT NOT NULL DEFAULT '',
	failed_sections TEXT NOT NULL DEFAULT 'null',
	profile TEXT NOT NULL,
	captured_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_captures_source_url ON captures(source_url);
CREATE INDEX IF NOT EXISTS idx_captures_name ON captures(name);
CREATE INDEX IF NOT EXISTS idx_captures_captured_at ON captures(captured_at);
`
