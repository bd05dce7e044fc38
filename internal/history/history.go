// Package history persists experiment run records in a local sqlite database.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store wraps the run-history database with separate read/write pools
type Store struct {
	write *sql.DB
	read  *sql.DB
	path  string
}

// Open opens (creating if needed) the history database at dbPath
func Open(ctx context.Context, dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	// Connection string with pragmas
	connStr := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", dbPath)

	// Write pool: MUST be 1 connection only
	write, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open write connection: %w", err)
	}
	write.SetMaxOpenConns(1)
	write.SetMaxIdleConns(1)
	write.SetConnMaxIdleTime(time.Minute)

	// Read pool: can have multiple connections
	read, err := sql.Open("sqlite", connStr)
	if err != nil {
		write.Close()
		return nil, fmt.Errorf("open read connection: %w", err)
	}
	read.SetMaxOpenConns(4)
	read.SetMaxIdleConns(2)
	read.SetConnMaxIdleTime(time.Minute)

	s := &Store{
		write: write,
		read:  read,
		path:  dbPath,
	}

	if err := s.initSchema(ctx); err != nil {
		s.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return s, nil
}

// Close closes both database connections
func (s *Store) Close() error {
	writeErr := s.write.Close()
	readErr := s.read.Close()
	if writeErr != nil {
		return writeErr
	}
	return readErr
}

// initSchema creates the schema if it doesn't exist
func (s *Store) initSchema(ctx context.Context) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
    run_id TEXT PRIMARY KEY,
    config_name TEXT NOT NULL,
    config_path TEXT NOT NULL,
    executable TEXT NOT NULL,
    started_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    duration_ms INTEGER NOT NULL DEFAULT 0,
    exit_code INTEGER NOT NULL DEFAULT 0,
    status TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
CREATE INDEX IF NOT EXISTS idx_runs_config_name ON runs(config_name);
	`

	if _, err := s.write.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	return nil
}

// Run is one recorded experiment run
type Run struct {
	RunID      string    `json:"run_id"`
	ConfigName string    `json:"config_name"`
	ConfigPath string    `json:"config_path"`
	Executable string    `json:"executable"`
	StartedAt  time.Time `json:"started_at"`
	DurationMS int64     `json:"duration_ms"`
	ExitCode   int       `json:"exit_code"`
	Status     string    `json:"status"`
}

// Record inserts a run record, assigning a fresh RunID when empty
func (s *Store) Record(ctx context.Context, run *Run) error {
	if run.RunID == "" {
		run.RunID = uuid.NewString()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}

	query := `
INSERT INTO runs (run_id, config_name, config_path, executable, started_at, duration_ms, exit_code, status)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.write.ExecContext(ctx, query,
		run.RunID,
		run.ConfigName,
		run.ConfigPath,
		run.Executable,
		run.StartedAt,
		run.DurationMS,
		run.ExitCode,
		run.Status,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	return nil
}

// List returns recorded runs, newest first, at most limit rows (0 = all)
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	query := `
SELECT run_id, config_name, config_path, executable, started_at, duration_ms, exit_code, status
FROM runs ORDER BY started_at DESC, run_id
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.read.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		var run Run
		if err := rows.Scan(
			&run.RunID,
			&run.ConfigName,
			&run.ConfigPath,
			&run.Executable,
			&run.StartedAt,
			&run.DurationMS,
			&run.ExitCode,
			&run.Status,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// Latest returns the most recent run, or nil if the history is empty
func (s *Store) Latest(ctx context.Context) (*Run, error) {
	runs, err := s.List(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}
