// Package history persists completed run summaries in a local SQLite
// database so `heicvert history` can list past conversions.
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

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id          TEXT PRIMARY KEY,
    started_at  TEXT NOT NULL,
    finished_at TEXT NOT NULL,
    input_dir   TEXT NOT NULL,
    output_dir  TEXT NOT NULL,
    format      TEXT NOT NULL,
    quality     INTEGER NOT NULL,
    workers     INTEGER NOT NULL,
    converted   INTEGER NOT NULL,
    skipped     INTEGER NOT NULL,
    failed      INTEGER NOT NULL,
    duration_ms INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
`

// Record is one completed conversion run.
type Record struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	InputDir   string
	OutputDir  string
	Format     string
	Quality    int
	Workers    int
	Converted  int
	Skipped    int
	Failed     int
	Duration   time.Duration
}

// Store manages run-history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database at path and applies
// the schema.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply history schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the on-disk location backing the store.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Append inserts a run record. A zero ID is assigned a fresh UUID; the
// assigned ID is returned.
func (s *Store) Append(ctx context.Context, rec Record) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO runs (
            id, started_at, finished_at, input_dir, output_dir,
            format, quality, workers, converted, skipped, failed, duration_ms
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.StartedAt.UTC().Format(time.RFC3339Nano),
		rec.FinishedAt.UTC().Format(time.RFC3339Nano),
		rec.InputDir,
		rec.OutputDir,
		rec.Format,
		rec.Quality,
		rec.Workers,
		rec.Converted,
		rec.Skipped,
		rec.Failed,
		rec.Duration.Milliseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("insert run record: %w", err)
	}
	return rec.ID, nil
}

// Recent returns up to limit records, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, started_at, finished_at, input_dir, output_dir,
                format, quality, workers, converted, skipped, failed, duration_ms
         FROM runs ORDER BY started_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query run records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			rec        Record
			startedAt  string
			finishedAt string
			durationMS int64
		)
		if err := rows.Scan(
			&rec.ID, &startedAt, &finishedAt, &rec.InputDir, &rec.OutputDir,
			&rec.Format, &rec.Quality, &rec.Workers,
			&rec.Converted, &rec.Skipped, &rec.Failed, &durationMS,
		); err != nil {
			return nil, fmt.Errorf("scan run record: %w", err)
		}
		if rec.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
			return nil, fmt.Errorf("parse started_at %q: %w", startedAt, err)
		}
		if rec.FinishedAt, err = time.Parse(time.RFC3339Nano, finishedAt); err != nil {
			return nil, fmt.Errorf("parse finished_at %q: %w", finishedAt, err)
		}
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate run records: %w", err)
	}
	return records, nil
}
