// Package benchstore persists benchmark runs to a SQLite database so results
// from different call paths and machines can be compared after the fact.
package benchstore

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ffi-playground/numffi/internal/benchrun"
)

//go:embed schema.sql
var schemaSQL string

// startedAtLayout is fixed-width so lexicographic text order matches
// chronological order. RFC3339Nano trims trailing fractional zeros, which
// makes "...00.1Z" sort after "...00.15Z" and breaks ORDER BY started_at.
const startedAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrNotFound is returned when a requested run does not exist.
var ErrNotFound = errors.New("benchstore: run not found")

// Store wraps a SQLite database holding benchmark run records.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path and applies the
// schema. The database uses WAL mode so readers are not blocked by a writer,
// and a busy timeout to ride out lock contention. Safe to call repeatedly on
// the same path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	// SQLite supports one writer at a time; a single connection avoids
	// SQLITE_BUSY errors entirely.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", p, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveRun inserts one benchmark run. Re-saving a run ID is a no-op, so
// writes are idempotent.
func (s *Store) SaveRun(ctx context.Context, r *benchrun.Results) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs
		(id, started_at, op, path, workers, duration_ns, total_ops, ops_per_second, latency_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		r.RunID,
		r.StartedAt.UTC().Format(startedAtLayout),
		r.Op,
		r.Path,
		r.Workers,
		r.ElapsedTime.Nanoseconds(),
		r.TotalOps,
		r.OpsPerSecond,
		r.LatencyNs,
	)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	return nil
}

// GetRun fetches a single run by ID. Returns ErrNotFound when absent.
func (s *Store) GetRun(ctx context.Context, id string) (*benchrun.Results, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, started_at, op, path, workers, duration_ns, total_ops, ops_per_second, latency_ns
		FROM runs WHERE id = ?
	`, id)

	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	return r, nil
}

// ListRuns returns up to limit runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]*benchrun.Results, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, started_at, op, path, workers, duration_ns, total_ops, ops_per_second, latency_ns
		FROM runs ORDER BY started_at DESC, id ASC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []*benchrun.Results
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("list runs: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (*benchrun.Results, error) {
	var (
		r         benchrun.Results
		startedAt string
		elapsedNs int64
	)
	err := sc.Scan(
		&r.RunID,
		&startedAt,
		&r.Op,
		&r.Path,
		&r.Workers,
		&elapsedNs,
		&r.TotalOps,
		&r.OpsPerSecond,
		&r.LatencyNs,
	)
	if err != nil {
		return nil, err
	}

	r.ElapsedTime = time.Duration(elapsedNs)
	r.StartedAt, err = time.Parse(startedAtLayout, startedAt)
	if err != nil {
		return nil, fmt.Errorf("parse started_at: %w", err)
	}
	return &r, nil
}
