package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/tsawler/pdfoutline/batch"
)

// ErrRunNotFound is returned for unknown run ids
var ErrRunNotFound = errors.New("run not found")

// timeLayout is the text form of timestamps in the database. The fixed
// width keeps text order equal to time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Ledger records batch runs in a SQLite database
type Ledger struct {
	db   *sql.DB
	path string
}

var _ batch.Recorder = (*Ledger)(nil)

// Run is one batch invocation
type Run struct {
	ID          string
	StartedAt   time.Time
	FinishedAt  time.Time // zero while the run is in progress
	Source      string
	Destination string
	Documents   int
	Failed      int
}

// Finished reports whether the run completed
func (r Run) Finished() bool {
	return !r.FinishedAt.IsZero()
}

// Document is the recorded outcome of one file
type Document struct {
	RunID    string
	File     string
	Status   batch.Status
	Title    string
	Entries  int
	Override string
	Warnings int
	Error    string
	Duration time.Duration
}

// Open opens or creates the ledger at path, creating parent directories.
func Open(path string) (*Ledger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?mode=rwc&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	l := &Ledger{db: db, path: path}
	if err := l.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return l, nil
}

// Path returns the database file path
func (l *Ledger) Path() string {
	return l.path
}

// Close closes the database connection.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (l *Ledger) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at TEXT NOT NULL,
		finished_at TEXT,
		source TEXT NOT NULL,
		destination TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS documents (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		file TEXT NOT NULL,
		status TEXT NOT NULL,
		title TEXT,
		entries INTEGER DEFAULT 0,
		override TEXT,
		warnings INTEGER DEFAULT 0,
		error TEXT,
		duration_ms INTEGER DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_documents_run ON documents(run_id);
	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
	`

	_, err := l.db.ExecContext(context.Background(), schema)
	return err
}

// BeginRun starts a run and returns its id
func (l *Ledger) BeginRun(ctx context.Context, source, destination string) (string, error) {
	id := uuid.NewString()
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, source, destination) VALUES (?, ?, ?, ?)`,
		id, time.Now().UTC().Format(timeLayout), source, destination,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}
	return id, nil
}

// Record stores the outcome of one file
func (l *Ledger) Record(ctx context.Context, runID string, outcome batch.FileOutcome) error {
	var errText string
	if outcome.Err != nil {
		errText = outcome.Err.Error()
	}

	_, err := l.db.ExecContext(ctx,
		`INSERT INTO documents (run_id, file, status, title, entries, override, warnings, error, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, outcome.File, string(outcome.Status), outcome.Title, outcome.Entries,
		outcome.Override, len(outcome.Warnings), errText, outcome.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert document %s: %w", outcome.File, err)
	}
	return nil
}

// FinishRun marks a run as complete
func (l *Ledger) FinishRun(ctx context.Context, runID string) error {
	res, err := l.db.ExecContext(ctx,
		`UPDATE runs SET finished_at = ? WHERE id = ?`,
		time.Now().UTC().Format(timeLayout), runID,
	)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return nil
}

const runColumns = `
	SELECT r.id, r.started_at, COALESCE(r.finished_at, ''), r.source, r.destination,
		COUNT(d.id), COALESCE(SUM(CASE WHEN d.status = 'failed' THEN 1 ELSE 0 END), 0)
	FROM runs r LEFT JOIN documents d ON d.run_id = r.id`

// Runs returns the most recent runs, newest first. A limit of zero or less
// returns every run.
func (l *Ledger) Runs(ctx context.Context, limit int) ([]Run, error) {
	query := runColumns + ` GROUP BY r.id ORDER BY r.started_at DESC, r.rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRun returns one run by id
func (l *Ledger) GetRun(ctx context.Context, runID string) (Run, error) {
	row := l.db.QueryRowContext(ctx, runColumns+` WHERE r.id = ? GROUP BY r.id`, runID)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return run, err
}

// Documents returns the recorded documents of a run in the order they finished
func (l *Ledger) Documents(ctx context.Context, runID string) ([]Document, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT run_id, file, status, COALESCE(title, ''), entries, COALESCE(override, ''),
			warnings, COALESCE(error, ''), duration_ms
		FROM documents WHERE run_id = ? ORDER BY id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		var status string
		var durationMS int64
		if err := rows.Scan(&d.RunID, &d.File, &status, &d.Title, &d.Entries, &d.Override,
			&d.Warnings, &d.Error, &durationMS); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		d.Status = batch.Status(status)
		d.Duration = time.Duration(durationMS) * time.Millisecond
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// scanner is satisfied by *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (Run, error) {
	var run Run
	var started, finished string
	if err := s.Scan(&run.ID, &started, &finished, &run.Source, &run.Destination,
		&run.Documents, &run.Failed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("failed to scan run: %w", err)
	}

	var err error
	if run.StartedAt, err = time.Parse(timeLayout, started); err != nil {
		return Run{}, fmt.Errorf("invalid start time %q: %w", started, err)
	}
	if finished != "" {
		if run.FinishedAt, err = time.Parse(timeLayout, finished); err != nil {
			return Run{}, fmt.Errorf("invalid finish time %q: %w", finished, err)
		}
	}
	return run, nil
}
