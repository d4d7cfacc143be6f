// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ledger records fetch attempts in a SQLite database.
//
// The ledger is an after-the-fact record only. Wrapping a downloader with
// Recording never changes what the wrapped downloader returns, so the
// fetch loop behaves the same with or without a ledger.
package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/opus-fetch/internal/fetch"
	"github.com/pdiddy/opus-fetch/pkg/types"
)

const defaultLimit = 20

// Store manages the ledger database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the ledger at path, creating the parent directory
// and schema if needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating ledger directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS attempts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			url TEXT NOT NULL,
			dest_path TEXT NOT NULL,
			backend TEXT NOT NULL,
			started TEXT NOT NULL,
			duration_ms INTEGER NOT NULL,
			error TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_attempts_url ON attempts(url)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts one attempt.
func (s *Store) Record(ctx context.Context, a types.Attempt) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO attempts (url, dest_path, backend, started, duration_ms, error)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		a.URL, a.DestPath, a.Backend,
		a.Started.UTC().Format(time.RFC3339Nano),
		a.Duration.Milliseconds(),
		a.Error,
	)
	if err != nil {
		return fmt.Errorf("recording attempt for %s: %w", a.URL, err)
	}
	return nil
}

// Recent returns up to limit attempts, newest first. A non-positive limit
// uses the default of 20.
func (s *Store) Recent(ctx context.Context, limit int) ([]types.Attempt, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT url, dest_path, backend, started, duration_ms, error
		 FROM attempts ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying attempts: %w", err)
	}
	defer rows.Close()

	var attempts []types.Attempt
	for rows.Next() {
		var (
			a       types.Attempt
			started string
			ms      int64
		)
		if err := rows.Scan(&a.URL, &a.DestPath, &a.Backend, &started, &ms, &a.Error); err != nil {
			return nil, fmt.Errorf("scanning attempt: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, started); err == nil {
			a.Started = t
		}
		a.Duration = time.Duration(ms) * time.Millisecond
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

// recorder wraps a Downloader and logs every attempt to a Store.
type recorder struct {
	next    fetch.Downloader
	store   *Store
	backend string
	warn    io.Writer
	now     func() time.Time
}

// Recording returns a Downloader that forwards to d and records each
// attempt under the given backend name. Ledger write failures are printed
// to warn and otherwise ignored.
func Recording(d fetch.Downloader, s *Store, backend string, warn io.Writer) fetch.Downloader {
	return &recorder{next: d, store: s, backend: backend, warn: warn, now: time.Now}
}

func (r *recorder) Fetch(ctx context.Context, url, destPath string) error {
	start := r.now()
	err := r.next.Fetch(ctx, url, destPath)

	a := types.Attempt{
		URL:      url,
		DestPath: destPath,
		Backend:  r.backend,
		Started:  start,
		Duration: r.now().Sub(start),
	}
	if err != nil {
		a.Error = err.Error()
	}
	if recErr := r.store.Record(ctx, a); recErr != nil {
		fmt.Fprintf(r.warn, "warning: %v\n", recErr)
	}
	return err
}

// Describe forwards to the wrapped downloader so notice lines are unchanged.
func (r *recorder) Describe(url, destPath string) string {
	if d, ok := r.next.(interface{ Describe(string, string) string }); ok {
		return d.Describe(url, destPath)
	}
	return fmt.Sprintf("fetch %s -> %s", url, destPath)
}
