// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package state persists the local sync state: which papers have been
// written to Notion, under which page, and with what content
// fingerprint. Re-runs consult it to skip unchanged papers without a
// Notion round trip.
package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const dbFile = "papersync.db"

// Record is one synced paper.
type Record struct {
	ArxivID     string
	PageID      string
	Title       string
	Fingerprint string
	SyncedAt    time.Time
}

// Store manages the sync-state SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at dir/papersync.db, creating the
// schema if it does not exist.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening state database: %w", err)
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
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS synced_papers (
		arxiv_id    TEXT PRIMARY KEY,
		page_id     TEXT NOT NULL,
		title       TEXT,
		fingerprint TEXT NOT NULL,
		synced_at   TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Get returns the record for an arXiv ID, or nil when the paper has
// never been synced.
func (s *Store) Get(ctx context.Context, arxivID string) (*Record, error) {
	var (
		r        Record
		syncedAt string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT arxiv_id, page_id, title, fingerprint, synced_at
		 FROM synced_papers WHERE arxiv_id = ?`, arxivID,
	).Scan(&r.ArxivID, &r.PageID, &r.Title, &r.Fingerprint, &syncedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading state for %s: %w", arxivID, err)
	}

	if t, parseErr := time.Parse(time.RFC3339Nano, syncedAt); parseErr == nil {
		r.SyncedAt = t
	}
	return &r, nil
}

// Put inserts or replaces the record for a paper.
func (s *Store) Put(ctx context.Context, r Record) error {
	if r.ArxivID == "" {
		return fmt.Errorf("record has no arXiv ID")
	}
	syncedAt := r.SyncedAt
	if syncedAt.IsZero() {
		syncedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO synced_papers (arxiv_id, page_id, title, fingerprint, synced_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(arxiv_id) DO UPDATE SET
			page_id = excluded.page_id,
			title = excluded.title,
			fingerprint = excluded.fingerprint,
			synced_at = excluded.synced_at`,
		r.ArxivID, r.PageID, r.Title, r.Fingerprint,
		syncedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("writing state for %s: %w", r.ArxivID, err)
	}
	return nil
}

// Count returns the number of synced papers.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM synced_papers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting synced papers: %w", err)
	}
	return n, nil
}
