// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache persists fetched profile records and an index of saved
// notes in a local SQLite database, so repeated fetches of the same
// username do not hit the data API inside the TTL window.
package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/profile-notes/pkg/types"
)

const (
	dbFile     = "profiles.db"
	defaultTTL = 24 * time.Hour
)

// Store manages the fetch cache database.
type Store struct {
	db  *sql.DB
	ttl time.Duration
}

// NewStore opens or creates the cache database at cfg.Dir/profiles.db and
// creates the schema if it does not exist.
func NewStore(cfg types.CacheConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "cache"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	s := &Store{db: db, ttl: ttl}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS profiles (
			username TEXT PRIMARY KEY,
			payload TEXT NOT NULL,
			fetched_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS notes (
			username TEXT NOT NULL,
			note_path TEXT NOT NULL,
			title TEXT NOT NULL,
			created_at TEXT NOT NULL,
			PRIMARY KEY (username, note_path)
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Get returns the cached profile for username when one exists and is
// younger than the TTL. The second return value reports a usable hit.
func (s *Store) Get(ctx context.Context, username string) (*types.ProfileRecord, bool, error) {
	var payload, fetchedAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload, fetched_at FROM profiles WHERE username = ?`, username,
	).Scan(&payload, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("querying cache: %w", err)
	}

	t, err := time.Parse(time.RFC3339Nano, fetchedAt)
	if err != nil || time.Since(t) > s.ttl {
		return nil, false, nil
	}

	var profile types.ProfileRecord
	if err := json.Unmarshal([]byte(payload), &profile); err != nil {
		// A corrupt payload is treated as a miss; the next Put repairs it.
		return nil, false, nil
	}
	return &profile, true, nil
}

// Put stores or replaces the cached profile for username.
func (s *Store) Put(ctx context.Context, username string, profile *types.ProfileRecord) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO profiles (username, payload, fetched_at) VALUES (?, ?, ?)
		 ON CONFLICT(username) DO UPDATE SET
			payload=excluded.payload, fetched_at=excluded.fetched_at`,
		username, string(payload), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("storing profile: %w", err)
	}
	return nil
}

// NoteRecord is one entry in the saved-note index.
type NoteRecord struct {
	Username  string    `json:"username"`
	NotePath  string    `json:"note_path"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// RecordNote indexes a saved note for username.
func (s *Store) RecordNote(ctx context.Context, username, notePath, title string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO notes (username, note_path, title, created_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(username, note_path) DO UPDATE SET
			title=excluded.title, created_at=excluded.created_at`,
		username, notePath, title, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording note: %w", err)
	}
	return nil
}

// Notes returns the saved-note index ordered by creation time, newest first.
func (s *Store) Notes(ctx context.Context) ([]NoteRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT username, note_path, title, created_at FROM notes ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying notes: %w", err)
	}
	defer rows.Close()

	var records []NoteRecord
	for rows.Next() {
		var r NoteRecord
		var createdAt string
		if err := rows.Scan(&r.Username, &r.NotePath, &r.Title, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning note row: %w", err)
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		records = append(records, r)
	}
	return records, rows.Err()
}

// Purge drops all cached profiles. The note index is kept; it records
// history, not cache state.
func (s *Store) Purge(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM profiles`)
	if err != nil {
		return 0, fmt.Errorf("purging cache: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
