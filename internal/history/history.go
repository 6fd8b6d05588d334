// Package history provides a SQLite-backed store of per-file edit snapshots.
// Every save records the full document content; old snapshots are pruned
// beyond a retention count.
package history

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // register sqlite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	path    TEXT NOT NULL,
	content TEXT NOT NULL,
	created INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_snapshots_path ON snapshots(path, id);
`

// Snapshot is one saved document state.
type Snapshot struct {
	ID      int64
	Path    string
	Content string
	Created time.Time
}

// Store is a SQLite-backed snapshot store.
type Store struct {
	mu   sync.Mutex
	db   *sql.DB
	keep int
}

// Open creates or opens a snapshot database at the given path. keep controls
// how many snapshots are retained per file.
func Open(dbPath string, keep int) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	// SQLite pragmas for performance.
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	if keep <= 0 {
		keep = 100
	}
	return &Store{db: db, keep: keep}, nil
}

// Close closes the database. Safe on a nil receiver.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

// Save records a snapshot of content for path. A save identical to the
// latest snapshot is skipped. No-op on nil receiver, so callers never have
// to care whether history is enabled.
func (s *Store) Save(path, content string) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var latest string
	err := s.db.QueryRow(
		"SELECT content FROM snapshots WHERE path = ? ORDER BY id DESC LIMIT 1",
		path,
	).Scan(&latest)
	if err == nil && latest == content {
		return nil
	}

	if _, err := s.db.Exec(
		"INSERT INTO snapshots (path, content, created) VALUES (?, ?, ?)",
		path, content, time.Now().Unix(),
	); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	s.prune(path)
	return nil
}

// prune drops snapshots for path beyond the retention count. Best effort.
func (s *Store) prune(path string) {
	_, err := s.db.Exec(`
		DELETE FROM snapshots WHERE path = ? AND id NOT IN (
			SELECT id FROM snapshots WHERE path = ? ORDER BY id DESC LIMIT ?
		)`, path, path, s.keep)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to prune snapshots")
	}
}

// Latest returns the most recent snapshot for path. Safe on a nil receiver
// (returns miss).
func (s *Store) Latest(path string) (Snapshot, bool) {
	if s == nil {
		return Snapshot{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var snap Snapshot
	var created int64
	err := s.db.QueryRow(
		"SELECT id, path, content, created FROM snapshots WHERE path = ? ORDER BY id DESC LIMIT 1",
		path,
	).Scan(&snap.ID, &snap.Path, &snap.Content, &created)
	if err != nil {
		return Snapshot{}, false
	}
	snap.Created = time.Unix(created, 0)
	return snap, true
}

// Recent returns up to n snapshots for path, newest first.
func (s *Store) Recent(path string, n int) ([]Snapshot, error) {
	if s == nil {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(
		"SELECT id, path, content, created FROM snapshots WHERE path = ? ORDER BY id DESC LIMIT ?",
		path, n,
	)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		var snap Snapshot
		var created int64
		if err := rows.Scan(&snap.ID, &snap.Path, &snap.Content, &created); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		snap.Created = time.Unix(created, 0)
		out = append(out, snap)
	}
	return out, rows.Err()
}
