// Package sqlite provides the durable Persister. The whole aggregate is
// one JSON blob in a single-row snapshots table; SQLite gives atomic
// overwrites without inventing a file-swap protocol.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/tableforge/tableforge/internal/state"
	"github.com/tableforge/tableforge/internal/storage"
)

const snapshotKey = "state"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
    key TEXT PRIMARY KEY,
    data BLOB NOT NULL,
    saved_at INTEGER NOT NULL
);
`

// Store is a SQLite-backed Persister.
type Store struct {
	sqlDB *sql.DB
}

// Open opens (and if needed creates) the snapshot database at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := sqlDB.Exec(schemaSQL); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ensure snapshots table: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

// Save overwrites the snapshot row with the encoded aggregate.
func (s *Store) Save(ctx context.Context, st *state.State) error {
	data, err := state.Encode(st)
	if err != nil {
		return err
	}
	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO snapshots (key, data, saved_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET data = excluded.data, saved_at = excluded.saved_at
`, snapshotKey, data, time.Now().UTC().UnixMilli())
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Load reads and decodes the snapshot row.
func (s *Store) Load(ctx context.Context) (*state.State, error) {
	var data []byte
	err := s.sqlDB.QueryRowContext(ctx,
		"SELECT data FROM snapshots WHERE key = ?", snapshotKey,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return state.Decode(data)
}

// Close closes the underlying SQLite database.
//
// Close is intentionally nil-safe so callers can defer it in all startup
// paths.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}
