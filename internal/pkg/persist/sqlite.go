package persist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/megamart/commerce-core/internal/app/commerce/contracts"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS store_state (
  key        TEXT PRIMARY KEY,
  value      BLOB NOT NULL,
  updated_at INTEGER NOT NULL DEFAULT (unixepoch())
)`

// SQLite is a Persister backed by a local SQLite database. It is the
// default durable backend: a single file, no server.
type SQLite struct {
	sqlDB *sql.DB
}

// OpenSQLite opens (or creates) the database at path and ensures the
// key-value schema exists.
func OpenSQLite(path string) (*SQLite, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(sqliteSchema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &SQLite{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *SQLite) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Get returns the value stored under key or contracts.ErrKeyMissing.
func (s *SQLite) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var value []byte
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT value FROM store_state WHERE key = ?`, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, contracts.ErrKeyMissing
	}
	if err != nil {
		return nil, fmt.Errorf("read key %q: %w", key, err)
	}
	return value, nil
}

// Set upserts the value under key.
func (s *SQLite) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO store_state (key, value, updated_at) VALUES (?, ?, unixepoch())
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("write key %q: %w", key, err)
	}
	return nil
}

// Delete removes key entirely.
func (s *SQLite) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := s.sqlDB.ExecContext(ctx,
		`DELETE FROM store_state WHERE key = ?`, key,
	); err != nil {
		return fmt.Errorf("delete key %q: %w", key, err)
	}
	return nil
}
