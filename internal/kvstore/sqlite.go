package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/flashleaf/flashleaf/schemas"
)

// SQLiteStore implements Store over an embedded SQLite database.
type SQLiteStore struct {
	db *sqlx.DB
}

// Open opens (creating if necessary) a SQLite-backed store at path and
// applies the embedded migrations. Use ":memory:" for an ephemeral store
// in tests.
func Open(path string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open() > %w", err)
	}
	// modernc.org/sqlite serializes writes per connection; a single
	// connection avoids SQLITE_BUSY between the session flow and the
	// background push queue.
	db.SetMaxOpenConns(1)
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate() > %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// migrate applies every embedded migration file in name order. All
// statements are idempotent, so re-running them on an existing database
// is safe.
func migrate(db *sqlx.DB) error {
	entries, err := fs.ReadDir(schemas.Migrations, "migrations")
	if err != nil {
		return fmt.Errorf("fs.ReadDir(migrations) > %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		statements, err := fs.ReadFile(schemas.Migrations, "migrations/"+name)
		if err != nil {
			return fmt.Errorf("fs.ReadFile(%s) > %w", name, err)
		}
		if _, err := db.Exec(string(statements)); err != nil {
			return fmt.Errorf("db.Exec(%s) > %w", name, err)
		}
	}
	return nil
}

// Get returns the value for key, or (nil, nil) when the key is absent.
func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.GetContext(ctx, &value, "SELECT value FROM kv WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(kv) > %w", err)
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	if _, err := s.db.ExecContext(ctx,
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value); err != nil {
		return fmt.Errorf("db.ExecContext(upsert kv) > %w", err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("db.ExecContext(delete kv) > %w", err)
	}
	return nil
}

// Keys returns all keys starting with prefix, in key order.
func (s *SQLiteStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	if err := s.db.SelectContext(ctx, &keys,
		"SELECT key FROM kv WHERE key >= ? AND key < ? ORDER BY key",
		prefix, prefix+"\xff"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(kv keys) > %w", err)
	}
	return keys, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
