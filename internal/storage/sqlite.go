package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteGateway stores keys in a single-file SQLite database
type SQLiteGateway struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and ensures the schema exists
func OpenSQLite(ctx context.Context, path string) (*SQLiteGateway, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, SQLiteDirPerm); err != nil {
			return nil, fmt.Errorf("%s: create directory: %w", ErrMsgOpenFailed, err)
		}
	}

	dsn := fmt.Sprintf("file:%s?%s&%s", path, SQLiteBusyTimeout, SQLiteJournalMode)
	db, err := sql.Open(SQLiteDriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgOpenFailed, err)
	}
	// SQLite allows a single writer
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgOpenFailed, err)
	}

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS kv_store (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgSchemaFailed, err)
	}

	return &SQLiteGateway{db: db}, nil
}

// Get reads a key
func (g *SQLiteGateway) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := g.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", ErrMsgGetFailed, key, err)
	}
	return []byte(value), nil
}

// Set upserts a key
func (g *SQLiteGateway) Set(ctx context.Context, key string, value []byte) error {
	_, err := g.db.ExecContext(ctx,
		`INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(value), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%s %q: %w", ErrMsgSetFailed, key, err)
	}
	return nil
}

// Remove deletes keys in one transaction
func (g *SQLiteGateway) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgRemoveFailed, err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, k := range keys {
		if _, err := tx.ExecContext(ctx, `DELETE FROM kv_store WHERE key = ?`, k); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgRemoveFailed, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgRemoveFailed, err)
	}
	return nil
}

// Keys lists stored keys with the given prefix
func (g *SQLiteGateway) Keys(ctx context.Context, prefix string) ([]string, error) {
	rows, err := g.db.QueryContext(ctx,
		`SELECT key FROM kv_store WHERE substr(key, 1, length(?)) = ? ORDER BY key`, prefix, prefix)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListFailed, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgListFailed, err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Ping checks the database handle
func (g *SQLiteGateway) Ping(ctx context.Context) error {
	return g.db.PingContext(ctx)
}

// Close closes the database
func (g *SQLiteGateway) Close() error {
	return g.db.Close()
}
