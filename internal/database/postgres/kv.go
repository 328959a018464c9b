// Package postgres implements the storage gateway on top of a pgx connection pool.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/WellnessQuest_Go/internal/storage"
)

// KVGateway stores keys in the kv_store table
type KVGateway struct {
	pool *pgxpool.Pool
}

// NewKVGateway creates a gateway on an already migrated pool
func NewKVGateway(pool *pgxpool.Pool) *KVGateway {
	return &KVGateway{pool: pool}
}

// Get reads a key
func (g *KVGateway) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := g.pool.QueryRow(ctx, sqlGetKey, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", ErrMsgFailedToGetKey, key, err)
	}
	return []byte(value), nil
}

// Set upserts a key
func (g *KVGateway) Set(ctx context.Context, key string, value []byte) error {
	if _, err := g.pool.Exec(ctx, sqlSetKey, key, string(value)); err != nil {
		return fmt.Errorf("%s %q: %w", ErrMsgFailedToSetKey, key, err)
	}
	return nil
}

// Remove deletes keys in a single statement
func (g *KVGateway) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if _, err := g.pool.Exec(ctx, sqlRemoveKeys, keys); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRemoveKeys, err)
	}
	return nil
}

// Keys lists keys with the given prefix
func (g *KVGateway) Keys(ctx context.Context, prefix string) ([]string, error) {
	rows, err := g.pool.Query(ctx, sqlListKeys, escapeLike(prefix)+"%")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListKeys, err)
	}
	keys, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListKeys, err)
	}
	return keys, nil
}

// Ping checks the pool
func (g *KVGateway) Ping(ctx context.Context) error {
	return g.pool.Ping(ctx)
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
