package storage

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CachedGateway is a read-through cache in front of another gateway.
// Writes go to the inner gateway first and then replace the cached value;
// a failed write evicts the key so the next read goes back to the source.
type CachedGateway struct {
	inner Gateway
	lru   *expirable.LRU[string, []byte]
}

// NewCachedGateway wraps inner with an LRU of the given size whose entries expire after ttl
func NewCachedGateway(inner Gateway, size int, ttl time.Duration) *CachedGateway {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedGateway{
		inner: inner,
		lru:   expirable.NewLRU[string, []byte](size, nil, ttl),
	}
}

// Get serves from the cache, falling back to the inner gateway
func (c *CachedGateway) Get(ctx context.Context, key string) ([]byte, error) {
	if v, ok := c.lru.Get(key); ok {
		return append([]byte(nil), v...), nil
	}

	v, err := c.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	c.lru.Add(key, append([]byte(nil), v...))
	return v, nil
}

// Set writes through to the inner gateway
func (c *CachedGateway) Set(ctx context.Context, key string, value []byte) error {
	if err := c.inner.Set(ctx, key, value); err != nil {
		c.lru.Remove(key)
		return err
	}
	c.lru.Add(key, append([]byte(nil), value...))
	return nil
}

// Remove evicts the keys and deletes them from the inner gateway
func (c *CachedGateway) Remove(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		c.lru.Remove(k)
	}
	return c.inner.Remove(ctx, keys...)
}

// Keys delegates to the inner gateway when it can list keys
func (c *CachedGateway) Keys(ctx context.Context, prefix string) ([]string, error) {
	lister, ok := c.inner.(KeyLister)
	if !ok {
		return nil, ErrListUnsupported
	}
	return lister.Keys(ctx, prefix)
}

// Ping delegates to the inner gateway
func (c *CachedGateway) Ping(ctx context.Context) error {
	return Ping(ctx, c.inner)
}

// Len returns the number of cached entries
func (c *CachedGateway) Len() int {
	return c.lru.Len()
}

// Purge drops every cached entry
func (c *CachedGateway) Purge() {
	c.lru.Purge()
}
