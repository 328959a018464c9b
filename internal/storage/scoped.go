package storage

import (
	"context"
	"strings"
)

// ScopedGateway confines a gateway to one profile's key space
type ScopedGateway struct {
	inner  Gateway
	prefix string
}

// Scoped returns a gateway whose keys live under profile/<profileID>/
func Scoped(inner Gateway, profileID string) *ScopedGateway {
	return &ScopedGateway{
		inner:  inner,
		prefix: ProfileKeyPrefix + profileID + KeySeparator,
	}
}

// Key returns the fully qualified key
func (s *ScopedGateway) Key(key string) string {
	return s.prefix + key
}

// Get reads a profile key
func (s *ScopedGateway) Get(ctx context.Context, key string) ([]byte, error) {
	return s.inner.Get(ctx, s.Key(key))
}

// Set writes a profile key
func (s *ScopedGateway) Set(ctx context.Context, key string, value []byte) error {
	return s.inner.Set(ctx, s.Key(key), value)
}

// Remove deletes profile keys
func (s *ScopedGateway) Remove(ctx context.Context, keys ...string) error {
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = s.Key(k)
	}
	return s.inner.Remove(ctx, full...)
}

// ProfileIDs extracts the distinct profile ids from fully qualified keys
func ProfileIDs(keys []string) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, k := range keys {
		rest, ok := strings.CutPrefix(k, ProfileKeyPrefix)
		if !ok {
			continue
		}
		id, _, found := strings.Cut(rest, KeySeparator)
		if !found || id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// ListProfiles returns the ids of every profile holding data in g
func ListProfiles(ctx context.Context, g Gateway) ([]string, error) {
	lister, ok := g.(KeyLister)
	if !ok {
		return nil, ErrListUnsupported
	}
	keys, err := lister.Keys(ctx, ProfileKeyPrefix)
	if err != nil {
		return nil, err
	}
	return ProfileIDs(keys), nil
}
