package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key holds no value
var ErrNotFound = errors.New(ErrMsgNotFound)

// ErrListUnsupported is returned when key enumeration is not available
var ErrListUnsupported = errors.New(ErrMsgListUnsupported)

// Gateway is an opaque key/value store. Values are JSON text; the gateway
// never looks inside them.
type Gateway interface {
	// Get returns the value stored under key, or ErrNotFound
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key string, value []byte) error
	// Remove deletes the given keys; absent keys are ignored
	Remove(ctx context.Context, keys ...string) error
}

// Pinger is implemented by gateways backed by a connection that can go away
type Pinger interface {
	Ping(ctx context.Context) error
}

// KeyLister is implemented by gateways that can enumerate their keys
type KeyLister interface {
	// Keys returns every stored key starting with prefix, in ascending order
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// Ping checks the gateway when it supports it
func Ping(ctx context.Context, g Gateway) error {
	if p, ok := g.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}
