// Package store provides the key-value persistence boundary of the
// application. The calendar core depends only on the Store interface; which
// implementation backs it is decided once at startup from configuration.
package store

import "context"

// Store is the minimal contract the calendar depends on. A single fixed key
// holds the entire serialized event collection; there is no namespacing and
// no per-event key.
type Store interface {
	// Get returns the value under key. ok is false when the key has never
	// been written; err is reserved for transport/media failures.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set writes value under key, replacing any prior value.
	Set(ctx context.Context, key string, value string) error

	// Ping reports whether the underlying medium is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
