// Package backend defines the origin-scoped key-value store shared by every
// running instance of the application, together with its native change
// signal.
//
// The contract is deliberately small: values are plain byte strings under
// string keys, a write is atomic per key, there are no transactions, and a
// change signal is delivered to every *other* instance watching the key,
// never to the writer itself. Components that need to observe their own
// writes must pair Watch with the in-process notifier.
package backend

import "context"

// Backend is the injected storage capability. Implementations: Redis,
// Postgres, and an in-memory origin for tests.
type Backend interface {
	// Get returns the value stored under key, or (nil, nil) when the key
	// is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Watch returns a channel that receives a signal whenever another
	// instance writes key. Signals coalesce: a receiver observing one
	// signal may be covering several writes. The channel closes when ctx
	// is cancelled. The caller's own writes are never signalled.
	Watch(ctx context.Context, key string) (<-chan struct{}, error)
}
