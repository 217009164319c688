// Package logging defines the small structured-logging surface shared by the
// storage, synchronization, and view layers. The concrete implementation
// wraps slog; tests use Nop.
package logging

import "context"

// Logger is a context-aware, structured logger. Variadic args are key-value
// pairs:
//
//	log.Info(ctx, "collection written", "key", key, "items", len(items))
type Logger interface {
	// Debug logs fine-grained events such as change-signal traffic and
	// poll ticks.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs normal lifecycle events.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs unusual but non-fatal conditions, such as a stored value
	// that failed to decode.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always carries the given key-value
	// pairs.
	With(args ...any) Logger
}
