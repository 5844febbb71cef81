package integrations

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// ctxKey is the type for context keys used in this package.
// Using a distinct type prevents collisions with other packages.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// WithLogger returns a new context with the given logger attached.
// Calls made with this context log to l instead of the client's logger.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, falling back to def.
func loggerFromContext(ctx context.Context, def *log.Logger) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok && l != nil {
		return l
	}
	return def
}

// discardLogger returns a logger that drops everything.
func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
