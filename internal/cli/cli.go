// Package cli implements the panelist command-line interface.
//
// The CLI is a thin wrapper around the library: the sort command orders a
// JSON list of panel bounding boxes into reading order, and the clean
// command removes the drawn border from a panel image. It is built using
// cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
//   - sort: order panel regions into reading order
//   - clean: remove the border line from a panel image
//
// # Configuration
//
// Both commands read defaults from an optional TOML file passed with
// --config; command-line flags override the file.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is the type for context keys used in this package.
// Using a distinct type prevents collisions with other packages.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, falling back to
// log.Default() so commands always have a valid logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
