// internal/cmdutil/log.go
package cmdutil

import (
	"io"
	"log/slog"
)

// NewLogger returns a text logger on dst. Warnings are shown by default,
// quiet keeps errors only, verbose adds debug lines.
func NewLogger(dst io.Writer, quiet, verbose bool) *slog.Logger {
	lvl := slog.LevelWarn
	switch {
	case quiet:
		lvl = slog.LevelError
	case verbose:
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(dst, &slog.HandlerOptions{Level: lvl}))
}
