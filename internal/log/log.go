// Package log configures structured logging for promptgate using log/slog.
package log

import (
	"io"
	"log/slog"
	"os"
)

// FormatJSON selects slog.JSONHandler in Setup.
const FormatJSON = "json"

// Setup configures the default slog logger based on verbosity flags.
//
//   - quiet mode:   only WARN and ERROR messages
//   - normal mode:  INFO and above
//   - verbose mode: DEBUG and above
//
// Output is written to stderr, as JSON when format is "json" and as
// slog.TextHandler output otherwise.
func Setup(verbose, quiet bool, format string) {
	slog.SetDefault(New(os.Stderr, verbose, quiet, format))
}

// New builds a logger writing to w with the same rules as Setup.
func New(w io.Writer, verbose, quiet bool, format string) *slog.Logger {
	var level slog.Level
	switch {
	case quiet:
		level = slog.LevelWarn
	case verbose:
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
