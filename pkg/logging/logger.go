// Package logging builds the zerolog loggers used across figurines.
//
// Library packages (collection, assets and the root client) take an injected
// *zerolog.Logger and fall back to a discarding one. The CLI opens a logger
// from Config at startup and closes it on shutdown.
//
//	logger, closer, err := logging.Open(&logging.Config{Level: "info", Output: "stderr"})
//	defer closer.Close()
//	logging.WithRecord(&logger, 3, "Gandalf").Info().Msg("Record saved")
package logging

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Default returns a logger on stderr at the LOG_LEVEL level (info when unset
// or invalid), human readable when stderr is a terminal.
func Default() *zerolog.Logger {
	level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(consoleOrJSON(os.Stderr, "auto", os.Getenv("NO_COLOR") != "")).
		Level(level).
		With().
		Timestamp().
		Logger()
	return &logger
}

// OrNop returns logger, or a discarding logger when it is nil.
func OrNop(logger *zerolog.Logger) *zerolog.Logger {
	if logger != nil {
		return logger
	}
	return NewNopLogger()
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

// WithRecord returns a child of l that tags every event with the record's
// id and name.
func WithRecord(l *zerolog.Logger, id int, name string) *zerolog.Logger {
	child := l.With().Int("record_id", id).Str("record_name", name).Logger()
	return &child
}

// WithOperation returns a child of l that tags every event with a lifecycle
// operation such as "create" or "delete".
func WithOperation(l *zerolog.Logger, operation string) *zerolog.Logger {
	child := l.With().Str("operation", operation).Logger()
	return &child
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
