package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/figurines/pkg/constants"
)

// Config selects where and how the CLI logs.
type Config struct {
	// Level is trace, debug, info, warn, error or off
	Level string

	// Format is json, console or auto (console on a terminal)
	Format string

	// Output is stderr, stdout, discard or a file path appended to
	Output string

	NoColor   bool
	AddCaller bool
}

// Open builds a logger from cfg. The returned closer releases the log file
// when Output names one and is a no-op otherwise.
func Open(cfg *Config) (zerolog.Logger, io.Closer, error) {
	out, closer, err := openOutput(cfg.Output)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	level := ParseLevel(cfg.Level)
	zerolog.SetGlobalLevel(level)

	ctx := zerolog.New(consoleOrJSON(out, cfg.Format, cfg.NoColor)).
		Level(level).
		With().
		Timestamp()
	if cfg.AddCaller {
		ctx = ctx.Caller()
	}
	return ctx.Logger(), closer, nil
}

// ParseLevel maps a level name onto zerolog, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return zerolog.InfoLevel
	case "warning":
		return zerolog.WarnLevel
	case "off", "none":
		return zerolog.Disabled
	}
	l, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.InfoLevel
	}
	return l
}

func openOutput(output string) (io.Writer, io.Closer, error) {
	switch strings.ToLower(output) {
	case "", "stderr":
		return os.Stderr, nopCloser{}, nil
	case "stdout":
		return os.Stdout, nopCloser{}, nil
	case "discard", "none":
		return io.Discard, nopCloser{}, nil
	}
	f, err := os.OpenFile(output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, f, nil
}

// consoleOrJSON wraps out in a console writer for "console", or for "auto"
// when out is a terminal.
func consoleOrJSON(out io.Writer, format string, noColor bool) io.Writer {
	format = strings.ToLower(format)
	if format == "auto" || format == "" {
		format = "json"
		if f, ok := out.(*os.File); ok && isTerminal(f) {
			format = "console"
		}
	}
	if format != "console" && format != "pretty" {
		return out
	}
	return zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen, NoColor: noColor}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
