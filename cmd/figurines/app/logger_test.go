package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/figurines/pkg/errors"
)

func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{"default level when no flags set", &Config{}, "info"},
		{"verbose flag sets debug", &Config{Verbose: true}, "debug"},
		{"quiet flag sets warn", &Config{Quiet: true}, "warn"},
		{"explicit log-level overrides verbose", &Config{LogLevel: "error", Verbose: true}, "error"},
		{"explicit log-level overrides quiet", &Config{LogLevel: "trace", Quiet: true}, "trace"},
		{"both verbose and quiet prefers quiet", &Config{Verbose: true, Quiet: true}, "warn"},
		{"invalid log-level falls back to info", &Config{LogLevel: "loud"}, "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, determineLogLevel(tt.config))
		})
	}
}

func TestNewLogger(t *testing.T) {
	logger, closer, err := NewLogger(&Config{LogLevel: "warn", LogFormat: "json", LogOutput: "discard"})
	require.NoError(t, err)
	assert.Equal(t, "warn", logger.GetLevel().String())
	assert.NoError(t, closer.Close())

	_, _, err = NewLogger(&Config{LogOutput: filepath.Join(t.TempDir(), "no", "such", "dir.log")})
	var cfgErr *errors.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}
