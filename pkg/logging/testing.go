package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// TestLogger captures JSON log lines in memory.
type TestLogger struct {
	*zerolog.Logger
	buf *bytes.Buffer
}

// NewTestLogger returns a logger that records every level, restoring the
// global level when the test ends.
func NewTestLogger(t testing.TB) *TestLogger {
	t.Helper()

	old := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(old) })

	buf := &bytes.Buffer{}
	logger := zerolog.New(buf).Level(zerolog.TraceLevel)
	return &TestLogger{Logger: &logger, buf: buf}
}

// Output returns everything logged so far.
func (tl *TestLogger) Output() string {
	return tl.buf.String()
}

// AssertContains fails t unless the output contains substr.
func (tl *TestLogger) AssertContains(t testing.TB, substr string) {
	t.Helper()
	assert.Contains(t, tl.Output(), substr)
}
