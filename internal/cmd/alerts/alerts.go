// Package alerts prints one-line command outcomes such as "Created" or
// "Nothing deleted", plus warnings for images a command left behind.
package alerts

import (
	"github.com/agentstation/figurines/pkg/errors"
)

// Alert is a status line with optional detail lines and cause.
type Alert struct {
	Level   Level
	Message string
	Details []string
	Err     error
}

// New creates an alert.
func New(level Level, message string) *Alert {
	return &Alert{Level: level, Message: message}
}

// NewWarning creates a warning alert.
func NewWarning(message string) *Alert { return New(LevelWarning, message) }

// NewInfo creates an info alert.
func NewInfo(message string) *Alert { return New(LevelInfo, message) }

// NewSuccess creates a success alert.
func NewSuccess(message string) *Alert { return New(LevelSuccess, message) }

// WithError sets the cause shown after the message.
func (a *Alert) WithError(err error) *Alert {
	a.Err = err
	return a
}

// WithDetails appends detail lines.
func (a *Alert) WithDetails(details ...string) *Alert {
	a.Details = append(a.Details, details...)
	return a
}

// String renders the icon, message and cause on one line.
func (a *Alert) String() string {
	s := a.Level.Icon() + " " + a.Message
	if a.Err != nil {
		s += ": " + a.Err.Error()
	}
	return s
}

// Cleanup turns an image cleanup failure into a warning listing the files
// that are still on disk.
func Cleanup(err error) *Alert {
	a := NewWarning("Some image files could not be removed")
	var warning *errors.FileCleanupWarning
	if errors.As(err, &warning) {
		return a.WithError(warning.Err).WithDetails(warning.Paths...)
	}
	return a.WithError(err)
}
