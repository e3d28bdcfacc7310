// Package emoji provides symbol constants for CLI output.
package emoji

// Status symbols shared by alerts and command output.
const (
	// Success marks a completed operation.
	Success = "✓"

	// Error marks a failed operation.
	Error = "✗"

	// Warning marks a non-blocking problem, such as an image file left behind.
	Warning = "!"

	// Info marks general information.
	Info = "i"
)
