// Package appcontext provides the application context interface shared by
// all commands, so command packages depend on an interface rather than on
// the concrete App.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/figurines"
)

// Interface defines what commands need from the application.
// The App struct from cmd/figurines/app implements it; tests use Mock.
type Interface interface {
	// Client returns the figurines client for the configured project,
	// creating it lazily on first use. Every call returns the same client.
	Client() (figurines.Client, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, wide).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
