// Package app provides the application context and dependency management
// for the figurines CLI: configuration, logging and the lazily opened
// collection client.
package app

import (
	"context"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/figurines"
	"github.com/agentstation/figurines/internal/appcontext"
	"github.com/agentstation/figurines/pkg/assets"
	"github.com/agentstation/figurines/pkg/errors"
)

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// App represents the figurines application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// logCloser releases the log output opened for logger
	logCloser io.Closer

	// client is opened on first use
	mu     sync.RWMutex
	client figurines.Client
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("config", "could not load configuration", err)
	}
	app.config = config

	if err := app.openLogger(); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Client returns the figurines client, opening the project lazily.
// This is thread-safe and ensures only one client is created.
func (a *App) Client() (figurines.Client, error) {
	a.mu.RLock()
	if a.client != nil {
		c := a.client
		a.mu.RUnlock()
		return c, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.client != nil {
		return a.client, nil
	}

	opts, err := a.clientOptions()
	if err != nil {
		return nil, err
	}
	c, err := figurines.New(opts...)
	if err != nil {
		return nil, err
	}

	a.client = c
	return c, nil
}

// Shutdown releases the log output. Every command saves the collection as it
// goes, so there is no client state to flush. It is safe to call more than once.
func (a *App) Shutdown(_ context.Context) error {
	a.mu.RLock()
	c := a.client
	a.mu.RUnlock()

	if c != nil {
		a.logger.Debug().Int("records", len(c.Records())).Msg("Closing collection")
	}
	return a.closeLogger()
}

// openLogger replaces the logger with one built from the current config,
// closing the previous log output.
func (a *App) openLogger() error {
	logger, closer, err := NewLogger(a.config)
	if err != nil {
		return err
	}
	if err := a.closeLogger(); err != nil {
		_ = closer.Close()
		return err
	}
	a.logger = &logger
	a.logCloser = closer
	return nil
}

func (a *App) closeLogger() error {
	if a.logCloser == nil {
		return nil
	}
	err := a.logCloser.Close()
	a.logCloser = nil
	return err
}

// clientOptions builds client options from the app configuration.
func (a *App) clientOptions() ([]figurines.Option, error) {
	interp, err := assets.ParseInterpolator(a.config.ThumbnailFilter)
	if err != nil {
		return nil, errors.NewConfigError("thumbnail.filter", err.Error(), err)
	}

	return []figurines.Option{
		figurines.WithRoot(a.config.Root),
		figurines.WithLogger(a.logger),
		figurines.WithThumbnailSize(a.config.ThumbnailWidth, a.config.ThumbnailHeight),
		figurines.WithThumbnailFilter(interp),
		figurines.WithJPEGQuality(a.config.JPEGQuality),
	}, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithClient sets a custom client (useful for testing).
func WithClient(c figurines.Client) Option {
	return func(a *App) error {
		a.client = c
		return nil
	}
}
