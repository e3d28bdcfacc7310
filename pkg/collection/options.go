package collection

import (
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source used for modification timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger used for load and save diagnostics.
func WithLogger(logger *zerolog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}
