// Package save holds the options accepted by collection exports.
package save

import (
	"fmt"
	"io"
	"strings"
)

// Format selects the encoding of an exported collection.
type Format int

// Format constants.
const (
	FormatJSON Format = iota
	FormatYAML
)

// IsValid checks if the format is valid.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	}
	return "unknown"
}

// ParseFormat converts "json", "yaml" or "yml" into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatJSON, fmt.Errorf("unsupported export format %q (supported: json, yaml)", s)
	}
}

// Options is the configuration for an export.
type Options struct {
	path   string
	writer io.Writer
	format Format
}

// Path returns the destination file path, if any.
func (s *Options) Path() string {
	return s.path
}

// Writer returns the destination writer, if any.
func (s *Options) Writer() io.Writer {
	return s.writer
}

// Format returns the export format.
func (s *Options) Format() Format {
	return s.format
}

// Defaults returns the default export options: JSON, no destination.
func Defaults() *Options {
	return &Options{
		format: FormatJSON,
	}
}

// Apply applies the given options to the export options.
func (s *Options) Apply(opts ...Option) Options {
	for _, opt := range opts {
		opt(s)
	}
	return *s
}

// Option is a function that configures export options.
type Option func(*Options)

// WithFormat for custom output format.
func WithFormat(f Format) Option {
	return func(s *Options) {
		s.format = f
	}
}

// WithPath for filesystem exports.
func WithPath(path string) Option {
	return func(s *Options) {
		s.path = path
	}
}

// WithWriter for custom outputs.
func WithWriter(w io.Writer) Option {
	return func(s *Options) {
		s.writer = w
	}
}
