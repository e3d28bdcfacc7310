// Package errors provides custom error types for the figurines system.
// These errors enable programmatic error checking by the presentation layer,
// which must tell blocking failures (validation, persistence, image processing)
// apart from non-fatal cleanup warnings.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Join, Is and As are aliases for the standard library functions so callers
// can import this package in place of "errors".
var (
	Join = errors.Join
	Is   = errors.Is
	As   = errors.As
)

// Common sentinel errors for the figurines system
var (
	// ErrNotFound indicates that a requested record was not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates that a record with the same name already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrPersistence indicates the collection document could not be read or written
	ErrPersistence = errors.New("persistence failure")

	// ErrImageProcessing indicates an image could not be copied, decoded or thumbnailed
	ErrImageProcessing = errors.New("image processing failure")

	// ErrCleanup indicates managed image files could not be removed
	ErrCleanup = errors.New("file cleanup failure")
)

// NotFoundError represents an error when a record is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// DuplicateNameError is returned when a name collides, ignoring case,
// with a record already in the collection.
type DuplicateNameError struct {
	Name     string
	Existing string
}

// Error implements the error interface
func (e *DuplicateNameError) Error() string {
	if e.Existing != "" && e.Existing != e.Name {
		return fmt.Sprintf("a record named %q already exists (as %q)", e.Name, e.Existing)
	}
	return fmt.Sprintf("a record named %q already exists", e.Name)
}

// Is implements errors.Is support
func (e *DuplicateNameError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// NewDuplicateNameError creates a new DuplicateNameError
func NewDuplicateNameError(name, existing string) *DuplicateNameError {
	return &DuplicateNameError{Name: name, Existing: existing}
}

// PersistenceError represents a failure to read or write the collection document
type PersistenceError struct {
	Operation string // "load", "save", "export"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *PersistenceError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("persistence error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("persistence error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

// NewPersistenceError creates a new PersistenceError
func NewPersistenceError(operation, path string, err error) *PersistenceError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &PersistenceError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// ImageProcessingError represents a failure to copy, decode or thumbnail an image
type ImageProcessingError struct {
	Stage   string // "read", "copy", "decode", "thumbnail"
	Source  string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ImageProcessingError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("image processing failed at %s for %s: %s", e.Stage, e.Source, e.Message)
	}
	return fmt.Sprintf("image processing failed at %s: %s", e.Stage, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ImageProcessingError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ImageProcessingError) Is(target error) bool {
	return target == ErrImageProcessing
}

// NewImageProcessingError creates a new ImageProcessingError
func NewImageProcessingError(stage, source string, err error) *ImageProcessingError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ImageProcessingError{
		Stage:   stage,
		Source:  source,
		Message: message,
		Err:     err,
	}
}

// FileCleanupWarning reports managed files that could not be removed.
// It is non-fatal: the record-level mutation it accompanies proceeds.
type FileCleanupWarning struct {
	Paths []string
	Err   error
}

// Error implements the error interface
func (e *FileCleanupWarning) Error() string {
	return fmt.Sprintf("could not remove %s: %v", strings.Join(e.Paths, ", "), e.Err)
}

// Unwrap implements errors.Unwrap
func (e *FileCleanupWarning) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *FileCleanupWarning) Is(target error) bool {
	return target == ErrCleanup
}

// NewFileCleanupWarning creates a new FileCleanupWarning
func NewFileCleanupWarning(paths []string, err error) *FileCleanupWarning {
	return &FileCleanupWarning{Paths: paths, Err: err}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateName checks if an error is a name collision
func IsDuplicateName(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsPersistence checks if an error is a persistence error
func IsPersistence(err error) bool {
	return errors.Is(err, ErrPersistence)
}

// IsImageProcessing checks if an error is an image processing error
func IsImageProcessing(err error) bool {
	return errors.Is(err, ErrImageProcessing)
}

// IsCleanupWarning checks if an error is a non-fatal cleanup warning
func IsCleanupWarning(err error) bool {
	return errors.Is(err, ErrCleanup)
}

// IsBlocking reports whether err must abort the operation it came from.
// Cleanup warnings are the only non-blocking kind.
func IsBlocking(err error) bool {
	return err != nil && !IsCleanupWarning(err)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapPersistence wraps an error as a PersistenceError
func WrapPersistence(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewPersistenceError(operation, path, err)
}

// WrapImage wraps an error as an ImageProcessingError
func WrapImage(stage, source string, err error) error {
	if err == nil {
		return nil
	}
	return NewImageProcessingError(stage, source, err)
}
