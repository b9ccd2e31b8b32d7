package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the simulation timed out.
	ExitErrorExists   = 3   // Indicates the output destination already exists.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// SimulationError encapsulates a failure inside a trial batch while preserving
// the original cause. It allows structured inspection of what went wrong
// during the coin-flip simulation.
type SimulationError struct {
	// Worker is the index of the worker whose batch failed.
	Worker int
	// Cause is the underlying error that triggered this simulation error.
	Cause error
}

// Error returns a message identifying the failing worker and the cause.
func (e SimulationError) Error() string {
	return fmt.Sprintf("worker %d: %s", e.Worker, e.Cause.Error())
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e SimulationError) Unwrap() error { return e.Cause }

// OutputError represents a failure while writing the results file. It captures
// the destination path for diagnostic purposes.
type OutputError struct {
	// Path is the destination that could not be written.
	Path string
	// Cause is the underlying filesystem or encoding error.
	Cause error
}

// Error returns a formatted message describing the output failure.
func (e OutputError) Error() string {
	return fmt.Sprintf("writing results to %q: %s", e.Path, e.Cause.Error())
}

// Unwrap returns the underlying cause of the OutputError.
func (e OutputError) Unwrap() error { return e.Cause }

// TimeoutError represents a simulation timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline
// exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeForContext maps a context error to the corresponding exit code.
// DeadlineExceeded maps to the timeout code, Canceled to the canceled code,
// and anything else to the generic failure code.
func ExitCodeForContext(err error) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	default:
		return ExitErrorGeneric
	}
}
