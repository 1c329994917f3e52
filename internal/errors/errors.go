package errors

import (
	"errors"
	"fmt"
)

// Exit codes for forage-checkbox
const (
	ExitSuccess        = 0
	ExitGeneralError   = 1
	ExitConfigError    = 2
	ExitPromptNotFound = 3
	ExitNotATerminal   = 4
	ExitInterrupted    = 130
)

// ErrInterrupted is returned when the user aborts a prompt.
var ErrInterrupted = New(ExitInterrupted, "interrupted")

// PromptError is the base error type for forage-checkbox
type PromptError struct {
	Code    int
	Message string
	Cause   error
}

func (e *PromptError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *PromptError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *PromptError) ExitCode() int {
	return e.Code
}

// New creates a new PromptError
func New(code int, message string) *PromptError {
	return &PromptError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a PromptError
func Wrap(code int, message string, cause error) *PromptError {
	return &PromptError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// ConfigError returns an error for a prompt that cannot be built.
// These are raised before any interaction starts.
func ConfigError(message string, cause error) *PromptError {
	return Wrap(ExitConfigError, message, cause)
}

// ConfigErrorf formats a ConfigError without a cause.
func ConfigErrorf(format string, args ...any) *PromptError {
	return New(ExitConfigError, fmt.Sprintf(format, args...))
}

// PromptNotFound returns an error for a missing named prompt
func PromptNotFound(name string) *PromptError {
	return New(ExitPromptNotFound, fmt.Sprintf("prompt not found: %s", name))
}

// NotATerminal returns an error when an interactive prompt has no terminal to run on
func NotATerminal() *PromptError {
	return New(ExitNotATerminal, "stdin is not a terminal")
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var promptErr *PromptError
	if errors.As(err, &promptErr) {
		return promptErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
