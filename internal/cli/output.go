package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/roach88/routinely/internal/routine"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Domain failure (validation, unknown routine, declined confirmation)
	ExitCommandError = 2 // Command error (bad arguments, unreadable config, storage failures)
)

// Error codes carried in JSON error responses.
const (
	ErrCodeValidation = "E001" // form validation failed
	ErrCodeNotFound   = "E002" // routine id unknown
	ErrCodeStorage    = "E003" // persistence failure
	ErrCodeUsage      = "E004" // bad argument or flag value
	ErrCodeGeneric    = "E999" // anything else
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for verbose/diagnostic output (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // success payload
	Error  *CLIError   `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string      `json:"code"`              // "E001", "E002", etc.
	Message string      `json:"message"`           // human-readable message
	Details interface{} `json:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format. In text
// mode the caller supplies the rendered string; in JSON mode the data
// payload is encoded instead.
func (f *OutputFormatter) Success(text string, data interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	fmt.Fprintln(f.Writer, text)
	return nil
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if details != nil {
		fmt.Fprintf(f.Writer, "%v\n", details)
	}
	return nil
}

// outputDomainError prints a domain error and returns the matching
// ExitError. Validation failures exit with ExitFailure and list the
// failing fields; anything else is a storage-level command error.
func outputDomainError(f *OutputFormatter, err error) error {
	if ve, ok := routine.IsValidation(err); ok {
		details := make([]string, len(ve.Fields))
		for i, fe := range ve.Fields {
			details[i] = fe.Message
		}
		_ = f.Error(ErrCodeValidation, "validation failed", strings.Join(details, " "))
		return WrapExitError(ExitFailure, "validation failed", err)
	}
	_ = f.Error(ErrCodeStorage, err.Error(), nil)
	return WrapExitError(ExitCommandError, "storage failure", err)
}

// outputNotFound prints the unknown-routine error and returns its
// ExitError.
func outputNotFound(f *OutputFormatter, id string) error {
	msg := fmt.Sprintf("no routine with id %q", id)
	_ = f.Error(ErrCodeNotFound, msg, nil)
	return NewExitError(ExitFailure, msg)
}

// VerboseLog outputs a message only if verbose mode is enabled.
// Uses ErrWriter if set, otherwise falls back to Writer.
// When format is JSON, verbose logs go to ErrWriter to avoid corrupting JSON output.
func (f *OutputFormatter) VerboseLog(format string, args ...interface{}) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}
