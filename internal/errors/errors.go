// Package errors provides typed errors for pronghorn.
package errors

import "fmt"

// ErrorCode identifies the type of error.
type ErrorCode string

const (
	ErrConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrConfigInvalid  ErrorCode = "CONFIG_INVALID"
	ErrPromptEmpty    ErrorCode = "PROMPT_EMPTY"
	ErrPromptRead     ErrorCode = "PROMPT_READ_FAILED"
	ErrServeFailed    ErrorCode = "SERVE_FAILED"
)

// PronghornError represents a typed error with user-friendly hints.
type PronghornError struct {
	Code    ErrorCode
	Message string
	HintMsg string
	Cause   error
}

func (e *PronghornError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *PronghornError) Unwrap() error {
	return e.Cause
}

// Hint returns the user-facing hint for the error, if any.
func (e *PronghornError) Hint() string {
	return e.HintMsg
}

// New creates a new PronghornError.
func New(code ErrorCode, message, hint string) *PronghornError {
	return &PronghornError{
		Code:    code,
		Message: message,
		HintMsg: hint,
	}
}

// Wrap creates a new PronghornError wrapping an existing error.
func Wrap(code ErrorCode, message, hint string, cause error) *PronghornError {
	return &PronghornError{
		Code:    code,
		Message: message,
		HintMsg: hint,
		Cause:   cause,
	}
}

// ConfigNotFound returns an error for a missing config file.
func ConfigNotFound(path string) *PronghornError {
	return &PronghornError{
		Code:    ErrConfigNotFound,
		Message: fmt.Sprintf("config file not found: %s", path),
		HintMsg: "Pronghorn works without a config; create one at ~/.config/pronghorn/config.yaml to set defaults",
	}
}

// ConfigInvalid returns an error for invalid config.
func ConfigInvalid(reason string) *PronghornError {
	return &PronghornError{
		Code:    ErrConfigInvalid,
		Message: fmt.Sprintf("invalid config: %s", reason),
		HintMsg: "Check your config file at ~/.config/pronghorn/config.yaml",
	}
}

// PromptEmpty returns an error when no prompt text was provided to the CLI.
func PromptEmpty() *PronghornError {
	return &PronghornError{
		Code:    ErrPromptEmpty,
		Message: "no prompt provided",
		HintMsg: "Pass the prompt as an argument, via --file, or pipe it on stdin",
	}
}

// PromptRead returns an error when a prompt file could not be read.
func PromptRead(path string, cause error) *PronghornError {
	return &PronghornError{
		Code:    ErrPromptRead,
		Message: fmt.Sprintf("failed to read prompt from %s", path),
		HintMsg: "Check that the file exists and is readable",
		Cause:   cause,
	}
}

// ServeFailed returns an error when the MCP server could not run.
func ServeFailed(cause error) *PronghornError {
	return &PronghornError{
		Code:    ErrServeFailed,
		Message: "MCP server exited with an error",
		HintMsg: "Pronghorn serves MCP over stdio; make sure it is launched by an MCP client",
		Cause:   cause,
	}
}
