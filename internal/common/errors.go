// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Storage errors.
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEntry = errors.New("duplicate entry")

	// Extraction errors. Any of these is treated as empty input by the
	// classification pipeline; extraction is never retried.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrExtractionTimeout = errors.New("text extraction timed out")
	ErrNoTextFound       = errors.New("no text found in document")

	// Classifier errors.
	ErrModelNotTrained     = errors.New("model not trained")
	ErrEmptyCorpus         = errors.New("training corpus is empty")
	ErrInsufficientClasses = errors.New("training corpus must cover at least two categories")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsExtractionFailure reports whether err is one of the extraction failures
// that the pipeline downgrades to empty input.
func IsExtractionFailure(err error) bool {
	return errors.Is(err, ErrUnsupportedFormat) ||
		errors.Is(err, ErrExtractionTimeout) ||
		errors.Is(err, ErrNoTextFound)
}
