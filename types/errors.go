package types

import (
	"errors"
	"fmt"
)

// InputError indicates missing or unreadable result data.
type InputError struct {
	Msg string
	Err error
}

func (e *InputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("input error: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("input error: %s", e.Msg)
}

// Unwrap implements the errors.Unwrap interface
func (e *InputError) Unwrap() error {
	return e.Err
}

// NewInputError creates a new InputError
func NewInputError(msg string) *InputError {
	return &InputError{Msg: msg}
}

// WrapInputError creates a new InputError wrapping an underlying cause
func WrapInputError(msg string, err error) *InputError {
	return &InputError{Msg: msg, Err: err}
}

// IsInputError checks if the error is or wraps an InputError
func IsInputError(err error) bool {
	var inputErr *InputError
	return err != nil && errors.As(err, &inputErr)
}

// StylesheetNotFoundError indicates a configured stylesheet override path
// that could not be read. It carries the configured path.
type StylesheetNotFoundError struct {
	Path string
	Err  error
}

func (e *StylesheetNotFoundError) Error() string {
	return fmt.Sprintf("stylesheet not found at %s: %v", e.Path, e.Err)
}

// Unwrap implements the errors.Unwrap interface
func (e *StylesheetNotFoundError) Unwrap() error {
	return e.Err
}

// NewStylesheetNotFoundError creates a new StylesheetNotFoundError
func NewStylesheetNotFoundError(path string, err error) *StylesheetNotFoundError {
	return &StylesheetNotFoundError{Path: path, Err: err}
}

// IsStylesheetNotFoundError checks if the error is or wraps a StylesheetNotFoundError
func IsStylesheetNotFoundError(err error) bool {
	var styleErr *StylesheetNotFoundError
	return err != nil && errors.As(err, &styleErr)
}

// WriteError indicates a directory or file I/O failure while persisting the
// report. It carries the destination path and the underlying cause.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write report to %s: %v", e.Path, e.Err)
}

// Unwrap implements the errors.Unwrap interface
func (e *WriteError) Unwrap() error {
	return e.Err
}

// NewWriteError creates a new WriteError
func NewWriteError(path string, err error) *WriteError {
	return &WriteError{Path: path, Err: err}
}

// IsWriteError checks if the error is or wraps a WriteError
func IsWriteError(err error) bool {
	var writeErr *WriteError
	return err != nil && errors.As(err, &writeErr)
}
