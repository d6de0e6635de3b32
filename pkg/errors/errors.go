package errors

import (
	"fmt"
)

// ParseError represents a palette file parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures palette validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ColorError reports a color whose channel values violate the model invariants
// (out-of-range RGB, non-finite lightness/chroma/hue).
type ColorError struct {
	Name    string
	Message string
	Err     error
}

// NewColorError constructs a ColorError for the named color.
func NewColorError(name, message string, err error) error {
	return &ColorError{Name: name, Message: message, Err: err}
}

func (e *ColorError) Error() string {
	if e == nil {
		return ""
	}
	if e.Name != "" {
		return fmt.Sprintf("color error [%s]: %s", e.Name, e.Message)
	}
	return fmt.Sprintf("color error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ColorError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
