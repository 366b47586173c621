package errors

import (
	"fmt"
	"strings"
)

// ParseError represents an option file that could not be decoded, with optional line metadata.
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

// ValidationError captures an option that fails the lint rules.
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

// ResolutionError describes a symbolic name that could not be bound to an implementation.
type ResolutionError struct {
	Kind    string
	Name    string
	Reason  string
	Install []string
	Err     error
}

// NewResolutionError constructs a ResolutionError for the given kind and name.
func NewResolutionError(kind, name, reason string, install []string, err error) error {
	return &ResolutionError{
		Kind:    kind,
		Name:    name,
		Reason:  reason,
		Install: append([]string(nil), install...),
		Err:     err,
	}
}

func (e *ResolutionError) Error() string {
	if e == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "resolution error [%s %q]: %s", e.Kind, e.Name, e.Reason)
	if len(e.Install) > 0 {
		fmt.Fprintf(&b, " (install: %s)", strings.Join(e.Install, " "))
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap exposes the underlying error.
func (e *ResolutionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
