package errors

import (
	"fmt"
)

// InvalidArgumentError reports a caller-supplied value that violates a
// function's input contract.
type InvalidArgumentError struct {
	Param   string
	Value   any
	Message string
}

// NewInvalidArgumentError constructs an InvalidArgumentError.
func NewInvalidArgumentError(param string, value any, message string) error {
	return &InvalidArgumentError{Param: param, Value: value, Message: message}
}

func (e *InvalidArgumentError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid argument: %s=%v: %s", e.Param, e.Value, e.Message)
}

// ParseError represents a theme file parsing failure with optional line metadata.
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

// ValidationError captures theme or props validation issues.
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

// RenderError represents a failure while executing a component template.
type RenderError struct {
	Component string
	Err       error
}

// NewRenderError constructs a RenderError.
func NewRenderError(component string, err error) error {
	return &RenderError{Component: component, Err: err}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("render error: %s: %v", e.Component, e.Err)
	}
	return fmt.Sprintf("render error: %s", e.Component)
}

// Unwrap exposes the underlying error.
func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
