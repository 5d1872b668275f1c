package errors

import (
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryRuntime   Category = "runtime"
	CategoryHydration Category = "hydration"
	CategoryProgram   Category = "program"
	CategoryConfig    Category = "config"
	CategoryPublish   Category = "publish"
	CategoryBuild     Category = "build"
	CategoryCLI       Category = "cli"
)

// FtdError is a structured error with a stable code, a hint and a link to
// documentation.
type FtdError struct {
	// Code is a unique error identifier (e.g., "E040").
	Code string

	// Category is the error type (runtime, hydration, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *FtdError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *FtdError) Unwrap() error {
	return e.Wrapped
}

// Is matches another *FtdError with the same code.
func (e *FtdError) Is(target error) bool {
	t, ok := target.(*FtdError)
	if !ok || t.Code == "" {
		return false
	}
	return t.Code == e.Code
}

// WithSuggestion adds a fix suggestion to the error.
func (e *FtdError) WithSuggestion(s string) *FtdError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *FtdError) WithDetail(d string) *FtdError {
	e.Detail = d
	return e
}

// WithDetailf adds a formatted explanation to the error.
func (e *FtdError) WithDetailf(format string, args ...any) *FtdError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Wrap wraps another error.
func (e *FtdError) Wrap(err error) *FtdError {
	e.Wrapped = err
	return e
}

// New creates an FtdError from a registered error code.
func New(code string) *FtdError {
	template, ok := registry[code]
	if !ok {
		return &FtdError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &FtdError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new FtdError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *FtdError {
	return &FtdError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in an FtdError.
func FromError(err error, code string) *FtdError {
	if err == nil {
		return nil
	}
	if fe, ok := err.(*FtdError); ok {
		return fe
	}
	return New(code).Wrap(err)
}

// Code returns the code of err if it is (or wraps) an *FtdError.
func Code(err error) string {
	for err != nil {
		if fe, ok := err.(*FtdError); ok {
			return fe.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = u.Unwrap()
	}
	return ""
}
