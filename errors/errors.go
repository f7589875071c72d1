package errors

import (
	stderrors "errors"
	"fmt"
)

// Error is the structured error type for registry and binding failures.
type Error struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new Error.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// --- Common Error Constructors ---

// UnknownGroup creates a new Error for a group that was never built.
func UnknownGroup(group string) *Error {
	return &Error{
		Code: ErrCodeUnknownGroup, Message: fmt.Sprintf("group %q has not been built", group),
		Details: map[string]any{"group": group},
	}
}

// UnknownReference creates a new Error for a name absent from an existing group.
func UnknownReference(group, name string) *Error {
	return &Error{
		Code: ErrCodeUnknownReference, Message: fmt.Sprintf("group %q has no reference %q", group, name),
		Details: map[string]any{"group": group, "name": name},
	}
}

// ModuleResolution creates a new Error for a lazy binding whose module is not registered.
func ModuleResolution(module string) *Error {
	return &Error{
		Code: ErrCodeModuleResolution, Message: fmt.Sprintf("module %q is not registered", module),
		Details: map[string]any{"module": module},
	}
}

// InvalidReference creates a new Error for a value with no derivable name.
func InvalidReference(reason string) *Error {
	return &Error{
		Code: ErrCodeInvalidReference, Message: fmt.Sprintf("cannot derive reference name: %s", reason),
	}
}

// InvalidConfig creates a new Error for a group definition file that failed to load.
func InvalidConfig(reason string) *Error {
	return &Error{
		Code: ErrCodeInvalidConfig, Message: fmt.Sprintf("invalid group configuration: %s", reason),
	}
}

// --- Inspection helpers ---

// AsError extracts an *Error from err's chain, or nil.
func AsError(err error) *Error {
	var e *Error
	if stderrors.As(err, &e) {
		return e
	}
	return nil
}

// IsCode reports whether err carries the given error code.
func IsCode(err error, code ErrorCode) bool {
	if e := AsError(err); e != nil {
		return e.Code == code
	}
	return false
}

// CodeOf returns the error code carried by err, or an empty code.
func CodeOf(err error) ErrorCode {
	if e := AsError(err); e != nil {
		return e.Code
	}
	return ""
}
