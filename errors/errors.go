package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Error is the unified error type of this module.
type Error struct {
	// Code is a machine-readable error code.
	Code Code `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the primary underlying error.
	Cause error `json:"-"`
	// Suppressed holds further failures observed after the primary one.
	Suppressed []error `json:"-"`
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Code))
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Cause != nil {
		fmt.Fprintf(&b, " (cause: %v)", e.Cause)
	}
	if n := len(e.Suppressed); n > 0 {
		fmt.Fprintf(&b, " [%d suppressed]", n)
	}
	return b.String()
}

// Unwrap exposes the cause followed by the suppressed errors.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 1+len(e.Suppressed))
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return append(errs, e.Suppressed...)
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

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

// AddSuppressed attaches further failures to the error and returns the receiver.
func (e *Error) AddSuppressed(errs ...error) *Error {
	for _, err := range errs {
		if err != nil {
			e.Suppressed = append(e.Suppressed, err)
		}
	}
	return e
}

// New creates a new Error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// --- Common Error Constructors ---

// InvalidArgument creates an error for a rejected argument.
func InvalidArgument(field, reason string) *Error {
	e := &Error{Code: CodeInvalidArgument, Message: fmt.Sprintf("invalid %s: %s", field, reason)}
	if field != "" {
		e.WithDetail("field", field)
	}
	return e
}

// Cancelled creates an error for a join on the given worker that was
// interrupted by cancellation.
func Cancelled(worker int, cause error) *Error {
	return &Error{
		Code:    CodeCancelled,
		Message: fmt.Sprintf("join of worker %d interrupted", worker),
		Details: map[string]any{"worker": worker},
		Cause:   cause,
	}
}

// WorkerFailed creates an error for a task that failed on the given worker.
func WorkerFailed(worker int, cause error) *Error {
	return &Error{
		Code:    CodeWorkerFailed,
		Message: fmt.Sprintf("task failed on worker %d", worker),
		Details: map[string]any{"worker": worker},
		Cause:   cause,
	}
}

// AsError returns err as an *Error if it is one, looking through wrappers.
func AsError(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf returns the code of err, or "" if err is not an *Error.
func CodeOf(err error) Code {
	if e, ok := AsError(err); ok {
		return e.Code
	}
	return ""
}
