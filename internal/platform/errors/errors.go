// Package errors defines the structured error used across the service
// layers. Import it as perr to avoid shadowing the stdlib package.
package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies an error for HTTP mapping and logging. Values are
// stable on the wire; append, never reorder.
type ErrorCode uint16

const (
	// ErrorCodeUnknown covers anything not classified below
	ErrorCodeUnknown ErrorCode = iota

	// ErrorCodePanic marks panics recovered by middleware
	ErrorCodePanic

	// ErrorCodeUnavailable marks transient failures, including collaborator
	// reads that fail inside the resolve pipeline
	ErrorCodeUnavailable

	// ErrorCodeUnauthorized marks missing or invalid credentials
	ErrorCodeUnauthorized

	// ErrorCodeForbidden marks access-control rejections
	ErrorCodeForbidden

	// ErrorCodeInvalidArgument marks bad request parameters
	ErrorCodeInvalidArgument

	// ErrorCodeValidation marks input data that failed validation
	ErrorCodeValidation

	// ErrorCodeJSON marks malformed JSON, inbound or stored
	ErrorCodeJSON

	// ErrorCodeNotFound marks missing resources, including the legacy
	// "nothing available" empty-catalog conditions
	ErrorCodeNotFound

	// ErrorCodeDuplicateKey marks unique-constraint violations
	ErrorCodeDuplicateKey

	// ErrorCodeDB marks database errors with no finer classification
	ErrorCodeDB

	// ErrorCodePolicy marks commission policy rows missing required fields
	ErrorCodePolicy
)

// Error carries a code, a developer-facing message, and optionally the
// wrapped cause and the offending field.
type Error struct {
	orig  error
	msg   string
	code  ErrorCode
	field string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

// Unwrap exposes the cause to errors.Is / errors.As chains
func (e *Error) Unwrap() error { return e.orig }

// Code returns the classification
func (e *Error) Code() ErrorCode { return e.code }

// ErrNotFound is the shared not-found sentinel; repo scanners return it
// when a single-row query comes back empty.
var ErrNotFound = New(ErrorCodeNotFound, "not found")

// New builds an *Error from a code and a fixed message
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf is New with Sprintf formatting
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap attaches a code and message to an existing cause
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf is Wrap with Sprintf formatting
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

// Shorthand constructors for the codes the services raise directly.

func NotFoundf(format string, a ...any) error     { return Newf(ErrorCodeNotFound, format, a...) }
func JSONErrf(format string, a ...any) error      { return Newf(ErrorCodeJSON, format, a...) }
func PanicErrf(format string, a ...any) error     { return Newf(ErrorCodePanic, format, a...) }
func Unauthorizedf(format string, a ...any) error { return Newf(ErrorCodeUnauthorized, format, a...) }
func Unavailablef(format string, a ...any) error  { return Newf(ErrorCodeUnavailable, format, a...) }
func Policyf(format string, a ...any) error       { return Newf(ErrorCodePolicy, format, a...) }

// As unwraps err to (*Error, true) when one is in the chain
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Is delegates to stdlib errors.Is so callers need a single import
func Is(err, target error) bool { return stderrs.Is(err, target) }

// CodeOf pulls the ErrorCode out of any error chain, Unknown when absent
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// HTTPStatusCode maps a code to the status the API responds with
func HTTPStatusCode(c ErrorCode) int {
	switch c {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeInvalidArgument:
		return http.StatusUnprocessableEntity
	case ErrorCodeDuplicateKey:
		return http.StatusConflict
	case ErrorCodeValidation, ErrorCodeJSON:
		return http.StatusBadRequest
	case ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrorCodeForbidden:
		return http.StatusForbidden
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// HTTPStatus maps any error to a status via CodeOf
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// Wire is the JSON body the API emits for a failed request
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

// WireFrom renders any error as a Wire payload. A nil error yields the
// zero Wire.
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return Wire{Code: e.code, Message: e.msg, Field: e.field}
	}
	return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}
