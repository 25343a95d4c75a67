// Package apperr defines the error taxonomy shared by the HTTP boundary.
// Boundary components (path resolver, token codec, range parser) return
// errors that are converted to *Error, and handlers map Kind to a status code.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies a failure by how the client should see it
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthorized
	KindNotFound
	KindRangeUnsatisfiable
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindRangeUnsatisfiable:
		return "range_unsatisfiable"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Status returns the HTTP status code for the kind
func (k Kind) Status() int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindRangeUnsatisfiable:
		return http.StatusRequestedRangeNotSatisfiable
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified failure. Message is safe to show to the client,
// Err keeps the internal cause for logs.
type Error struct {
	Err     error
	Message string
	Kind    Kind
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error
func New(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

func BadRequest(message string, cause error) *Error {
	return New(KindBadRequest, message, cause)
}

func Unauthorized(cause error) *Error {
	return New(KindUnauthorized, "unauthorized", cause)
}

func NotFound(message string, cause error) *Error {
	return New(KindNotFound, message, cause)
}

func RangeUnsatisfiable(cause error) *Error {
	return New(KindRangeUnsatisfiable, "requested range not satisfiable", cause)
}

func Internal(cause error) *Error {
	return New(KindInternal, "internal server error", cause)
}

// KindOf returns the kind of err, KindInternal for unclassified errors
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// From converts any error into *Error, wrapping unclassified errors as internal
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
