// Package apperr defines the error taxonomy every handler reports through.
// Services attach a Kind to failures; the HTTP boundary maps the Kind to a
// status code and returns the message as {"error": "..."}.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	Unauthorized Kind = iota + 1
	NotFound
	Conflict
	ServiceUnavailable
	Internal
)

// Error carries a Kind, a message safe to return to the client, and an
// optional wrapped cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an Error with the given kind and client-facing message.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap creates an Error that records an underlying cause.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf extracts the Kind from an error chain. Anything unclassified is
// treated as Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// Message returns the client-facing message for an error. Internal causes
// are included: the original API surfaced underlying error text in its
// responses, and the web client relies on it.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	return err.Error()
}

// HTTPStatus maps an error's Kind to the response status code.
// Conflict maps to 400 rather than 409 for compatibility with the existing
// web client, which treats duplicate-email signup as a bad request.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case Unauthorized:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusBadRequest
	case ServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
