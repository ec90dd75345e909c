package backend

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed backend call.
type ErrorKind string

// Failure classes, mirroring the error taxonomy of the API contract.
const (
	// KindServer: the backend answered with a structured failure and a
	// message meant for display.
	KindServer ErrorKind = "server"
	// KindUnauthorized: HTTP 401; credentials have already been cleared.
	KindUnauthorized ErrorKind = "unauthorized"
	// KindConnectivity: the request was sent but no usable response arrived
	// (timeout, connection refused, DNS failure).
	KindConnectivity ErrorKind = "connectivity"
	// KindLocal: the request could not even be constructed.
	KindLocal ErrorKind = "local"
)

// Fixed fallback messages for failures the backend did not describe.
const (
	msgConnectivity = "Network error. Please check your connection and try again."
	msgLocal        = "Something went wrong. Please try again."
	msgUnauthorized = "Your session has expired. Please log in again."
	msgServer       = "Request failed."
)

// Error describes a failed call to the backend.
type Error struct {
	Op     string
	Kind   ErrorKind
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return "backend error"
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func wrapError(op string, kind ErrorKind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Kind: kind, Err: err}
}

// Message maps any failed call onto a displayable string. Structured backend
// failures surface the server-supplied message; everything else collapses to
// a fixed generic message per kind. It never panics and never returns an
// empty string for a non-nil error.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var be *Error
	if !errors.As(err, &be) {
		return msgLocal
	}
	switch be.Kind {
	case KindServer:
		if be.Err != nil && be.Err.Error() != "" {
			return be.Err.Error()
		}
		return msgServer
	case KindUnauthorized:
		return msgUnauthorized
	case KindConnectivity:
		return msgConnectivity
	default:
		return msgLocal
	}
}

// IsUnauthorized reports whether err represents a 401 response.
func IsUnauthorized(err error) bool {
	var be *Error
	return errors.As(err, &be) && be.Kind == KindUnauthorized
}
