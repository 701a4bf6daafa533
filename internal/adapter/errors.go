package adapter

import "errors"

// Sentinel errors the typed operations map HTTP failures onto. Callers use
// errors.Is for transport-agnostic handling; the wrapped text carries the
// normalized message extracted from the response body.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrValidation          = errors.New("validation failed")
	ErrTooManyRequests     = errors.New("rate limited")
	ErrInternalServerError = errors.New("internal server error")

	// ErrUnavailable covers failures without an HTTP response: timeouts
	// and connection-level errors.
	ErrUnavailable = errors.New("server unavailable")
)
