package adapter

import "errors"

var (
	// ErrTransport means the remote service was not reached: network
	// unreachable, timeout or connection reset.
	ErrTransport = errors.New("transport failure")

	// ErrRemoteRejection means the remote service answered with a non-2xx
	// status or an unreadable body.
	ErrRemoteRejection = errors.New("remote rejected request")
)

// Refinements of ErrRemoteRejection. Every error wrapping one of them also
// wraps ErrRemoteRejection.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrVersionConflict     = errors.New("version conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrDecodingResponse    = errors.New("failed to decode response")
)
