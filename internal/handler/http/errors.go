// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// server expects an "Authorization" header and the request has none.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but differs from the configured value.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// errInvalidPathParameter is returned when a path segment is not a valid
	// escaped string.
	errInvalidPathParameter = errors.New("invalid path parameter")
)
