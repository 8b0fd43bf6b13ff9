// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// reference table server handlers and middleware.
//
// All Msg* constants are human-readable message strings written into the
// "error" field of non-2xx response bodies. Keeping them in one place keeps
// the wording of the API consistent.
package app

const (
	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgUnauthorized is returned when the Authorization header is missing
	// or does not match the configured value.
	MsgUnauthorized = "unauthorized"

	// MsgRouteNotFound is returned for paths outside the table API.
	MsgRouteNotFound = "route not found"

	// MsgMethodNotAllowed is returned when the path exists but does not
	// accept the request method.
	MsgMethodNotAllowed = "method not allowed"

	// MsgInvalidPathParameter is returned when a path segment cannot be
	// unescaped.
	MsgInvalidPathParameter = "invalid path parameter"
)
