// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the requests accepted by the reference table
// service before they reach its in-memory state: table and row ids taken
// from the path, schemas, sync tags and row cells checked against the
// declared column types.
package validators

import "context"

// Validator checks one request value. fields restricts the check to the
// named parts of a composite value; no fields means everything.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
