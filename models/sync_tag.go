// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strings"
)

// SyncTagDelimiter separates the data version from the schema version in the
// encoded form of a [SyncTag].
const SyncTagDelimiter = "|"

// ErrMalformedSyncTag is returned when a persisted or received sync tag cannot
// be decoded. It signals local corruption, so retrying does not help.
var ErrMalformedSyncTag = errors.New("malformed sync tag")

// SyncTag identifies the remote state a local table was last reconciled
// against. DataVersion advances on every row change, SchemaVersion on every
// schema or properties change; the two counters evolve independently.
//
// The zero value means "never synchronized" and requests a full snapshot on
// pull.
type SyncTag struct {
	DataVersion   string `json:"data_etag"`
	SchemaVersion string `json:"schema_etag"`
}

// ParseSyncTag decodes s produced by [SyncTag.String].
func ParseSyncTag(s string) (SyncTag, error) {
	parts := strings.Split(s, SyncTagDelimiter)
	if len(parts) != 2 {
		return SyncTag{}, fmt.Errorf("%w: %q has %d fields", ErrMalformedSyncTag, s, len(parts))
	}

	return SyncTag{DataVersion: parts[0], SchemaVersion: parts[1]}, nil
}

// String encodes the tag as "<data>|<schema>".
func (t SyncTag) String() string {
	return t.DataVersion + SyncTagDelimiter + t.SchemaVersion
}

// Validate reports an error if either field contains the delimiter, which
// would make the encoded form ambiguous.
func (t SyncTag) Validate() error {
	if strings.Contains(t.DataVersion, SyncTagDelimiter) || strings.Contains(t.SchemaVersion, SyncTagDelimiter) {
		return fmt.Errorf("%w: field contains %q", ErrMalformedSyncTag, SyncTagDelimiter)
	}
	return nil
}

// Equal reports structural equality.
func (t SyncTag) Equal(other SyncTag) bool {
	return t.DataVersion == other.DataVersion && t.SchemaVersion == other.SchemaVersion
}

// IsZero reports whether the table has never been synchronized.
func (t SyncTag) IsZero() bool {
	return t.DataVersion == "" && t.SchemaVersion == ""
}

// WithSchema returns a copy of t with a new schema version.
func (t SyncTag) WithSchema(schemaVersion string) SyncTag {
	t.SchemaVersion = schemaVersion
	return t
}
