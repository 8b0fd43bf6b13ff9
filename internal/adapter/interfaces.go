// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the remote table service.
//
// The primary abstraction is [TableSynchronizer], which decouples the sync
// processor from the underlying protocol. [FileTransport] serves the file
// manifest reconciler. Both are implemented over HTTP/JSON with resty.
//
// Errors are classified into [ErrTransport] (the service was not reached)
// and [ErrRemoteRejection] (the service answered with a non-2xx status),
// refined by [ErrUnauthorized], [ErrVersionConflict] and [ErrNotFound] so
// that callers can use [errors.Is] for transport-agnostic handling.
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-table-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// TableSynchronizer is the remote side of table synchronization.
type TableSynchronizer interface {
	// SetAuthHeader stores the opaque value sent as the Authorization header
	// of every subsequent call.
	SetAuthHeader(value string)

	// ListRemoteTables returns every table the remote service holds.
	ListRemoteTables(ctx context.Context) ([]models.RemoteTable, error)

	// CreateRemoteTable creates the table with the given schema. A table that
	// already exists yields the zero tag, so the next pull is a snapshot.
	CreateRemoteTable(ctx context.Context, tableID string, schema models.Schema) (models.SyncTag, error)

	// DeleteRemoteTable removes the table remotely. A table that does not
	// exist yields an error wrapping [ErrNotFound].
	DeleteRemoteTable(ctx context.Context, tableID string) error

	// Pull returns every row changed since the given tag. A zero tag asks for
	// a full snapshot.
	Pull(ctx context.Context, tableID string, since models.SyncTag) (models.IncomingModification, error)

	// PushInsert, PushUpdate and PushDelete send rows one by one and stop at
	// the first failure. The returned Modification holds the rows confirmed
	// so far even when an error is returned.
	PushInsert(ctx context.Context, tableID string, base models.SyncTag, rows []models.Row) (models.Modification, error)
	PushUpdate(ctx context.Context, tableID string, base models.SyncTag, rows []models.Row) (models.Modification, error)
	PushDelete(ctx context.Context, tableID string, base models.SyncTag, rows []models.Row) (models.Modification, error)

	// GetSchema returns the current remote schema and table tag.
	GetSchema(ctx context.Context, tableID string) (models.Schema, models.SyncTag, error)

	// SetSchema replaces the remote schema. current.SchemaVersion must match
	// the remote one, otherwise [ErrVersionConflict] is returned.
	SetSchema(ctx context.Context, tableID string, current models.SyncTag, schema models.Schema) (models.SyncTag, error)
}

// FileTransport fetches file manifests and file contents.
type FileTransport interface {
	GetManifest(ctx context.Context, tableID string) ([]models.ManifestEntry, error)
	// Download streams the body of url into w. Relative urls are resolved
	// against the service address.
	Download(ctx context.Context, url string, w io.Writer) error
}
