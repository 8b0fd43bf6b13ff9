package service

import "errors"

var (
	// ErrSyncInProgress is returned by SyncProcessor.Run when another run of
	// the same processor has not finished yet.
	ErrSyncInProgress = errors.New("sync already in progress")

	ErrPathEscapesDir  = errors.New("manifest filename escapes the local directory")
	ErrHashMismatch    = errors.New("downloaded file hash mismatch")
	ErrFilesDisabled   = errors.New("file reconciliation is not configured")
	ErrInvalidManifest = errors.New("invalid manifest entry")
)

// Reference table service errors.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrTableNotFound       = errors.New("table not found")
	ErrRowNotFound         = errors.New("row not found")
	ErrFileNotFound        = errors.New("file not found")
	ErrStaleVersionTag     = errors.New("stale version tag")
	ErrStaleSchemaTag      = errors.New("stale schema tag")
	ErrRowAlreadyExists    = errors.New("row already exists with different values")
)
