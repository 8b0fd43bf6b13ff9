package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-table-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LocalTableStore is the row store consumed by the sync processor. Every
// method is atomic on its own; ApplyIncoming is atomic for the whole pull.
type LocalTableStore interface {
	ListSyncTables(ctx context.Context) ([]models.Table, error)
	GetTable(ctx context.Context, tableID string) (models.Table, error)
	GetTableState(ctx context.Context, tableID string) (models.TableState, error)
	SetTableState(ctx context.Context, tableID string, state models.TableState) error
	SetTableTransactioning(ctx context.Context, tableID string, transactioning bool) error
	GetTableSyncTag(ctx context.Context, tableID string) (models.SyncTag, error)
	SetTableSyncTag(ctx context.Context, tableID string, tag models.SyncTag) error
	MarkTableSynced(ctx context.Context, tableID string, at time.Time) error
	DeleteTablePermanently(ctx context.Context, tableID string) error

	GetRowStates(ctx context.Context, tableID string) (models.RowStates, error)
	GetRowsByState(ctx context.Context, tableID string, state models.SyncState) ([]models.LocalRow, error)
	SetRowsTransactioning(ctx context.Context, tableID string, rowIDs []string, transactioning bool) error
	ApplyIncoming(ctx context.Context, tableID string, changes models.IncomingChanges) error
	ConfirmPushed(ctx context.Context, tableID string, state models.SyncState, rowTags map[string]string) error
	PurgeRows(ctx context.Context, tableID string, rowIDs []string) error
	ResetTransactioning(ctx context.Context) (rows int64, tables int64, err error)
}

// LocalEditor applies user edits to the local store following the row and
// table lifecycle rules.
type LocalEditor interface {
	CreateLocalTable(ctx context.Context, table models.Table) error
	AdoptRemoteTable(ctx context.Context, table models.Table) error
	UpdateLocalSchema(ctx context.Context, tableID string, schema models.Schema) error
	MarkTableForDeletion(ctx context.Context, tableID string) error
	SetSyncEnabled(ctx context.Context, tableID string, enabled bool) error

	InsertRow(ctx context.Context, tableID string, values map[string]string) (models.LocalRow, error)
	UpdateRow(ctx context.Context, tableID, rowID string, values map[string]string) error
	DeleteRow(ctx context.Context, tableID, rowID string) error
	GetRow(ctx context.Context, tableID, rowID string) (models.LocalRow, error)
	ListRows(ctx context.Context, tableID string) ([]models.LocalRow, error)

	ListConflicts(ctx context.Context, tableID string) ([]models.Conflict, error)
	ResolveConflict(ctx context.Context, tableID, rowID string, resolution models.ConflictResolution) error
}
