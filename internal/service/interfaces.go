package service

import (
	"context"
	"os"

	"github.com/MKhiriev/go-table-sync/models"
)

// TableService is the reference remote table service. It keeps every table
// in memory and implements the server side of the sync protocol.
//
// Every data write takes the table tag the client holds as base. A new
// data version is handed back only when base was current before the write;
// otherwise base comes back unchanged so that the client still pulls the
// changes it has not seen.
type TableService interface {
	// ListTables returns every table with its current tag, ordered by id.
	ListTables(ctx context.Context) ([]models.RemoteTable, error)
	CreateTable(ctx context.Context, tableID string, schema models.Schema) (models.SyncTag, error)
	DeleteTable(ctx context.Context, tableID string) error
	Changes(ctx context.Context, tableID string, since models.SyncTag) (models.ChangesResponse, error)
	PutRow(ctx context.Context, tableID, rowID string, base models.SyncTag, req models.PutRowRequest) (models.RowWriteResponse, error)
	DeleteRow(ctx context.Context, tableID, rowID, versionTag string, base models.SyncTag) (models.RowWriteResponse, error)
	GetSchema(ctx context.Context, tableID string) (models.SchemaResponse, error)
	SetSchema(ctx context.Context, tableID string, req models.SetSchemaRequest) (models.SyncTag, error)

	// Manifest lists the files stored for tableID.
	Manifest(ctx context.Context, tableID string) ([]models.ManifestEntry, error)
	// OpenFile opens one file of the manifest. The caller closes it.
	OpenFile(ctx context.Context, tableID, name string) (*os.File, error)
}

// TableServiceWrapper defines middleware composition for TableService.
// Implementations wrap an existing TableService to add behavior such as
// validation.
type TableServiceWrapper interface {
	Wrap(TableService) TableService // returns a decorated TableService applying additional behavior
}
