package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-table-sync/models"
)

// SyncProcessor reconciles every locally known synchronizable table against
// the remote table service.
type SyncProcessor interface {
	// Run performs one sync pass over all tables with sync enabled, in table
	// id order. Per-table failures are reported in the returned SyncReport;
	// the error is non-nil only when the pass itself could not run or was
	// aborted: ErrSyncInProgress, a local store failure or cancellation.
	//
	// Before the first table of the first run in the process, every row and
	// table left TRANSACTIONING by an interrupted pass is cleared so that it
	// goes through the normal push path again.
	Run(ctx context.Context) (models.SyncReport, error)

	// RecoverInFlight runs the recovery pass explicitly. Run calls it once
	// per process on its own.
	RecoverInFlight(ctx context.Context) error
}

// FileReconciler keeps local copies of table files in line with the remote
// manifest. It only adds or repairs files, never deletes them.
type FileReconciler interface {
	// Reconcile downloads every entry that is missing in localDir or whose
	// md5 differs. Entries are processed independently; the returned error
	// aggregates the failed ones.
	Reconcile(ctx context.Context, localDir string, entries []models.ManifestEntry) (models.FileReport, error)

	// SyncTableFiles fetches the manifest of tableID and reconciles it into
	// localDir.
	SyncTableFiles(ctx context.Context, tableID, localDir string) (models.FileReport, error)
}

// TableCatalog finds tables on the remote service and registers them
// locally.
type TableCatalog interface {
	// ListRemoteTables returns every table the remote service holds.
	ListRemoteTables(ctx context.Context) ([]models.RemoteTable, error)

	// DownloadTable registers a remote table locally with its current schema
	// and a zero tag. Its rows arrive with the next sync pass.
	DownloadTable(ctx context.Context, tableID string) error
}

// ClientSyncJob runs the sync pass in the background.
type ClientSyncJob interface {
	// Start launches the background goroutine. It syncs immediately and then
	// every interval, defaulting to 5 minutes if interval is zero or
	// negative. Any previously running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()

	// LastReport returns the report of the last finished run.
	LastReport() (models.SyncReport, bool)
}
