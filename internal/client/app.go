package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-table-sync/internal/adapter"
	"github.com/MKhiriev/go-table-sync/internal/config"
	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/service"
	"github.com/MKhiriev/go-table-sync/internal/store"
	"github.com/MKhiriev/go-table-sync/internal/workers"
	"github.com/MKhiriev/go-table-sync/models"
)

type App struct {
	storages *store.ClientStorages
	adapters *adapter.Adapters
	services *service.ClientServices
	workers  *workers.Workers

	logger *logger.Logger
}

// NewApp opens the local store and builds the client stack. Nothing runs
// until Run or SyncNow is called. The caller owns the App and must call
// Close when Run is not used.
func NewApp(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	adapters, err := adapter.NewHTTPAdapters(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create adapters: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	services := service.NewClientServices(storages, adapters, cfg.Storage, logger)

	return &App{
		storages: storages,
		adapters: adapters,
		services: services,
		workers:  workers.NewWorkers(logger, workers.NewSyncWorker(services.SyncJob, cfg.Workers)),
		logger:   logger,
	}, nil
}

// Run recovers rows left in flight by a previous process, starts the
// periodic sync and blocks until ctx is done. The local store is closed on
// return.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	if err := a.services.Processor.RecoverInFlight(ctx); err != nil {
		return fmt.Errorf("recover in-flight rows: %w", err)
	}

	a.workers.Start(ctx)
	a.logger.Info().Msg("client started")

	<-ctx.Done()

	a.workers.Stop()
	a.logger.Info().Msg("client stopped")

	return nil
}

// SyncNow runs one sync pass outside the schedule. It returns
// [service.ErrSyncInProgress] while the background pass is running.
func (a *App) SyncNow(ctx context.Context) (models.SyncReport, error) {
	return a.services.Processor.Run(ctx)
}

// LastReport returns the report of the last background pass.
func (a *App) LastReport() (models.SyncReport, bool) {
	return a.services.SyncJob.LastReport()
}

// Editor returns the local editor used to change tables and rows and to
// resolve conflicts.
func (a *App) Editor() store.LocalEditor {
	return a.storages.Editor
}

// RemoteTables lists the tables held by the remote service, including ones
// this client has never seen.
func (a *App) RemoteTables(ctx context.Context) ([]models.RemoteTable, error) {
	return a.services.Catalog.ListRemoteTables(ctx)
}

// DownloadTable registers a remote table locally. Its rows are pulled by the
// next sync pass.
func (a *App) DownloadTable(ctx context.Context, tableID string) error {
	return a.services.Catalog.DownloadTable(ctx, tableID)
}

// SetAuthHeader replaces the Authorization header sent with every request,
// e.g. after a pass reported needs_reauth.
func (a *App) SetAuthHeader(value string) {
	a.adapters.Tables.SetAuthHeader(value)
}

func (a *App) Close() error {
	return a.storages.Close()
}
