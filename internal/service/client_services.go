package service

import (
	"github.com/MKhiriev/go-table-sync/internal/adapter"
	"github.com/MKhiriev/go-table-sync/internal/config"
	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/store"
)

type ClientServices struct {
	Processor SyncProcessor
	Files     FileReconciler
	Catalog   TableCatalog
	SyncJob   ClientSyncJob
}

func NewClientServices(storages *store.ClientStorages, adapters *adapter.Adapters, cfg config.ClientStorage, logger *logger.Logger) *ClientServices {
	processor := NewSyncProcessor(storages.Tables, adapters.Tables, logger)
	files := NewFileReconciler(adapters.Files, logger)

	return &ClientServices{
		Processor: processor,
		Files:     files,
		Catalog:   NewTableCatalog(adapters.Tables, storages.Editor, logger),
		SyncJob:   NewClientSyncJob(processor, files, cfg.FilesDir, logger),
	}
}
