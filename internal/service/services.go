package service

import (
	"github.com/MKhiriev/go-table-sync/internal/config"
	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/utils"
)

type Services struct {
	TableService TableService
}

func NewServices(cfg config.Server, logger *logger.Logger) *Services {
	tables := NewTableService(utils.NewUUIDGenerator(), cfg.FilesDir, logger)

	return &Services{
		TableService: NewTableValidationService().Wrap(tables),
	}
}
