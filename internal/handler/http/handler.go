package http

import (
	"github.com/MKhiriev/go-table-sync/internal/config"
	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/service"
)

type Handler struct {
	services *service.Services

	// authHeader is compared with the Authorization header of every API
	// request. Empty disables the check.
	authHeader string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Bool("auth", cfg.AuthHeader != "").Msg("http handler created")
	return &Handler{
		services:   services,
		authHeader: cfg.AuthHeader,
		logger:     logger,
	}
}
