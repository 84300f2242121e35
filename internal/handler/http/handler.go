package http

import (
	"github.com/MKhiriev/sstatic/internal/logger"
	"github.com/MKhiriev/sstatic/internal/service"
)

type Handler struct {
	services *service.Services

	// staticPath is the first segment of the static route; empty disables
	// the route.
	staticPath string

	logger *logger.Logger
}

func NewHandler(services *service.Services, staticPath string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		staticPath: staticPath,
		logger:     logger,
	}
}
