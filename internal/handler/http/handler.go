package http

import (
	"time"

	"github.com/MKhiriev/mission-planner/internal/config"
	"github.com/MKhiriev/mission-planner/internal/logger"
	"github.com/MKhiriev/mission-planner/internal/service"
	"github.com/MKhiriev/mission-planner/internal/utils"
)

type Handler struct {
	services *service.Services

	security       config.Security
	requestTimeout time.Duration

	traceIDs *utils.UUIDGenerator
	metrics  *metrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		security:       cfg.Security,
		requestTimeout: cfg.Server.RequestTimeout,
		traceIDs:       utils.NewUUIDGenerator(),
		metrics:        newMetrics(),
		logger:         logger,
	}
}
