package workers

import (
	"context"

	"github.com/MKhiriev/mission-planner/internal/config"
	"github.com/MKhiriev/mission-planner/internal/logger"
	"github.com/MKhiriev/mission-planner/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background workers. The health probe is only added
// when there is a reporter to feed.
func NewWorkers(services *service.Services, reporter StatusReporter, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if reporter != nil && services != nil && services.HealthService != nil {
		w.workers = append(w.workers, newHealthProbe(services.HealthService, reporter, cfg.HealthCheckInterval, logger))
	}

	return w
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
