package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/mission-planner/internal/logger"
	"github.com/MKhiriev/mission-planner/internal/service"
)

const defaultProbeInterval = 15 * time.Second

// healthProbe periodically pings the database and reports the outcome.
type healthProbe struct {
	checker  service.HealthService
	reporter StatusReporter
	interval time.Duration

	logger *logger.Logger
}

func newHealthProbe(checker service.HealthService, reporter StatusReporter, interval time.Duration, logger *logger.Logger) *healthProbe {
	if interval <= 0 {
		interval = defaultProbeInterval
	}

	return &healthProbe{
		checker:  checker,
		reporter: reporter,
		interval: interval,
		logger:   logger,
	}
}

// Run probes once synchronously, then on every tick until ctx is done.
func (p *healthProbe) Run(ctx context.Context) {
	p.probe(ctx)

	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				p.logger.Debug().Msg("health probe stopped")
				return
			case <-ticker.C:
				p.probe(ctx)
			}
		}
	}()
}

func (p *healthProbe) probe(ctx context.Context) {
	checkCtx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	if err := p.checker.Check(checkCtx); err != nil {
		p.logger.Warn().Err(err).Msg("health probe failed")
		p.reporter.SetServing(false)
		return
	}

	p.reporter.SetServing(true)
}
