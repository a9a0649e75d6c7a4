package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/mission-planner/internal/logger"
)

// Pinger is satisfied by *sql.DB and therefore by *store.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type healthService struct {
	db Pinger

	logger *logger.Logger
}

func NewHealthService(db Pinger, logger *logger.Logger) HealthService {
	return &healthService{db: db, logger: logger}
}

func (s *healthService) Check(ctx context.Context) error {
	if s.db == nil {
		return ErrDatabaseUnavailable
	}

	if err := s.db.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("database ping failed")
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	return nil
}
