package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/mission-planner/internal/logger"
	"github.com/MKhiriev/mission-planner/internal/store"
	"github.com/MKhiriev/mission-planner/models"
)

// entityService passes calls through to the repository of one entity kind
// and turns empty lookups into [ErrNotFound].
type entityService[E models.Entity] struct {
	repository store.EntityRepository[E]
	kind       string

	logger *logger.Logger
}

func NewEntityService[E models.Entity](repository store.EntityRepository[E], kind string, logger *logger.Logger) EntityService[E] {
	return &entityService[E]{
		repository: repository,
		kind:       kind,
		logger:     logger,
	}
}

func (s *entityService[E]) List(ctx context.Context) ([]E, error) {
	items, err := s.repository.FindAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("kind", s.kind).Msg("listing entities failed")
		return nil, fmt.Errorf("list %s: %w", s.kind, err)
	}

	return items, nil
}

func (s *entityService[E]) Get(ctx context.Context, id int64) (E, error) {
	item, err := s.repository.FindByID(ctx, id)
	if err != nil {
		var empty E
		return empty, s.wrap(ctx, "get", id, err)
	}

	return item, nil
}

// Create stores a new record. The id and timestamps of the given value are
// replaced by the stored ones.
func (s *entityService[E]) Create(ctx context.Context, entity E) (E, error) {
	created, err := s.repository.Insert(ctx, entity)
	if err != nil {
		var empty E
		logger.FromContext(ctx).Err(err).Str("kind", s.kind).Msg("creating entity failed")
		return empty, fmt.Errorf("create %s: %w", s.kind, err)
	}

	return created, nil
}

// Update replaces every field of the live record with the given id. It
// never creates a record.
func (s *entityService[E]) Update(ctx context.Context, id int64, entity E) (E, error) {
	updated, err := s.repository.Update(ctx, id, entity)
	if err != nil {
		var empty E
		return empty, s.wrap(ctx, "update", id, err)
	}

	return updated, nil
}

func (s *entityService[E]) Delete(ctx context.Context, id int64) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("kind", s.kind).Int64("id", id).Msg("deleting entity failed")
		return fmt.Errorf("delete %s %d: %w", s.kind, id, err)
	}

	return nil
}

func (s *entityService[E]) wrap(ctx context.Context, op string, id int64, err error) error {
	if errors.Is(err, store.ErrEntityNotFound) {
		logger.FromContext(ctx).Debug().Str("kind", s.kind).Int64("id", id).Msgf("%s: no live record", op)
		return fmt.Errorf("%w: %s %d", ErrNotFound, s.kind, id)
	}

	logger.FromContext(ctx).Err(err).Str("kind", s.kind).Int64("id", id).Msgf("%s entity failed", op)
	return fmt.Errorf("%s %s %d: %w", op, s.kind, id, err)
}
