package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/mission-planner/models"
)

// Resource gives typed access to one entity collection.
type Resource[T any, P models.EntityPtr[T]] struct {
	adapter  ServerAdapter
	resource string
}

// NewResource binds the collection of P to adapter.
func NewResource[T any, P models.EntityPtr[T]](adapter ServerAdapter) *Resource[T, P] {
	return &Resource[T, P]{
		adapter:  adapter,
		resource: models.NewEntity[T, P]().Resource(),
	}
}

func (r *Resource[T, P]) List(ctx context.Context) ([]P, error) {
	raw, err := r.adapter.List(ctx, r.resource)
	if err != nil {
		return nil, err
	}

	entities := make([]P, 0, len(raw))
	for _, record := range raw {
		entity, err := r.decode(record)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}

	return entities, nil
}

func (r *Resource[T, P]) Get(ctx context.Context, id int64) (P, error) {
	raw, err := r.adapter.Get(ctx, r.resource, id)
	if err != nil {
		return nil, err
	}
	return r.decode(raw)
}

func (r *Resource[T, P]) Create(ctx context.Context, entity P) (P, error) {
	raw, err := r.adapter.Create(ctx, r.resource, entity)
	if err != nil {
		return nil, err
	}
	return r.decode(raw)
}

func (r *Resource[T, P]) Update(ctx context.Context, id int64, entity P) (P, error) {
	raw, err := r.adapter.Update(ctx, r.resource, id, entity)
	if err != nil {
		return nil, err
	}
	return r.decode(raw)
}

func (r *Resource[T, P]) Delete(ctx context.Context, id int64) error {
	return r.adapter.Delete(ctx, r.resource, id)
}

func (r *Resource[T, P]) decode(raw json.RawMessage) (P, error) {
	entity := models.NewEntity[T, P]()
	if err := json.Unmarshal(raw, entity); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.resource, err)
	}
	return entity, nil
}
