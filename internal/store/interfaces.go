package store

import (
	"context"

	"github.com/MKhiriev/mission-planner/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// EntityRepository is the persistence gateway of one entity kind. Every read
// and update path ignores soft-deleted rows.
type EntityRepository[E models.Entity] interface {
	// FindAll returns every live record ordered by id.
	FindAll(ctx context.Context) ([]E, error)
	// FindByID returns the live record with the given id or [ErrEntityNotFound].
	FindByID(ctx context.Context, id int64) (E, error)
	// Insert stores a new record and returns it with id and timestamps set.
	Insert(ctx context.Context, entity E) (E, error)
	// Update overwrites every entity column of the live record with the
	// given id. It never creates a record and returns [ErrEntityNotFound]
	// when there is nothing to update.
	Update(ctx context.Context, id int64, entity E) (E, error)
	// Delete removes the record. It succeeds whether or not a row existed.
	Delete(ctx context.Context, id int64) error
}

// UserRepository stores accounts able to obtain bearer tokens.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
