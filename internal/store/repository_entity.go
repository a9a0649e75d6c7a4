package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/mission-planner/internal/config"
	"github.com/MKhiriev/mission-planner/internal/logger"
	"github.com/MKhiriev/mission-planner/models"
)

// entityRepository is the database/sql implementation of [EntityRepository]
// shared by every entity kind. T is the record struct and P its pointer type.
//
// Timestamps are taken from the Go clock, truncated to microseconds so that
// a freshly written record equals the one read back from PostgreSQL.
type entityRepository[T any, P models.EntityPtr[T]] struct {
	*DB
	softDelete bool
	now        func() time.Time
	logger     *logger.Logger
}

// NewEntityRepository constructs an [EntityRepository] for the entity kind
// P. deleteMode selects between soft and hard deletes.
func NewEntityRepository[T any, P models.EntityPtr[T]](db *DB, deleteMode string, logger *logger.Logger) EntityRepository[P] {
	kind := P(new(T)).TableName()
	logger.Debug().Str("table", kind).Str("delete_mode", deleteMode).Msg("creating entity repository")

	return &entityRepository[T, P]{
		DB:         db,
		softDelete: deleteMode != config.DeleteModeHard,
		now: func() time.Time {
			return time.Now().UTC().Truncate(time.Microsecond)
		},
		logger: logger,
	}
}

func (r *entityRepository[T, P]) table() string {
	return P(new(T)).TableName()
}

// FindAll returns every live record ordered by id. An empty table yields an
// empty, non-nil slice.
func (r *entityRepository[T, P]) FindAll(ctx context.Context) ([]P, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildSelectAllQuery(P(new(T)))
	if err != nil {
		log.Err(err).Str("func", "entityRepository.FindAll").Str("table", r.table()).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "entityRepository.FindAll").Str("table", r.table()).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]P, 0, 16)
	for rows.Next() {
		item := P(new(T))
		if scanErr := rows.Scan(scanTargets(item)...); scanErr != nil {
			log.Err(scanErr).Str("func", "entityRepository.FindAll").Str("table", r.table()).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "entityRepository.FindAll").Str("table", r.table()).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// FindByID returns the live record with the given id.
func (r *entityRepository[T, P]) FindByID(ctx context.Context, id int64) (P, error) {
	return r.findByID(ctx, r.DB.DB, id)
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *entityRepository[T, P]) findByID(ctx context.Context, q queryRower, id int64) (P, error) {
	log := logger.FromContext(ctx)

	item := P(new(T))
	query, args, err := r.buildSelectByIDQuery(item, id)
	if err != nil {
		log.Err(err).Str("func", "entityRepository.FindByID").Str("table", r.table()).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = q.QueryRowContext(ctx, query, args...).Scan(scanTargets(item)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEntityNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "entityRepository.FindByID").Str("table", r.table()).Int64("id", id).Msg("failed to scan row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// Insert stores entity and returns a copy carrying the generated id and
// timestamps. Client-supplied audit fields are ignored.
func (r *entityRepository[T, P]) Insert(ctx context.Context, entity P) (P, error) {
	log := logger.FromContext(ctx)

	now := r.now()
	query, args, err := r.buildInsertQuery(entity, now)
	if err != nil {
		log.Err(err).Str("func", "entityRepository.Insert").Str("table", r.table()).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = r.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).
			Str("func", "entityRepository.Insert").
			Str("table", r.table()).
			Stringer("classification", r.classify(err)).
			Msg("failed to insert row")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	stored := P(new(T))
	*stored = *entity
	*stored.Base() = models.Audit{ID: id, CreatedAt: now, UpdatedAt: now}

	return stored, nil
}

// Update overwrites the entity columns of the live row with the given id and
// returns its new state. The write and the read-back share a transaction.
func (r *entityRepository[T, P]) Update(ctx context.Context, id int64, entity P) (P, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildUpdateQuery(entity, id, r.now())
	if err != nil {
		log.Err(err).Str("func", "entityRepository.Update").Str("table", r.table()).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "entityRepository.Update").Msg("failed to begin transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "entityRepository.Update").Str("table", r.table()).Int64("id", id).Msg("failed to update row")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return nil, ErrEntityNotFound
	}

	updated, err := r.findByID(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "entityRepository.Update").Msg("failed to commit transaction")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return updated, nil
}

// Delete soft- or hard-deletes the row with the given id. Missing rows are
// not an error.
func (r *entityRepository[T, P]) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	var (
		query string
		args  []any
		err   error
	)
	if r.softDelete {
		query, args, err = r.buildSoftDeleteQuery(r.table(), id, r.now())
	} else {
		query, args, err = r.buildHardDeleteQuery(r.table(), id)
	}
	if err != nil {
		log.Err(err).Str("func", "entityRepository.Delete").Str("table", r.table()).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "entityRepository.Delete").Str("table", r.table()).Int64("id", id).Msg("failed to delete row")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
