package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/mission-planner/models"
)

const (
	columnID        = "id"
	columnCreatedAt = "created_at"
	columnUpdatedAt = "updated_at"
	columnDeletedAt = "deleted_at"
)

var liveRows = sq.Eq{columnDeletedAt: nil}

// selectColumns lists every column of an entity table in scan order.
func selectColumns(e models.Entity) []string {
	columns := make([]string, 0, len(e.Columns())+4)
	columns = append(columns, columnID)
	columns = append(columns, e.Columns()...)
	return append(columns, columnCreatedAt, columnUpdatedAt, columnDeletedAt)
}

// scanTargets returns destinations matching selectColumns.
func scanTargets(e models.Entity) []any {
	base := e.Base()
	targets := make([]any, 0, len(e.Columns())+4)
	targets = append(targets, &base.ID)
	targets = append(targets, e.Targets()...)
	return append(targets, &base.CreatedAt, &base.UpdatedAt, &base.DeletedAt)
}

func (db *DB) buildSelectAllQuery(e models.Entity) (string, []any, error) {
	return db.builder.
		Select(selectColumns(e)...).
		From(e.TableName()).
		Where(liveRows).
		OrderBy(columnID).
		ToSql()
}

func (db *DB) buildSelectByIDQuery(e models.Entity, id int64) (string, []any, error) {
	return db.builder.
		Select(selectColumns(e)...).
		From(e.TableName()).
		Where(sq.Eq{columnID: id}).
		Where(liveRows).
		ToSql()
}

// buildInsertQuery inserts the entity columns with both timestamps set to now
// and returns the generated id.
func (db *DB) buildInsertQuery(e models.Entity, now time.Time) (string, []any, error) {
	columns := append(e.Columns(), columnCreatedAt, columnUpdatedAt)
	values := append(e.Values(), now, now)

	return db.builder.
		Insert(e.TableName()).
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING " + columnID).
		ToSql()
}

// buildUpdateQuery overwrites every entity column of a live row and
// refreshes updated_at.
func (db *DB) buildUpdateQuery(e models.Entity, id int64, now time.Time) (string, []any, error) {
	update := db.builder.Update(e.TableName())

	values := e.Values()
	for i, column := range e.Columns() {
		update = update.Set(column, values[i])
	}

	return update.
		Set(columnUpdatedAt, now).
		Where(sq.Eq{columnID: id}).
		Where(liveRows).
		ToSql()
}

func (db *DB) buildSoftDeleteQuery(table string, id int64, now time.Time) (string, []any, error) {
	return db.builder.
		Update(table).
		Set(columnDeletedAt, now).
		Set(columnUpdatedAt, now).
		Where(sq.Eq{columnID: id}).
		Where(liveRows).
		ToSql()
}

func (db *DB) buildHardDeleteQuery(table string, id int64) (string, []any, error) {
	return db.builder.
		Delete(table).
		Where(sq.Eq{columnID: id}).
		ToSql()
}

func (db *DB) buildCreateUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(user.TableName()).
		Columns("username", "password_hash", "roles", columnCreatedAt).
		Values(user.Username, user.PasswordHash, models.JoinRoles(user.Roles), user.CreatedAt).
		Suffix("RETURNING " + columnID).
		ToSql()
}

func (db *DB) buildFindUserByUsernameQuery(username string) (string, []any, error) {
	return db.builder.
		Select(columnID, "username", "password_hash", "roles", columnCreatedAt).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
}
