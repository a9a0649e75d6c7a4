// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/mission-planner/internal/logger"
	"github.com/MKhiriev/mission-planner/migrations"
	"github.com/MKhiriev/mission-planner/models"
)

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func queryDB(dialect string) *DB {
	return newDB(nil, dialect, nil, logger.Nop())
}

func Test_selectColumns_Order(t *testing.T) {
	cols := selectColumns(&models.MissionAsset{})
	assert.Equal(t, []string{
		"id", "name", "asset_type", "call_sign", "quantity",
		"created_at", "updated_at", "deleted_at",
	}, cols)
}

func Test_scanTargets_MatchColumns(t *testing.T) {
	entities := []models.Entity{
		&models.Mission{},
		&models.MissionAsset{},
		&models.MissionPersonnel{},
		&models.MissionStatus{},
		&models.Intelligence{},
		&models.RiskAssessment{},
	}

	for _, e := range entities {
		t.Run(e.TableName(), func(t *testing.T) {
			assert.Len(t, scanTargets(e), len(selectColumns(e)))
			assert.Len(t, e.Values(), len(e.Columns()))
		})
	}
}

func Test_buildSelectAllQuery(t *testing.T) {
	query, args, err := queryDB(migrations.DialectPostgres).buildSelectAllQuery(&models.Mission{})
	require.NoError(t, err)

	assert.Empty(t, args)
	assert.Equal(t,
		"SELECT id, name, description, classification, priority, starts_at, ends_at, created_at, updated_at, deleted_at "+
			"FROM mission WHERE deleted_at IS NULL ORDER BY id",
		query)
}

func Test_buildSelectByIDQuery_Placeholders(t *testing.T) {
	tests := []struct {
		dialect string
		want    string
	}{
		{migrations.DialectPostgres, "WHERE id = $1 AND deleted_at IS NULL"},
		{migrations.DialectSQLite, "WHERE id = ? AND deleted_at IS NULL"},
	}

	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			query, args, err := queryDB(tt.dialect).buildSelectByIDQuery(&models.Intelligence{}, 42)
			require.NoError(t, err)

			require.Equal(t, []any{int64(42)}, args)
			assert.True(t, strings.HasSuffix(query, tt.want), query)
			assert.Contains(t, query, "FROM intelligence")
		})
	}
}

func Test_buildInsertQuery(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	mission := &models.Mission{Name: strPtr("Alpha"), Priority: int64Ptr(2)}
	mission.ID = 99 // ignored

	query, args, err := queryDB(migrations.DialectPostgres).buildInsertQuery(mission, now)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.True(t, strings.HasPrefix(q, "insert into mission "))
	require.True(t, strings.HasSuffix(q, "returning id"))
	assert.Contains(t, query, "$8")
	assert.NotContains(t, q, "deleted_at")

	require.Len(t, args, 8)
	assert.Equal(t, mission.Name, args[0])
	assert.Equal(t, mission.Priority, args[3])
	assert.Equal(t, now, args[6])
	assert.Equal(t, now, args[7])
}

func Test_buildUpdateQuery(t *testing.T) {
	now := time.Now()
	status := &models.MissionStatus{Status: strPtr("ACTIVE")}

	query, args, err := queryDB(migrations.DialectPostgres).buildUpdateQuery(status, 7, now)
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE mission_status SET status = $1, summary = $2, reported_by = $3, updated_at = $4 "+
			"WHERE id = $5 AND deleted_at IS NULL",
		query)
	require.Len(t, args, 5)
	assert.Equal(t, status.Status, args[0])
	assert.Equal(t, now, args[3])
	assert.Equal(t, int64(7), args[4])
}

func Test_buildSoftDeleteQuery(t *testing.T) {
	now := time.Now()

	query, args, err := queryDB(migrations.DialectSQLite).buildSoftDeleteQuery("risk_assessment", 3, now)
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE risk_assessment SET deleted_at = ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL",
		query)
	assert.Equal(t, []any{now, now, int64(3)}, args)
}

func Test_buildHardDeleteQuery(t *testing.T) {
	query, args, err := queryDB(migrations.DialectPostgres).buildHardDeleteQuery("mission_personnel", 5)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM mission_personnel WHERE id = $1", query)
	assert.Equal(t, []any{int64(5)}, args)
}

func Test_buildUserQueries(t *testing.T) {
	db := queryDB(migrations.DialectPostgres)

	query, args, err := db.buildCreateUserQuery(models.User{
		Username:     "ops",
		PasswordHash: "hash",
		Roles:        []string{"ADMIN", "USER"},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(query, "INSERT INTO users"))
	assert.Equal(t, "ADMIN,USER", args[2])

	query, args, err = db.buildFindUserByUsernameQuery("ops")
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, username, password_hash, roles, created_at FROM users WHERE username = $1", query)
	assert.Equal(t, []any{"ops"}, args)
}
