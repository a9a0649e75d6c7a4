package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/mission-planner/internal/config"
	"github.com/MKhiriev/mission-planner/internal/logger"
	"github.com/MKhiriev/mission-planner/migrations"
	"github.com/MKhiriev/mission-planner/models"
)

func Test_newDB_PlaceholderPerDialect(t *testing.T) {
	tests := []struct {
		dialect string
		want    string
	}{
		{dialect: migrations.DialectPostgres, want: "SELECT id FROM mission WHERE id = $1"},
		{dialect: migrations.DialectSQLite, want: "SELECT id FROM mission WHERE id = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			db := newDB(nil, tt.dialect, nil, logger.Nop())
			assert.Equal(t, tt.dialect, db.Dialect())

			query, _, err := db.builder.Select("id").From("mission").Where("id = ?", 1).ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
		})
	}
}

func newSQLiteStorages(t *testing.T, deleteMode string) *Storages {
	t.Helper()

	cfg := config.DB{
		DSN:        "sqlite://" + filepath.Join(t.TempDir(), "missions.db"),
		DeleteMode: deleteMode,
	}

	db, err := NewConnect(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate())

	return NewStorages(db, cfg, logger.Nop())
}

func TestSQLite_EntityRoundTrip(t *testing.T) {
	for _, mode := range []string{config.DeleteModeSoft, config.DeleteModeHard} {
		t.Run(mode, func(t *testing.T) {
			ctx := context.Background()
			missions := newSQLiteStorages(t, mode).Missions

			created, err := missions.Insert(ctx, &models.Mission{Name: strPtr("Alpha"), Priority: int64Ptr(2)})
			require.NoError(t, err)
			require.NotZero(t, created.ID)
			assert.False(t, created.CreatedAt.IsZero())
			assert.Equal(t, created.CreatedAt, created.UpdatedAt)

			got, err := missions.FindByID(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, "Alpha", *got.Name)
			assert.Equal(t, int64(2), *got.Priority)
			assert.Nil(t, got.Description)

			updated, err := missions.Update(ctx, created.ID, &models.Mission{Name: strPtr("Bravo")})
			require.NoError(t, err)
			assert.Equal(t, "Bravo", *updated.Name)
			assert.Nil(t, updated.Priority)

			_, err = missions.Update(ctx, created.ID+100, &models.Mission{Name: strPtr("Ghost")})
			require.ErrorIs(t, err, ErrEntityNotFound)

			all, err := missions.FindAll(ctx)
			require.NoError(t, err)
			require.Len(t, all, 1)

			require.NoError(t, missions.Delete(ctx, created.ID))
			require.NoError(t, missions.Delete(ctx, created.ID))
			require.NoError(t, missions.Delete(ctx, created.ID+100))

			_, err = missions.FindByID(ctx, created.ID)
			require.ErrorIs(t, err, ErrEntityNotFound)

			all, err = missions.FindAll(ctx)
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestSQLite_EveryKindMatchesSchema(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStorages(t, config.DeleteModeSoft)

	_, err := s.MissionAssets.Insert(ctx, &models.MissionAsset{CallSign: strPtr("Hawk")})
	require.NoError(t, err)
	_, err = s.MissionPersonnel.Insert(ctx, &models.MissionPersonnel{Name: strPtr("Lee")})
	require.NoError(t, err)
	_, err = s.MissionStatuses.Insert(ctx, &models.MissionStatus{Status: strPtr("ACTIVE")})
	require.NoError(t, err)
	_, err = s.Intelligence.Insert(ctx, &models.Intelligence{Title: strPtr("Convoy")})
	require.NoError(t, err)
	_, err = s.RiskAssessments.Insert(ctx, &models.RiskAssessment{Title: strPtr("Weather")})
	require.NoError(t, err)

	assets, err := s.MissionAssets.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, "Hawk", *assets[0].CallSign)

	risks, err := s.RiskAssessments.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, risks, 1)
	assert.Equal(t, "Weather", *risks[0].Title)
}

func TestSQLite_UserRoundTrip(t *testing.T) {
	ctx := context.Background()
	users := newSQLiteStorages(t, config.DeleteModeSoft).UserRepository

	created, err := users.CreateUser(ctx, models.User{
		Username:     "ops",
		PasswordHash: "hash",
		Roles:        []string{models.RoleAdmin, models.RoleUser},
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	_, err = users.CreateUser(ctx, models.User{Username: "ops", PasswordHash: "other", Roles: []string{models.RoleUser}})
	require.ErrorIs(t, err, ErrUsernameTaken)

	found, err := users.FindUserByUsername(ctx, "ops")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, []string{models.RoleAdmin, models.RoleUser}, found.Roles)

	_, err = users.FindUserByUsername(ctx, "nobody")
	require.ErrorIs(t, err, ErrNoUserWasFound)
}
