package store

import (
	"github.com/MKhiriev/mission-planner/internal/config"
	"github.com/MKhiriev/mission-planner/internal/logger"
	"github.com/MKhiriev/mission-planner/models"
)

// Storages groups every repository of the service around one connection.
type Storages struct {
	Missions         EntityRepository[*models.Mission]
	MissionAssets    EntityRepository[*models.MissionAsset]
	MissionPersonnel EntityRepository[*models.MissionPersonnel]
	MissionStatuses  EntityRepository[*models.MissionStatus]
	Intelligence     EntityRepository[*models.Intelligence]
	RiskAssessments  EntityRepository[*models.RiskAssessment]

	UserRepository UserRepository

	// DB is exposed for health probes.
	DB *DB
}

// NewStorages builds every repository on top of db.
func NewStorages(db *DB, cfg config.DB, log *logger.Logger) *Storages {
	mode := cfg.DeleteMode

	return &Storages{
		Missions:         NewEntityRepository[models.Mission](db, mode, log),
		MissionAssets:    NewEntityRepository[models.MissionAsset](db, mode, log),
		MissionPersonnel: NewEntityRepository[models.MissionPersonnel](db, mode, log),
		MissionStatuses:  NewEntityRepository[models.MissionStatus](db, mode, log),
		Intelligence:     NewEntityRepository[models.Intelligence](db, mode, log),
		RiskAssessments:  NewEntityRepository[models.RiskAssessment](db, mode, log),
		UserRepository:   NewUserRepository(db, log),
		DB:               db,
	}
}
