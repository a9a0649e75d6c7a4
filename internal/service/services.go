package service

import (
	"github.com/MKhiriev/mission-planner/internal/config"
	"github.com/MKhiriev/mission-planner/internal/logger"
	"github.com/MKhiriev/mission-planner/internal/store"
	"github.com/MKhiriev/mission-planner/models"
)

type Services struct {
	Missions         EntityService[*models.Mission]
	MissionAssets    EntityService[*models.MissionAsset]
	MissionPersonnel EntityService[*models.MissionPersonnel]
	MissionStatuses  EntityService[*models.MissionStatus]
	Intelligence     EntityService[*models.Intelligence]
	RiskAssessments  EntityService[*models.RiskAssessment]

	AuthService    AuthService
	AppInfoService AppInfoService
	HealthService  HealthService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(buildInfo, cfg.App, logger)
	if err != nil {
		return nil, err
	}

	var pinger Pinger
	if storages.DB != nil {
		pinger = storages.DB
	}

	return &Services{
		Missions:         NewEntityService(storages.Missions, "mission", logger),
		MissionAssets:    NewEntityService(storages.MissionAssets, "mission asset", logger),
		MissionPersonnel: NewEntityService(storages.MissionPersonnel, "mission personnel", logger),
		MissionStatuses:  NewEntityService(storages.MissionStatuses, "mission status", logger),
		Intelligence:     NewEntityService(storages.Intelligence, "intelligence", logger),
		RiskAssessments:  NewEntityService(storages.RiskAssessments, "risk assessment", logger),

		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(pinger, logger),
	}, nil
}
