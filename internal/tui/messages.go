package tui

import (
	"encoding/json"

	"github.com/MKhiriev/mission-planner/models"
)

type authDoneMsg struct {
	auth models.AuthResponse
	err  error
}

type recordsLoadedMsg struct {
	resource string
	records  []record
	err      error
}

type recordLoadedMsg struct {
	raw json.RawMessage
	err error
}

type recordDeletedMsg struct {
	id  int64
	err error
}

type copiedMsg struct {
	err error
}

type serverInfoMsg struct {
	info   models.AppBuildInfo
	health models.HealthResponse
	err    error
}
