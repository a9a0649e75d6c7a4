package models

// MissionStatus is a status report entry.
type MissionStatus struct {
	Audit

	Status     *string `json:"status"`
	Summary    *string `json:"summary"`
	ReportedBy *string `json:"reportedBy"`
}

func (s *MissionStatus) TableName() string { return "mission_status" }

func (s *MissionStatus) Resource() string { return "mission-status" }

func (s *MissionStatus) Columns() []string {
	return []string{"status", "summary", "reported_by"}
}

func (s *MissionStatus) Values() []any {
	return []any{s.Status, s.Summary, s.ReportedBy}
}

func (s *MissionStatus) Targets() []any {
	return []any{&s.Status, &s.Summary, &s.ReportedBy}
}
