package models

import "time"

// Mission is the top-level planning record.
type Mission struct {
	Audit

	Name           *string    `json:"name"`
	Description    *string    `json:"description"`
	Classification *string    `json:"classification"`
	Priority       *int64     `json:"priority"`
	StartsAt       *time.Time `json:"startsAt"`
	EndsAt         *time.Time `json:"endsAt"`
}

func (m *Mission) TableName() string { return "mission" }

func (m *Mission) Resource() string { return "mission" }

func (m *Mission) Columns() []string {
	return []string{"name", "description", "classification", "priority", "starts_at", "ends_at"}
}

func (m *Mission) Values() []any {
	return []any{m.Name, m.Description, m.Classification, m.Priority, m.StartsAt, m.EndsAt}
}

func (m *Mission) Targets() []any {
	return []any{&m.Name, &m.Description, &m.Classification, &m.Priority, &m.StartsAt, &m.EndsAt}
}
