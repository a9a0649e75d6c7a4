package models

// MissionPersonnel describes a person assigned to mission planning.
type MissionPersonnel struct {
	Audit

	Name *string `json:"name"`
	Rank *string `json:"rank"`
	Role *string `json:"role"`
	Unit *string `json:"unit"`
}

func (p *MissionPersonnel) TableName() string { return "mission_personnel" }

func (p *MissionPersonnel) Resource() string { return "mission-personnel" }

func (p *MissionPersonnel) Columns() []string {
	return []string{"name", "rank", "role", "unit"}
}

func (p *MissionPersonnel) Values() []any {
	return []any{p.Name, p.Rank, p.Role, p.Unit}
}

func (p *MissionPersonnel) Targets() []any {
	return []any{&p.Name, &p.Rank, &p.Role, &p.Unit}
}
