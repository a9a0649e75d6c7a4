package models

// Intelligence is a single intelligence report.
type Intelligence struct {
	Audit

	Title          *string `json:"title"`
	Source         *string `json:"source"`
	Classification *string `json:"classification"`
	Summary        *string `json:"summary"`
	Confidence     *int64  `json:"confidence"`
}

func (i *Intelligence) TableName() string { return "intelligence" }

func (i *Intelligence) Resource() string { return "intelligence" }

func (i *Intelligence) Columns() []string {
	return []string{"title", "source", "classification", "summary", "confidence"}
}

func (i *Intelligence) Values() []any {
	return []any{i.Title, i.Source, i.Classification, i.Summary, i.Confidence}
}

func (i *Intelligence) Targets() []any {
	return []any{&i.Title, &i.Source, &i.Classification, &i.Summary, &i.Confidence}
}
