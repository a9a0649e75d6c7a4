package models

// RiskAssessment records an identified risk and its mitigation.
type RiskAssessment struct {
	Audit

	Title      *string `json:"title"`
	Category   *string `json:"category"`
	Likelihood *int64  `json:"likelihood"`
	Impact     *int64  `json:"impact"`
	Mitigation *string `json:"mitigation"`
}

func (r *RiskAssessment) TableName() string { return "risk_assessment" }

func (r *RiskAssessment) Resource() string { return "risk-assessment" }

func (r *RiskAssessment) Columns() []string {
	return []string{"title", "category", "likelihood", "impact", "mitigation"}
}

func (r *RiskAssessment) Values() []any {
	return []any{r.Title, r.Category, r.Likelihood, r.Impact, r.Mitigation}
}

func (r *RiskAssessment) Targets() []any {
	return []any{&r.Title, &r.Category, &r.Likelihood, &r.Impact, &r.Mitigation}
}
