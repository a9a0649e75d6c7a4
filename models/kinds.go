package models

// Kind describes one entity collection exposed by the API. It is used by
// clients that work with records without knowing their concrete Go type.
type Kind struct {
	// Name is the human readable entity name.
	Name string

	// Resource is the URL segment under /api/v1.
	Resource string
}

// Kinds lists every entity collection in presentation order.
func Kinds() []Kind {
	entities := []Entity{
		&Mission{},
		&MissionAsset{},
		&MissionPersonnel{},
		&MissionStatus{},
		&Intelligence{},
		&RiskAssessment{},
	}

	kinds := make([]Kind, 0, len(entities))
	for _, e := range entities {
		kinds = append(kinds, Kind{Name: kindName(e), Resource: e.Resource()})
	}

	return kinds
}

func kindName(e Entity) string {
	switch e.(type) {
	case *Mission:
		return "Mission"
	case *MissionAsset:
		return "Mission Asset"
	case *MissionPersonnel:
		return "Mission Personnel"
	case *MissionStatus:
		return "Mission Status"
	case *Intelligence:
		return "Intelligence"
	case *RiskAssessment:
		return "Risk Assessment"
	default:
		return e.TableName()
	}
}
