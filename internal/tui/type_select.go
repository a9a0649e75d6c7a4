package tui

import "github.com/MKhiriev/mission-planner/models"

type typeSelectModel struct {
	kinds []models.Kind
	idx   int
}

func newTypeSelectModel() typeSelectModel {
	return typeSelectModel{kinds: models.Kinds()}
}

func (m typeSelectModel) current() models.Kind {
	return m.kinds[m.idx]
}

func (m typeSelectModel) View(username string) string {
	names := make([]string, 0, len(m.kinds))
	for _, kind := range m.kinds {
		names = append(names, kind.Name)
	}

	data := "Signed in as " + valueOrNA(username) + "\n\n" + renderMenu(names, m.idx)
	return renderPage("MISSION PLANNER", data, "enter: open │ i: about │ l: sign out │ q: quit")
}
