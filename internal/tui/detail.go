package tui

import "strings"

type detailModel struct {
	kindName string
	record   record
	status   string
}

func (m detailModel) View() string {
	data := m.record.pretty()
	if m.status != "" {
		data += "\n\n" + m.status
	}

	title := strings.ToUpper(m.kindName) + " " + m.record.label()
	return renderPage(title, data, "d: delete │ c: copy JSON │ esc: back")
}
