package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/MKhiriev/mission-planner/models"
)

const maxLabelWidth = 60

type listModel struct {
	kind    models.Kind
	records []record
	idx     int
	loading bool
	spinner spinner.Model
	status  string
}

func newListModel(kind models.Kind) listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{kind: kind, spinner: s, loading: true}
}

func (m listModel) current() (record, bool) {
	if len(m.records) == 0 || m.idx < 0 || m.idx >= len(m.records) {
		return record{}, false
	}
	return m.records[m.idx], true
}

// withRecords replaces the records, keeping the cursor in range.
func (m listModel) withRecords(records []record) listModel {
	m.records = records
	m.loading = false
	if m.idx >= len(records) {
		m.idx = max(len(records)-1, 0)
	}
	return m
}

func (m listModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...")
	case len(m.records) == 0:
		b.WriteString("No records")
	default:
		labels := make([]string, 0, len(m.records))
		for _, r := range m.records {
			labels = append(labels, fitText(r.label(), maxLabelWidth))
		}
		b.WriteString(countLabel(len(m.records)))
		b.WriteString("\n\n")
		b.WriteString(renderMenu(labels, m.idx))
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}

	return renderPage(strings.ToUpper(m.kind.Name), b.String(),
		"enter: open │ d: delete │ c: copy JSON │ r: refresh │ esc: back")
}
