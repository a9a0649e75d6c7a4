package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// titleFields are probed in order to label a record in the list.
var titleFields = []string{"name", "title", "callSign", "status", "summary"}

// record is one entity as returned by the API, kept as raw JSON so the
// console can show every kind without knowing its Go type.
type record struct {
	id    int64
	title string
	raw   json.RawMessage
}

func newRecord(raw json.RawMessage) (record, error) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return record{}, fmt.Errorf("decode record: %w", err)
	}

	r := record{raw: raw}
	if id, ok := fields["id"].(float64); ok {
		r.id = int64(id)
	}
	for _, field := range titleFields {
		if value, ok := fields[field].(string); ok && value != "" {
			r.title = value
			break
		}
	}

	return r, nil
}

func (r record) label() string {
	if r.title == "" {
		return fmt.Sprintf("#%d", r.id)
	}
	return fmt.Sprintf("#%d %s", r.id, r.title)
}

// pretty returns the record JSON indented for display and copying.
func (r record) pretty() string {
	var b bytes.Buffer
	if err := json.Indent(&b, r.raw, "", "  "); err != nil {
		return string(r.raw)
	}
	return b.String()
}
