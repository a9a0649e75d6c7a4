package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/mission-planner/models"
)

func (m appModel) cmdAuthenticate(credentials models.Credentials, register bool) tea.Cmd {
	ctx, serverAdapter := m.ctx, m.adapter

	return func() tea.Msg {
		authenticate := serverAdapter.Login
		if register {
			authenticate = serverAdapter.Register
		}

		auth, err := authenticate(ctx, credentials)
		return authDoneMsg{auth: auth, err: err}
	}
}

func (m appModel) cmdLoadRecords(resource string) tea.Cmd {
	ctx, serverAdapter := m.ctx, m.adapter

	return func() tea.Msg {
		raws, err := serverAdapter.List(ctx, resource)
		if err != nil {
			return recordsLoadedMsg{resource: resource, err: err}
		}

		records := make([]record, 0, len(raws))
		for _, raw := range raws {
			r, err := newRecord(raw)
			if err != nil {
				return recordsLoadedMsg{resource: resource, err: err}
			}
			records = append(records, r)
		}

		return recordsLoadedMsg{resource: resource, records: records}
	}
}

func (m appModel) cmdLoadRecord(id int64) tea.Cmd {
	ctx, serverAdapter, resource := m.ctx, m.adapter, m.list.kind.Resource

	return func() tea.Msg {
		raw, err := serverAdapter.Get(ctx, resource, id)
		return recordLoadedMsg{raw: raw, err: err}
	}
}

func (m appModel) cmdDelete(id int64) tea.Cmd {
	ctx, serverAdapter, resource := m.ctx, m.adapter, m.list.kind.Resource

	return func() tea.Msg {
		return recordDeletedMsg{id: id, err: serverAdapter.Delete(ctx, resource, id)}
	}
}

func (m appModel) cmdCopy(text string) tea.Cmd {
	copyFn := m.copy

	return func() tea.Msg {
		return copiedMsg{err: copyFn(text)}
	}
}

func (m appModel) cmdServerInfo() tea.Cmd {
	ctx, serverAdapter := m.ctx, m.adapter

	return func() tea.Msg {
		health, err := serverAdapter.Health(ctx)
		if err != nil {
			return serverInfoMsg{err: err}
		}

		info, err := serverAdapter.Info(ctx)
		return serverInfoMsg{info: info, health: health, err: err}
	}
}
