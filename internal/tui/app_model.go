package tui

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/mission-planner/internal/adapter"
	"github.com/MKhiriev/mission-planner/models"
)

type screen int

const (
	screenLogin screen = iota
	screenKinds
	screenList
	screenDetail
)

// appModel is the console state machine: login, kind selection, record
// list and record detail, with delete confirmation, about and error
// overlays on top.
type appModel struct {
	ctx       context.Context
	adapter   adapter.ServerAdapter
	buildInfo models.AppBuildInfo
	copy      func(string) error

	screen   screen
	login    loginForm
	username string
	kinds    typeSelectModel
	list     listModel
	detail   detailModel

	confirm    *confirmModel
	errOverlay *errorOverlayModel
	showInfo   bool
	serverInfo *serverInfoMsg

	quitByUser bool
}

func newAppModel(ctx context.Context, serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo) appModel {
	return appModel{
		ctx:       ctx,
		adapter:   serverAdapter,
		buildInfo: buildInfo,
		copy:      clipboard.WriteAll,
		screen:    screenLogin,
		login:     newLoginForm(),
		kinds:     newTypeSelectModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQ) {
			m.quitByUser = true
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case authDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.login.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.username = msg.auth.Username
		m.login = m.login.reset()
		m.screen = screenKinds
		return m, nil

	case recordsLoadedMsg:
		if msg.resource != m.list.kind.Resource {
			return m, nil
		}
		if msg.err != nil {
			m.list.loading = false
			return m.fail(msg.err)
		}
		m.list = m.list.withRecords(msg.records)
		return m, nil

	case recordLoadedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		r, err := newRecord(msg.raw)
		if err != nil {
			return m.fail(err)
		}
		m.detail = detailModel{kindName: m.list.kind.Name, record: r}
		m.screen = screenDetail
		return m, nil

	case recordDeletedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.screen = screenList
		m.list.loading = true
		m.list.status = "Deleted " + m.detailLabel(msg.id)
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadRecords(m.list.kind.Resource))

	case copiedMsg:
		status := "Copied to clipboard"
		if msg.err != nil {
			status = "Clipboard is unavailable: " + msg.err.Error()
		}
		if m.screen == screenDetail {
			m.detail.status = status
		} else {
			m.list.status = status
		}
		return m, nil

	case serverInfoMsg:
		m.serverInfo = &msg
		return m, nil

	case spinner.TickMsg:
		if !m.list.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.list.spinner, cmd = m.list.spinner.Update(msg)
		return m, cmd
	}

	if m.screen == screenLogin {
		var cmd tea.Cmd
		m.login, cmd = m.login.updateInput(msg)
		return m, cmd
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.errOverlay != nil:
		if key.Matches(msg, keys.enter, keys.esc) {
			m.errOverlay = nil
		}
		return m, nil

	case m.confirm != nil:
		return m.handleConfirmKey(msg)

	case m.showInfo:
		if key.Matches(msg, keys.esc, keys.info) {
			m.showInfo = false
		}
		return m, nil
	}

	switch m.screen {
	case screenLogin:
		return m.handleLoginKey(msg)
	case screenKinds:
		return m.handleKindsKey(msg)
	case screenList:
		return m.handleListKey(msg)
	case screenDetail:
		return m.handleDetailKey(msg)
	}

	return m, nil
}

func (m appModel) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.tab):
		m.login = m.login.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.login = m.login.focusPrev()
		return m, nil
	case key.Matches(msg, keys.enter, keys.register):
		if m.login.submitting {
			return m, nil
		}
		credentials, ok := m.login.credentials()
		if !ok {
			m.login.errMsg = "Username and password are required"
			return m, nil
		}
		m.login.errMsg = ""
		m.login.submitting = true
		return m, m.cmdAuthenticate(credentials, key.Matches(msg, keys.register))
	}

	var cmd tea.Cmd
	m.login, cmd = m.login.updateInput(msg)
	return m, cmd
}

func (m appModel) handleKindsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.kinds.idx = moveCursor(m.kinds.idx, -1, len(m.kinds.kinds))
	case key.Matches(msg, keys.down):
		m.kinds.idx = moveCursor(m.kinds.idx, 1, len(m.kinds.kinds))
	case key.Matches(msg, keys.enter):
		m.list = newListModel(m.kinds.current())
		m.screen = screenList
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadRecords(m.list.kind.Resource))
	case key.Matches(msg, keys.info):
		m.showInfo = true
		m.serverInfo = nil
		return m, m.cmdServerInfo()
	case key.Matches(msg, keys.logout):
		return m.signOut(), nil
	}

	return m, nil
}

func (m appModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenKinds
	case key.Matches(msg, keys.up):
		m.list.idx = moveCursor(m.list.idx, -1, len(m.list.records))
	case key.Matches(msg, keys.down):
		m.list.idx = moveCursor(m.list.idx, 1, len(m.list.records))
	case key.Matches(msg, keys.refresh):
		m.list.loading = true
		m.list.status = ""
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadRecords(m.list.kind.Resource))
	case key.Matches(msg, keys.enter):
		if r, ok := m.list.current(); ok {
			return m, m.cmdLoadRecord(r.id)
		}
	case key.Matches(msg, keys.delete):
		if r, ok := m.list.current(); ok {
			m.confirm = &confirmModel{message: r.label()}
		}
	case key.Matches(msg, keys.copy):
		if r, ok := m.list.current(); ok {
			return m, m.cmdCopy(r.pretty())
		}
	}

	return m, nil
}

func (m appModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenList
	case key.Matches(msg, keys.delete):
		m.confirm = &confirmModel{message: m.detail.record.label()}
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopy(m.detail.record.pretty())
	}

	return m, nil
}

func (m appModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.confirm = nil
		id := m.detail.record.id
		if m.screen == screenList {
			r, _ := m.list.current()
			id = r.id
		}
		return m, m.cmdDelete(id)
	case key.Matches(msg, keys.no):
		m.confirm = nil
	}

	return m, nil
}

// fail shows err in the error overlay. An expired session sends the
// operator back to the login screen.
func (m appModel) fail(err error) (tea.Model, tea.Cmd) {
	if errors.Is(err, adapter.ErrUnauthorized) {
		m = m.signOut()
		m.login.errMsg = humanizeError(err)
		return m, nil
	}

	m.errOverlay = &errorOverlayModel{message: humanizeError(err)}
	return m, nil
}

func (m appModel) signOut() appModel {
	m.adapter.SetToken("")
	m.username = ""
	m.login = m.login.reset()
	m.screen = screenLogin
	m.confirm = nil
	return m
}

func (m appModel) detailLabel(id int64) string {
	if m.detail.record.id == id {
		return m.detail.record.label()
	}
	for _, r := range m.list.records {
		if r.id == id {
			return r.label()
		}
	}
	return record{id: id}.label()
}

func (m appModel) View() string {
	switch {
	case m.errOverlay != nil:
		return m.errOverlay.View()
	case m.confirm != nil:
		return m.confirm.View()
	case m.showInfo:
		return renderBuildInfoWindow(m.buildInfo, m.serverInfo)
	}

	switch m.screen {
	case screenKinds:
		return m.kinds.View(m.username)
	case screenList:
		return m.list.View()
	case screenDetail:
		return m.detail.View()
	default:
		return m.login.View()
	}
}
