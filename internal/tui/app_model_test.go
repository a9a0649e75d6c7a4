package tui

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/mission-planner/internal/adapter"
	"github.com/MKhiriev/mission-planner/internal/mock"
	"github.com/MKhiriev/mission-planner/models"
)

var (
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyDown     = tea.KeyMsg{Type: tea.KeyDown}
	keyCtrlC    = tea.KeyMsg{Type: tea.KeyCtrlC}
	keyRegister = tea.KeyMsg{Type: tea.KeyCtrlR}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// collect runs cmd synchronously, flattening batches and dropping
// spinner ticks and cursor blinks.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	switch msg := cmd().(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, collect(c)...)
		}
		return out
	case spinner.TickMsg, nil:
		return nil
	default:
		return []tea.Msg{msg}
	}
}

// send feeds msg to the model and then every message its commands produce.
func send(t *testing.T, m appModel, msg tea.Msg) appModel {
	t.Helper()

	next, cmd := m.Update(msg)
	result, ok := next.(appModel)
	require.True(t, ok)

	for _, produced := range collect(cmd) {
		if _, quit := produced.(tea.QuitMsg); quit {
			continue
		}
		result = send(t, result, produced)
	}
	return result
}

// typeText drops the commands of the inputs, which only drive cursor blinking.
func typeText(t *testing.T, m appModel, s string) appModel {
	t.Helper()
	for _, r := range s {
		next, _ := m.Update(runes(string(r)))
		m = next.(appModel)
	}
	return m
}

func newTestModel(t *testing.T) (appModel, *mock.MockServerAdapter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)

	m := newAppModel(context.Background(), serverAdapter, models.AppBuildInfo{Version: "1.0.0"})
	return m, serverAdapter
}

func signedIn(t *testing.T, m appModel, serverAdapter *mock.MockServerAdapter) appModel {
	t.Helper()

	serverAdapter.EXPECT().
		Login(gomock.Any(), models.Credentials{Username: "ops", Password: "secret"}).
		Return(models.AuthResponse{Token: "tok", Username: "ops"}, nil)

	m = typeText(t, m, "ops")
	m = send(t, m, keyTab)
	m = typeText(t, m, "secret")
	m = send(t, m, keyEnter)
	require.Equal(t, screenKinds, m.screen)
	return m
}

var missionRecords = []json.RawMessage{
	json.RawMessage(`{"id":1,"name":"Alpha"}`),
	json.RawMessage(`{"id":2,"name":"Bravo"}`),
}

func openMissions(t *testing.T, m appModel, serverAdapter *mock.MockServerAdapter) appModel {
	t.Helper()

	serverAdapter.EXPECT().List(gomock.Any(), "mission").Return(missionRecords, nil)
	m = send(t, m, keyEnter)
	require.Equal(t, screenList, m.screen)
	require.Len(t, m.list.records, 2)
	return m
}

func TestAppModel_Login(t *testing.T) {
	m, serverAdapter := newTestModel(t)
	m = signedIn(t, m, serverAdapter)

	assert.Equal(t, "ops", m.username)
	assert.Contains(t, m.View(), "Signed in as ops")
	assert.Empty(t, m.login.inputs[1].Value())
}

func TestAppModel_LoginRequiresBothFields(t *testing.T) {
	m, _ := newTestModel(t)

	m = typeText(t, m, "ops")
	m = send(t, m, keyEnter)

	assert.Equal(t, screenLogin, m.screen)
	assert.Equal(t, "Username and password are required", m.login.errMsg)
}

func TestAppModel_LoginFailure(t *testing.T) {
	m, serverAdapter := newTestModel(t)

	serverAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.AuthResponse{}, adapter.ErrUnauthorized)

	m = typeText(t, m, "ops")
	m = send(t, m, keyTab)
	m = typeText(t, m, "wrong")
	m = send(t, m, keyEnter)

	assert.Equal(t, screenLogin, m.screen)
	assert.False(t, m.login.submitting)
	assert.Contains(t, m.View(), "Wrong credentials")
}

func TestAppModel_Register(t *testing.T) {
	m, serverAdapter := newTestModel(t)

	serverAdapter.EXPECT().
		Register(gomock.Any(), models.Credentials{Username: "new", Password: "pass"}).
		Return(models.AuthResponse{Username: "new"}, nil)

	m = typeText(t, m, "new")
	m = send(t, m, keyTab)
	m = typeText(t, m, "pass")
	m = send(t, m, keyRegister)

	assert.Equal(t, screenKinds, m.screen)
	assert.Equal(t, "new", m.username)
}

func TestAppModel_QuitKeys(t *testing.T) {
	t.Run("ctrl+c on login", func(t *testing.T) {
		m, _ := newTestModel(t)

		next, cmd := m.Update(keyCtrlC)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.True(t, next.(appModel).quitByUser)
	})

	t.Run("q is typed on login", func(t *testing.T) {
		m, _ := newTestModel(t)

		m = typeText(t, m, "q")
		assert.False(t, m.quitByUser)
		assert.Equal(t, "q", m.login.inputs[0].Value())
	})

	t.Run("q on kinds", func(t *testing.T) {
		m, serverAdapter := newTestModel(t)
		m = signedIn(t, m, serverAdapter)

		next, cmd := m.Update(runes("q"))
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.True(t, next.(appModel).quitByUser)
	})
}

func TestAppModel_BrowseAndOpenRecord(t *testing.T) {
	m, serverAdapter := newTestModel(t)
	m = signedIn(t, m, serverAdapter)
	m = openMissions(t, m, serverAdapter)

	assert.Contains(t, m.View(), "#1 Alpha")

	m = send(t, m, keyDown)
	assert.Equal(t, 1, m.list.idx)

	serverAdapter.EXPECT().Get(gomock.Any(), "mission", int64(2)).
		Return(json.RawMessage(`{"id":2,"name":"Bravo","priority":3}`), nil)
	m = send(t, m, keyEnter)

	require.Equal(t, screenDetail, m.screen)
	assert.Equal(t, int64(2), m.detail.record.id)
	assert.Contains(t, m.View(), `"priority": 3`)

	m = send(t, m, keyEsc)
	assert.Equal(t, screenList, m.screen)

	m = send(t, m, keyEsc)
	assert.Equal(t, screenKinds, m.screen)
}

func TestAppModel_SelectOtherKind(t *testing.T) {
	m, serverAdapter := newTestModel(t)
	m = signedIn(t, m, serverAdapter)

	m = send(t, m, keyDown)
	serverAdapter.EXPECT().List(gomock.Any(), "mission-asset").Return([]json.RawMessage{}, nil)
	m = send(t, m, keyEnter)

	assert.Equal(t, "mission-asset", m.list.kind.Resource)
	assert.Contains(t, m.View(), "No records")
}

func TestAppModel_StaleListIgnored(t *testing.T) {
	m, serverAdapter := newTestModel(t)
	m = signedIn(t, m, serverAdapter)
	m = openMissions(t, m, serverAdapter)

	m = send(t, m, recordsLoadedMsg{resource: "intelligence", records: []record{{id: 9}}})
	assert.Len(t, m.list.records, 2)
}

func TestAppModel_DeleteFromList(t *testing.T) {
	m, serverAdapter := newTestModel(t)
	m = signedIn(t, m, serverAdapter)
	m = openMissions(t, m, serverAdapter)

	m = send(t, m, runes("d"))
	require.NotNil(t, m.confirm)
	assert.Contains(t, m.View(), "#1 Alpha")

	gomock.InOrder(
		serverAdapter.EXPECT().Delete(gomock.Any(), "mission", int64(1)).Return(nil),
		serverAdapter.EXPECT().List(gomock.Any(), "mission").Return(missionRecords[1:], nil),
	)
	m = send(t, m, runes("y"))

	assert.Nil(t, m.confirm)
	assert.Equal(t, screenList, m.screen)
	require.Len(t, m.list.records, 1)
	assert.Equal(t, "Deleted #1 Alpha", m.list.status)
}

func TestAppModel_DeleteCancelled(t *testing.T) {
	m, serverAdapter := newTestModel(t)
	m = signedIn(t, m, serverAdapter)
	m = openMissions(t, m, serverAdapter)

	m = send(t, m, runes("d"))
	require.NotNil(t, m.confirm)

	m = send(t, m, runes("n"))
	assert.Nil(t, m.confirm)
	assert.Equal(t, screenList, m.screen)
}

func TestAppModel_DeleteFromDetail(t *testing.T) {
	m, serverAdapter := newTestModel(t)
	m = signedIn(t, m, serverAdapter)
	m = openMissions(t, m, serverAdapter)

	serverAdapter.EXPECT().Get(gomock.Any(), "mission", int64(1)).Return(missionRecords[0], nil)
	m = send(t, m, keyEnter)
	require.Equal(t, screenDetail, m.screen)

	m = send(t, m, runes("d"))
	require.NotNil(t, m.confirm)

	serverAdapter.EXPECT().Delete(gomock.Any(), "mission", int64(1)).Return(adapter.ErrNotFound)
	m = send(t, m, runes("y"))

	require.NotNil(t, m.errOverlay)
	assert.Contains(t, m.View(), "Record not found")

	m = send(t, m, keyEnter)
	assert.Nil(t, m.errOverlay)
	assert.Equal(t, screenDetail, m.screen)
}

func TestAppModel_ExpiredSessionReturnsToLogin(t *testing.T) {
	m, serverAdapter := newTestModel(t)
	m = signedIn(t, m, serverAdapter)

	serverAdapter.EXPECT().List(gomock.Any(), "mission").Return(nil, adapter.ErrUnauthorized)
	serverAdapter.EXPECT().SetToken("")
	m = send(t, m, keyEnter)

	assert.Equal(t, screenLogin, m.screen)
	assert.Empty(t, m.username)
	assert.Nil(t, m.errOverlay)
	assert.Equal(t, humanizeError(adapter.ErrUnauthorized), m.login.errMsg)
}

func TestAppModel_Logout(t *testing.T) {
	m, serverAdapter := newTestModel(t)
	m = signedIn(t, m, serverAdapter)

	serverAdapter.EXPECT().SetToken("")
	m = send(t, m, runes("l"))

	assert.Equal(t, screenLogin, m.screen)
	assert.Equal(t, "ops", m.login.inputs[0].Value())
}

func TestAppModel_Copy(t *testing.T) {
	tests := []struct {
		name       string
		copyErr    error
		wantStatus string
	}{
		{name: "copied", wantStatus: "Copied to clipboard"},
		{name: "clipboard missing", copyErr: errors.New("no xclip"), wantStatus: "Clipboard is unavailable: no xclip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, serverAdapter := newTestModel(t)

			var copied string
			m.copy = func(s string) error {
				copied = s
				return tt.copyErr
			}

			m = signedIn(t, m, serverAdapter)
			m = openMissions(t, m, serverAdapter)
			m = send(t, m, runes("c"))

			assert.Equal(t, "{\n  \"id\": 1,\n  \"name\": \"Alpha\"\n}", copied)
			assert.Equal(t, tt.wantStatus, m.list.status)
		})
	}
}

func TestAppModel_ServerInfo(t *testing.T) {
	m, serverAdapter := newTestModel(t)
	m = signedIn(t, m, serverAdapter)

	serverAdapter.EXPECT().Health(gomock.Any()).Return(models.HealthResponse{Status: models.StatusUp}, nil)
	serverAdapter.EXPECT().Info(gomock.Any()).Return(models.AppBuildInfo{Version: "2.0.0"}, nil)
	m = send(t, m, runes("i"))

	require.True(t, m.showInfo)
	require.NotNil(t, m.serverInfo)
	assert.Equal(t, "2.0.0", m.serverInfo.info.Version)

	m = send(t, m, keyEsc)
	assert.False(t, m.showInfo)
	assert.Equal(t, screenKinds, m.screen)
}
