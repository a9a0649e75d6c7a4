// Package tui implements the terminal console of the mission planning
// service on top of bubbletea.
//
// The console logs in through [adapter.ServerAdapter], lets the operator pick
// an entity kind, browse its records, inspect and delete one, and copy its
// JSON to the clipboard.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/mission-planner/internal/adapter"
	"github.com/MKhiriev/mission-planner/internal/logger"
	"github.com/MKhiriev/mission-planner/models"
)

var ErrUserQuit = errors.New("user quit the console")

type TUI struct {
	adapter   adapter.ServerAdapter
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{adapter: serverAdapter, buildInfo: buildInfo, logger: logger}
}

// Run blocks until the operator leaves the console.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.adapter, t.buildInfo)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Info().Msg("console closed by user")
		return ErrUserQuit
	}

	return nil
}
