package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/mission-planner/internal/adapter"
	"github.com/MKhiriev/mission-planner/internal/config"
	"github.com/MKhiriev/mission-planner/internal/logger"
	"github.com/MKhiriev/mission-planner/internal/tui"
	"github.com/MKhiriev/mission-planner/models"
)

type App struct {
	console Console

	logger *logger.Logger
}

// NewApp builds the API adapter and the terminal console from cfg.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	logger.Info().Str("address", cfg.Adapter.HTTPAddress).Msg("console configured")

	return newApp(tui.New(serverAdapter, buildInfo, logger), logger), nil
}

func newApp(console Console, logger *logger.Logger) *App {
	return &App{console: console, logger: logger}
}

// Run blocks until the operator quits or the process receives SIGTERM or
// SIGQUIT. Quitting from the console is not an error.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	err := a.console.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("console closed")
		return nil
	case ctx.Err() != nil:
		a.logger.Info().Err(ctx.Err()).Msg("console interrupted")
		return nil
	default:
		return fmt.Errorf("console run: %w", err)
	}
}
