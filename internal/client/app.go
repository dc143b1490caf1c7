package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/frontend-console/internal/adapter"
	"github.com/MKhiriev/frontend-console/internal/config"
	"github.com/MKhiriev/frontend-console/internal/console"
	"github.com/MKhiriev/frontend-console/internal/logger"
	"github.com/MKhiriev/frontend-console/internal/tui"
	"github.com/MKhiriev/frontend-console/models"
)

type App struct {
	page   *console.Page
	ui     *tui.TUI
	logger *logger.Logger
}

// NewApp wires the terminal console. The TUI does not expose metrics, so the
// adapter runs without a recorder.
func NewApp(cfg *config.ConsoleConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	frontendAdapter, err := adapter.NewHTTPFrontendAdapter(cfg.Adapter, nil, log)
	if err != nil {
		return nil, fmt.Errorf("create frontends adapter: %w", err)
	}

	page := console.NewPage(frontendAdapter, log)

	return &App{
		page:   page,
		ui:     tui.New(page, buildInfo, log),
		logger: log,
	}, nil
}

// Run shows the terminal console until the user quits.
func (a *App) Run(ctx context.Context) error {
	return a.ui.Run(ctx)
}
