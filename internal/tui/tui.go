// Package tui implements the terminal console with bubbletea.
//
// The TUI renders the same console.Page as the browser console and drives it
// from the keyboard.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/frontend-console/internal/console"
	"github.com/MKhiriev/frontend-console/internal/logger"
	"github.com/MKhiriev/frontend-console/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	page      *console.Page
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(page *console.Page, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{page: page, buildInfo: buildInfo, logger: logger}
}

// Run blocks until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(newMainLoopModel(ctx, t.page), t.buildInfo)

	t.logger.Info().Msg("starting terminal console")
	_, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("error running terminal console: %w", err)
	}

	t.logger.Info().Msg("terminal console closed")
	return nil
}
