package tui

import (
	"github.com/MKhiriev/frontend-console/models"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel wraps the console:
// 1) handles global Ctrl+C quit
// 2) toggles the build info window
// 3) delegates all other messages to the console
type RootModel struct {
	main      mainLoopModel
	buildInfo models.AppBuildInfo

	quitByUser    bool
	showBuildInfo bool
}

func NewRootModel(main mainLoopModel, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		main:      main,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	return r.main.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if !r.main.inputActive() {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	next, cmd := r.main.Update(msg)
	if m, ok := next.(mainLoopModel); ok {
		r.main = m
	}
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	return r.main.View()
}
