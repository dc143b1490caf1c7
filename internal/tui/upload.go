package tui

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/frontend-console/internal/console"
	"github.com/MKhiriev/frontend-console/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// uploadModel selects local files for a console.Uploader. Paths are typed
// comma separated; enter reads them and replaces the selection.
type uploadModel struct {
	uploader *console.Uploader
	input    textinput.Model
	inputGen int
	readErr  string
}

func newUploadModel(uploader *console.Uploader) uploadModel {
	input := textinput.New()
	input.Placeholder = "./dist/index.html, ./dist/app.js"
	input.Width = 60
	input.Focus()

	return uploadModel{
		uploader: uploader,
		input:    input,
		inputGen: uploader.InputGeneration(),
	}
}

// selectFiles reads the typed paths and hands them to the uploader.
func (m uploadModel) selectFiles(read func(string) ([]models.File, error)) uploadModel {
	files, err := read(m.input.Value())
	if err != nil {
		m.readErr = err.Error()
		return m
	}
	m.readErr = ""
	m.uploader.Select(files)
	return m
}

// syncInput clears the input once the uploader asked for it.
func (m uploadModel) syncInput() uploadModel {
	if gen := m.uploader.InputGeneration(); gen != m.inputGen {
		m.inputGen = gen
		m.input.Reset()
	}
	return m
}

func (m uploadModel) Update(msg tea.KeyMsg) (uploadModel, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m uploadModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.uploader.Title()))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.readErr != "" {
		b.WriteString(errorStyle.Render(m.readErr) + "\n")
	}
	if msg := m.uploader.Error(); msg != "" {
		b.WriteString(errorStyle.Render(msg) + "\n")
	}

	if files := m.uploader.Selected(); len(files) > 0 {
		b.WriteString("\n" + fmt.Sprintf(console.LabelSelected, len(files)) + "\n")
		for _, f := range files {
			b.WriteString("  • " + f.Name + " (" + f.Size + ")\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(selectedStyle.Render("<" + m.uploader.ButtonLabel() + ">"))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter: seleccionar  ctrl+s: " + console.LabelUpload + "  esc: " + console.LabelCancel))

	return overlayBoxStyle.Render(b.String())
}

// readLocalFiles reads every comma separated path of paths.
func readLocalFiles(paths string) ([]models.File, error) {
	var files []models.File
	for _, p := range strings.Split(paths, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("no se pudo leer %s: %w", p, err)
		}
		files = append(files, models.File{
			Name:        filepath.Base(p),
			ContentType: mime.TypeByExtension(filepath.Ext(p)),
			Data:        data,
		})
	}
	return files, nil
}
