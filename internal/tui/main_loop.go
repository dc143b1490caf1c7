package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/frontend-console/internal/console"
	"github.com/MKhiriev/frontend-console/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const msgRequiredFields = "El nombre y la ruta son obligatorios"

// mainLoopModel renders a console.Page: the card list, the banner and the
// open overlay. Remote calls run as tea.Cmd and report back with messages.
type mainLoopModel struct {
	ctx  context.Context
	page *console.Page

	idx     int
	busy    bool
	spinner spinner.Model
	status  string

	form   *formModel
	upload *uploadModel

	copyText  func(string) error
	readFiles func(string) ([]models.File, error)
}

func newMainLoopModel(ctx context.Context, page *console.Page) mainLoopModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return mainLoopModel{
		ctx:       ctx,
		page:      page,
		busy:      true,
		spinner:   s,
		copyText:  clipboard.WriteAll,
		readFiles: readLocalFiles,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

// inputActive reports whether keys are typed into a panel.
func (m mainLoopModel) inputActive() bool {
	return m.form != nil || m.upload != nil
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case loadedMsg:
		m.busy = false
		return m.refreshed(), nil
	case deletedMsg:
		m.busy = false
		return m.refreshed(), nil
	case savedMsg:
		m.busy = false
		if errors.Is(msg.err, console.ErrRequiredField) {
			m.status = msgRequiredFields
		}
		return m.refreshed(), nil
	case uploadedMsg:
		m.busy = false
		return m.refreshed(), nil
	case tea.KeyMsg:
		switch {
		case m.form != nil:
			return m.updateForm(msg)
		case m.upload != nil:
			return m.updateUpload(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

// refreshed re-reads the page after a command finished: the list may have
// changed and the page may have closed the overlay.
func (m mainLoopModel) refreshed() mainLoopModel {
	if n := len(m.page.Frontends()); m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	return m.syncOverlay()
}

// syncOverlay mirrors the page overlay into the panel models.
func (m mainLoopModel) syncOverlay() mainLoopModel {
	overlay := m.page.Overlay()

	switch overlay.Kind() {
	case console.OverlayAdding, console.OverlayEditing:
		m.upload = nil
		if m.form == nil || m.form.form != overlay.Form() {
			f := newFormModel(overlay.Form())
			m.form = &f
		}
	case console.OverlayUploading:
		m.form = nil
		if m.upload == nil || m.upload.uploader != overlay.Uploader() {
			u := newUploadModel(overlay.Uploader())
			m.upload = &u
		} else {
			u := m.upload.syncInput()
			m.upload = &u
		}
	default:
		m.form = nil
		m.upload = nil
	}

	return m
}

func (m mainLoopModel) selected() (*console.Card, bool) {
	frontends := m.page.Frontends()
	if m.idx < 0 || m.idx >= len(frontends) {
		return nil, false
	}
	return m.page.Card(frontends[m.idx].Name)
}

func (m mainLoopModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	card, hasCard := m.selected()

	if hasCard && card.Confirming() {
		switch {
		case key.Matches(msg, keys.yes):
			if card.ConfirmDelete() == console.CardActionDelete {
				m.busy = true
				return m, m.cmdDelete(card.Frontend().Name)
			}
		case key.Matches(msg, keys.no, keys.esc):
			card.CancelDelete()
		}
		return m, nil
	}

	m.status = ""

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.page.Frontends())-1 {
			m.idx++
		}
	case key.Matches(msg, keys.refresh):
		m.busy = true
		return m, m.cmdLoad()
	case key.Matches(msg, keys.add):
		m.page.OpenAdd()
		return m.syncOverlay(), nil
	case !hasCard:
		return m, nil
	case key.Matches(msg, keys.edit):
		if _, err := m.page.OpenEdit(card.Frontend().Name); err != nil {
			m.status = err.Error()
		}
		return m.syncOverlay(), nil
	case key.Matches(msg, keys.upload):
		if _, err := m.page.OpenUpload(card.Frontend().Name); err != nil {
			m.status = err.Error()
		}
		return m.syncOverlay(), nil
	case key.Matches(msg, keys.delete):
		card.Delete()
	case key.Matches(msg, keys.copy):
		if err := m.copyText(card.Frontend().Path); err != nil {
			m.status = fmt.Sprintf("Error al copiar: %v", err)
			return m, nil
		}
		m.status = "Ruta copiada"
	}

	return m, nil
}

func (m mainLoopModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.form.form.Cancel()
		m.status = ""
		return m.syncOverlay(), nil
	case key.Matches(msg, keys.enter):
		if m.form.form.Submitting() {
			return m, nil
		}
		m.form.sync()
		m.status = ""
		m.busy = true
		return m, m.cmdSubmit(m.form.form)
	}

	f, cmd := m.form.Update(msg)
	m.form = &f
	return m, cmd
}

func (m mainLoopModel) updateUpload(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.page.CloseOverlay()
		return m.syncOverlay(), nil
	case key.Matches(msg, keys.enter):
		u := m.upload.selectFiles(m.readFiles)
		m.upload = &u
		return m, nil
	case key.Matches(msg, keys.send):
		if m.upload.uploader.Uploading() {
			return m, nil
		}
		m.busy = true
		return m, m.cmdUpload(m.upload.uploader)
	}

	u, cmd := m.upload.Update(msg)
	m.upload = &u
	return m, cmd
}

func (m mainLoopModel) cmdLoad() tea.Cmd {
	ctx, page := m.ctx, m.page
	return func() tea.Msg {
		return loadedMsg{err: page.Load(ctx)}
	}
}

func (m mainLoopModel) cmdSubmit(form *console.Form) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return savedMsg{err: form.Submit(ctx)}
	}
}

func (m mainLoopModel) cmdDelete(name string) tea.Cmd {
	ctx, page := m.ctx, m.page
	return func() tea.Msg {
		return deletedMsg{err: page.Delete(ctx, name)}
	}
}

func (m mainLoopModel) cmdUpload(uploader *console.Uploader) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return uploadedMsg{err: uploader.Upload(ctx)}
	}
}

func (m mainLoopModel) View() string {
	s := m.page.Snapshot()

	title := console.TitlePage
	if m.busy || s.Loading {
		title += "  " + m.spinner.View()
	}

	var b strings.Builder
	if s.Error != "" {
		b.WriteString(errorStyle.Render(s.Error) + "\n\n")
	}

	switch {
	case s.Loading && len(s.Cards) == 0:
		b.WriteString(console.MsgLoading + "\n")
	case len(s.Cards) == 0:
		b.WriteString(console.MsgEmpty + "\n")
	default:
		for i, c := range s.Cards {
			b.WriteString(m.renderCard(c, i == m.idx))
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	switch {
	case m.form != nil:
		b.WriteString("\n" + m.form.View() + "\n")
	case m.upload != nil:
		b.WriteString("\n" + m.upload.View() + "\n")
	}

	return renderPage(title, b.String(), m.hotKeys())
}

func (m mainLoopModel) renderCard(c console.CardView, selected bool) string {
	line := cursor(selected) + fitText(c.Name, 30) + "  " + fitText(c.Path, 40)
	if selected {
		line = selectedStyle.Render(line)
	}
	if c.ActiveHint != "" {
		line += "  " + hintStyle.Render(c.ActiveHint)
	}
	if c.CreatedAt != "" {
		line += "  " + helpStyle.Render(console.LabelCreated+": "+c.CreatedAt)
	}
	line += "\n"

	if c.Confirming {
		line += "    " + console.MsgConfirmDelete + "  y: " + console.LabelConfirm + "  n: " + console.LabelCancel + "\n"
	}
	return line
}

func (m mainLoopModel) hotKeys() string {
	if m.inputActive() {
		return ""
	}
	return "a: añadir  e: editar  u: subir  d: eliminar  c: copiar ruta  r: recargar  v: versión  q: salir"
}
