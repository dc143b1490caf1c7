package tui

import (
	"strings"

	"github.com/MKhiriev/frontend-console/internal/console"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldName = iota
	fieldPath
	fieldActive
	fieldCount
)

// formModel edits a console.Form. Text goes to the inputs first and is
// copied into the form right before submit.
type formModel struct {
	form   *console.Form
	inputs []textinput.Model
	focus  int
}

func newFormModel(form *console.Form) formModel {
	value := form.Value()

	inputs := make([]textinput.Model, fieldActive)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
		inputs[i].CharLimit = 256
	}
	inputs[fieldName].SetValue(value.Name)
	inputs[fieldPath].SetValue(value.Path)

	m := formModel{form: form, inputs: inputs, focus: fieldName}
	if form.NameLocked() {
		m.focus = fieldPath
	}
	m.applyFocus()
	return m
}

func (m *formModel) applyFocus() {
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

// move shifts the focus by step, skipping a locked name.
func (m formModel) move(step int) formModel {
	for {
		m.focus = (m.focus + step + fieldCount) % fieldCount
		if m.focus != fieldName || !m.form.NameLocked() {
			break
		}
	}
	m.applyFocus()
	return m
}

// sync copies the inputs into the form.
func (m formModel) sync() {
	if !m.form.NameLocked() {
		_ = m.form.SetName(strings.TrimSpace(m.inputs[fieldName].Value()))
	}
	m.form.SetPath(strings.TrimSpace(m.inputs[fieldPath].Value()))
}

func (m formModel) Update(msg tea.KeyMsg) (formModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.tab):
		return m.move(1), nil
	case key.Matches(msg, keys.backtab):
		return m.move(-1), nil
	case m.focus == fieldActive:
		if key.Matches(msg, keys.toggle) {
			m.form.ToggleActive()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m formModel) View() string {
	var b strings.Builder

	title := console.TitleAdd
	if m.form.Mode() == console.FormEdit {
		title = console.TitleEdit
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(cursor(m.focus == fieldName) + console.LabelName + ": ")
	if m.form.NameLocked() {
		b.WriteString(m.form.Value().Name)
	} else {
		b.WriteString(m.inputs[fieldName].View())
	}
	b.WriteString("\n")

	b.WriteString(cursor(m.focus == fieldPath) + console.LabelPath + ": " + m.inputs[fieldPath].View() + "\n")

	check := "[ ]"
	if m.form.Value().IsActive {
		check = "[x]"
	}
	b.WriteString(cursor(m.focus == fieldActive) + check + " " + console.LabelActivation + ": " + m.form.ActiveLabel() + "\n\n")

	b.WriteString(selectedStyle.Render("<" + m.form.SubmitLabel() + ">"))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("tab: siguiente campo  espacio: activar  enter: " + m.form.SubmitLabel() + "  esc: " + console.LabelCancel))

	return overlayBoxStyle.Render(b.String())
}

func cursor(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}
