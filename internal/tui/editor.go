package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"tasklists/internal/view"
)

const (
	fieldName = iota
	fieldNote
)

// Editor is the in-screen task form. It implements view.Prompt: Show opens
// the form and the draft is confirmed later, when the user presses enter.
type Editor struct {
	inputs    [2]textinput.Model
	focus     int
	title     string
	onConfirm func(view.Draft)
}

func newEditor() *Editor {
	name := textinput.New()
	name.Placeholder = "Task name"
	name.Prompt = "Name: "
	name.CharLimit = 255

	note := textinput.New()
	note.Placeholder = "Optional note"
	note.Prompt = "Note: "
	note.CharLimit = 1000

	return &Editor{inputs: [2]textinput.Model{name, note}}
}

// Show opens the form, pre-filled from initial when editing.
func (e *Editor) Show(title string, initial *view.Draft, onConfirm func(view.Draft)) {
	e.title = title
	e.onConfirm = onConfirm
	e.inputs[fieldName].SetValue("")
	e.inputs[fieldNote].SetValue("")
	if initial != nil {
		e.inputs[fieldName].SetValue(initial.Name)
		e.inputs[fieldNote].SetValue(initial.Note)
	}
	e.setFocus(fieldName)
}

// Active reports whether the form is open.
func (e *Editor) Active() bool {
	return e.onConfirm != nil
}

func (e *Editor) setFocus(field int) {
	e.focus = field
	for i := range e.inputs {
		if i == field {
			e.inputs[i].Focus()
			e.inputs[i].CursorEnd()
		} else {
			e.inputs[i].Blur()
		}
	}
}

func (e *Editor) close() {
	e.onConfirm = nil
	for i := range e.inputs {
		e.inputs[i].Blur()
	}
}

// Update handles a key while the form is open. esc closes the form without
// confirming; enter confirms.
func (e *Editor) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		e.close()
		return nil
	case "tab", "shift+tab", "up", "down":
		e.setFocus(1 - e.focus)
		return nil
	case "enter":
		draft := view.Draft{
			Name: strings.TrimSpace(e.inputs[fieldName].Value()),
			Note: strings.TrimSpace(e.inputs[fieldNote].Value()),
		}
		confirm := e.onConfirm
		e.close()
		confirm(draft)
		return nil
	}

	var cmd tea.Cmd
	e.inputs[e.focus], cmd = e.inputs[e.focus].Update(msg)
	return cmd
}

// View renders the open form.
func (e *Editor) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.UnsetMarginTop().Render(e.title))
	b.WriteString("\n")
	b.WriteString(e.inputs[fieldName].View())
	b.WriteString("\n")
	b.WriteString(e.inputs[fieldNote].View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter save • tab next field • esc cancel"))
	return editorStyle.Render(b.String())
}
