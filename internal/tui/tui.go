// Package tui is the full-screen front end for one task list.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"tasklists/internal/api"
	"tasklists/internal/config"
	"tasklists/internal/domain"
	"tasklists/internal/logging"
	"tasklists/internal/view"
)

// Model is the bubbletea model of an open task list.
type Model struct {
	ctx       context.Context
	view      *view.TaskListView
	editor    *Editor
	tracker   *tracker
	showNotes bool
	width     int
	height    int
}

// New opens listName and returns a model ready to run. Close releases the view.
func New(ctx context.Context, a api.API, cfg *config.Config, listName string) (Model, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	editor := newEditor()
	tr := &tracker{}
	v, err := a.OpenView(ctx, listName, editor, tr)
	if err != nil {
		return Model{}, err
	}

	editor.inputs[fieldName].CharLimit = cfg.Validation.TaskNameMaxLength
	editor.inputs[fieldNote].CharLimit = cfg.Validation.NoteMaxLength
	if v.RowCount(domain.SectionPending) == 0 && v.RowCount(domain.SectionCompleted) > 0 {
		tr.cursor.Section = domain.SectionCompleted
	}

	return Model{
		ctx:       ctx,
		view:      v,
		editor:    editor,
		tracker:   tr,
		showNotes: cfg.Display.ShowNotes,
	}, nil
}

// Run opens listName and blocks until the user quits.
func Run(ctx context.Context, a api.API, cfg *config.Config, listName string) error {
	m, err := New(ctx, a, cfg, listName)
	if err != nil {
		return err
	}
	defer m.Close()

	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

// Close stops following the list.
func (m Model) Close() {
	m.view.Close()
}

// Cursor returns the selected row.
func (m Model) Cursor() view.Position {
	return m.tracker.cursor
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.editor.Active() {
			cmd := m.editor.Update(msg)
			m.tracker.clamp(m.view)
			return m, cmd
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cur := &m.tracker.cursor
	rows := m.view.RowCount(cur.Section)

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if cur.Row > 0 {
			cur.Row--
		}
	case "down", "j":
		if cur.Row < rows-1 {
			cur.Row++
		}
	case "tab":
		cur.Section = cur.Section.Opposite()
		m.tracker.clamp(m.view)
	case "a":
		m.tracker.setStatus("", false)
		m.report(m.view.RequestCreate(m.ctx))
		if m.editor.Active() {
			return m, textinput.Blink
		}
	case "e":
		if rows > 0 {
			m.tracker.setStatus("", false)
			m.report(m.view.RequestEdit(m.ctx, cur.Section, cur.Row))
			if m.editor.Active() {
				return m, textinput.Blink
			}
		}
	case "d":
		if rows > 0 {
			m.report(m.view.RequestDelete(m.ctx, cur.Section, cur.Row))
		}
	case " ", "enter":
		if rows > 0 {
			m.report(m.view.RequestToggle(m.ctx, cur.Section, cur.Row))
		}
	}

	m.tracker.clamp(m.view)
	return m, nil
}

// report logs a failed command; the view has already notified the tracker.
func (m Model) report(err error) {
	if err != nil {
		logging.Debugf("tui: %v", err)
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.view.Title()))
	b.WriteString("\n")

	for _, s := range domain.Sections {
		b.WriteString(headerStyle.Render(fmt.Sprintf("%s (%d)", m.view.SectionTitle(s), m.view.RowCount(s))))
		b.WriteString("\n")
		if m.view.RowCount(s) == 0 {
			b.WriteString(emptyStyle.Render("nothing here"))
			b.WriteString("\n")
			continue
		}
		for row := 0; row < m.view.RowCount(s); row++ {
			b.WriteString(m.renderRow(s, row))
			b.WriteString("\n")
		}
	}

	if m.editor.Active() {
		b.WriteString(m.editor.View())
		b.WriteString("\n")
	}

	if m.tracker.status != "" {
		style := statusStyle
		if m.tracker.isError {
			style = errorStyle
		}
		b.WriteString("\n")
		b.WriteString(style.Render(m.tracker.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ move • tab section • a add • e edit • d delete • space done/undone • q quit"))

	if m.width > 0 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(b.String())
	}
	return b.String()
}

func (m Model) renderRow(s domain.Section, row int) string {
	task := m.view.TaskAt(s, row)
	selected := m.tracker.cursor == view.Position{Section: s, Row: row}

	pointer := "  "
	if selected {
		pointer = "› "
	}
	mark := "[ ]"
	if task.IsComplete {
		mark = "[x]"
	}

	line := fmt.Sprintf("%s %s", mark, task.Name)
	switch {
	case selected:
		line = selectedStyle.Render(line) + helpStyle.Render("  "+m.view.ActionLabel(s, row))
	case task.IsComplete:
		line = completedStyle.Render(line)
	}

	out := pointer + line
	if m.showNotes && task.Note != "" {
		out += "\n" + noteStyle.Render(task.Note)
	}
	return out
}
