package cli

import (
	"fmt"
	"io"
	"strings"

	"tasklists/internal/domain"
	"tasklists/internal/view"
)

// LineDisplay implements view.Display by printing one line per row action.
type LineDisplay struct {
	out    io.Writer
	errOut io.Writer
	view   *view.TaskListView
	// notified is set once Notify has reported a failure to the user
	notified bool
}

// NewLineDisplay creates a display writing actions to out and notices to errOut.
func NewLineDisplay(out, errOut io.Writer) *LineDisplay {
	return &LineDisplay{out: out, errOut: errOut}
}

// Attach gives the display the view it reports for, so rows can be named.
func (d *LineDisplay) Attach(v *view.TaskListView) {
	d.view = v
}

func (d *LineDisplay) rowName(p view.Position) string {
	if d.view == nil || p.Row >= d.view.RowCount(p.Section) {
		return ""
	}
	name, _ := d.view.RowContent(p.Section, p.Row)
	return name
}

func (d *LineDisplay) InsertRow(p view.Position) {
	fmt.Fprintf(d.out, "Added %s %s\n", p, d.rowName(p))
}

func (d *LineDisplay) ReloadRow(p view.Position) {
	fmt.Fprintf(d.out, "Updated %s %s\n", p, d.rowName(p))
}

func (d *LineDisplay) DeleteRow(p view.Position) {
	fmt.Fprintf(d.out, "Deleted %s\n", p)
}

func (d *LineDisplay) MoveRow(from, to view.Position) {
	state := "done"
	if to.Section == domain.SectionPending {
		state = "not done"
	}
	fmt.Fprintf(d.out, "Marked %s: %s (%s -> %s)\n", state, d.rowName(to), from, to)
}

func (d *LineDisplay) Notify(message string) {
	d.notified = true
	fmt.Fprintf(d.errOut, "Error: %s\n", message)
}

// printView writes both sections of v with their row addresses.
func printView(w io.Writer, v *view.TaskListView, showNotes bool) {
	fmt.Fprintln(w, v.Title())
	for _, s := range domain.Sections {
		fmt.Fprintf(w, "%s (%d)\n", v.SectionTitle(s), v.RowCount(s))
		if v.RowCount(s) == 0 {
			fmt.Fprintln(w, "  (none)")
			continue
		}
		for row := 0; row < v.RowCount(s); row++ {
			task := v.TaskAt(s, row)
			mark := " "
			if task.IsComplete {
				mark = "x"
			}
			pos := view.Position{Section: s, Row: row}
			fmt.Fprintf(w, "  %-5s [%s] %-40s %s\n", pos, mark, task.Name, v.ActionLabel(s, row))
			if showNotes && task.Note != "" {
				for _, line := range strings.Split(task.Note, "\n") {
					fmt.Fprintf(w, "          %s\n", line)
				}
			}
		}
	}
}
