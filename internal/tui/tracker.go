package tui

import (
	"tasklists/internal/domain"
	"tasklists/internal/view"
)

// tracker implements view.Display. It keeps the cursor on the row the
// user is working with and remembers the last status message.
type tracker struct {
	cursor  view.Position
	status  string
	isError bool
}

func (t *tracker) setStatus(msg string, isError bool) {
	t.status = msg
	t.isError = isError
}

func (t *tracker) InsertRow(p view.Position) {
	t.cursor = p
	t.setStatus("Added task", false)
}

func (t *tracker) ReloadRow(p view.Position) {
	t.setStatus("Saved task", false)
}

func (t *tracker) DeleteRow(p view.Position) {
	if t.cursor.Section == p.Section && t.cursor.Row > p.Row {
		t.cursor.Row--
	}
	t.setStatus("Deleted task", false)
}

func (t *tracker) MoveRow(from, to view.Position) {
	if t.cursor == from {
		t.cursor = to
	} else {
		if t.cursor.Section == from.Section && t.cursor.Row > from.Row {
			t.cursor.Row--
		}
		if t.cursor.Section == to.Section && t.cursor.Row >= to.Row {
			t.cursor.Row++
		}
	}
	if to.Section == domain.SectionCompleted {
		t.setStatus("Marked done", false)
	} else {
		t.setStatus("Marked not done", false)
	}
}

func (t *tracker) Notify(message string) {
	t.setStatus(message, true)
}

// clamp keeps the cursor on an existing row of its section, or row 0 of an
// empty one.
func (t *tracker) clamp(v *view.TaskListView) {
	n := v.RowCount(t.cursor.Section)
	if t.cursor.Row >= n {
		t.cursor.Row = n - 1
	}
	if t.cursor.Row < 0 {
		t.cursor.Row = 0
	}
}
