package view

import (
	"fmt"
	"sort"

	"tasklists/internal/domain"
	"tasklists/internal/services"
)

// Position addresses a row of the two-section display.
type Position struct {
	Section domain.Section
	Row     int
}

func (p Position) String() string {
	return fmt.Sprintf("%d.%d", int(p.Section), p.Row)
}

type rowAction int

const (
	actionNone rowAction = iota
	actionInsert
	actionReload
	actionDelete
	actionMove
)

// indexUpdate is the display effect of applying one change to the index.
type indexUpdate struct {
	action rowAction
	from   Position
	to     Position
}

// index holds the two ordered sections of one list. sections[s] lists task
// ids in display order; tasks holds the latest state of each.
type index struct {
	tasks    map[int64]domain.Task
	sections [2][]int64
}

// newIndex partitions tasks by completion, keeping (Position, ID) order.
func newIndex(tasks []*domain.Task) *index {
	sorted := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		sorted = append(sorted, *t)
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	ix := &index{tasks: make(map[int64]domain.Task, len(sorted))}
	for _, t := range sorted {
		ix.tasks[t.ID] = t
		s := t.Section()
		ix.sections[s] = append(ix.sections[s], t.ID)
	}
	return ix
}

func (ix *index) count(s domain.Section) int {
	return len(ix.sections[s])
}

// at returns the task shown at row of s. It panics when row is out of range.
func (ix *index) at(s domain.Section, row int) domain.Task {
	ids := ix.sections[s]
	if row < 0 || row >= len(ids) {
		panic(fmt.Sprintf("view: row %d out of range for %s section with %d rows", row, s, len(ids)))
	}
	return ix.tasks[ids[row]]
}

func (ix *index) task(id int64) (domain.Task, bool) {
	t, ok := ix.tasks[id]
	return t, ok
}

// position locates id among the rows of its section.
func (ix *index) position(id int64) (Position, bool) {
	for _, s := range domain.Sections {
		for row, candidate := range ix.sections[s] {
			if candidate == id {
				return Position{Section: s, Row: row}, true
			}
		}
	}
	return Position{}, false
}

func (ix *index) snapshot(s domain.Section) []domain.Task {
	out := make([]domain.Task, len(ix.sections[s]))
	for i, id := range ix.sections[s] {
		out[i] = ix.tasks[id]
	}
	return out
}

func (ix *index) removeAt(p Position) {
	ids := ix.sections[p.Section]
	ix.sections[p.Section] = append(ids[:p.Row:p.Row], ids[p.Row+1:]...)
}

func (ix *index) insertAt(p Position, id int64) {
	ids := ix.sections[p.Section]
	ids = append(ids, 0)
	copy(ids[p.Row+1:], ids[p.Row:])
	ids[p.Row] = id
	ix.sections[p.Section] = ids
}

// apply folds one change into the index. New tasks are appended to their
// section; toggled tasks go to the head of their new section; edits stay
// in place.
func (ix *index) apply(c services.Change) indexUpdate {
	t := c.Task
	old, known := ix.position(t.ID)

	switch c.Kind {
	case services.ChangeInserted:
		if known {
			return ix.replace(old, t)
		}
		to := Position{Section: t.Section(), Row: ix.count(t.Section())}
		ix.tasks[t.ID] = t
		ix.insertAt(to, t.ID)
		return indexUpdate{action: actionInsert, to: to}

	case services.ChangeUpdated:
		if !known {
			return ix.apply(services.Change{Kind: services.ChangeInserted, ListID: c.ListID, Task: t})
		}
		return ix.replace(old, t)

	case services.ChangeToggled:
		to := Position{Section: t.Section(), Row: 0}
		ix.tasks[t.ID] = t
		if !known {
			ix.insertAt(to, t.ID)
			return indexUpdate{action: actionInsert, to: to}
		}
		ix.removeAt(old)
		ix.insertAt(to, t.ID)
		return indexUpdate{action: actionMove, from: old, to: to}

	case services.ChangeDeleted:
		if !known {
			return indexUpdate{action: actionNone}
		}
		ix.removeAt(old)
		delete(ix.tasks, t.ID)
		return indexUpdate{action: actionDelete, from: old}
	}

	return indexUpdate{action: actionNone}
}

// replace stores a new state for a known task. A section change is treated
// as a toggle.
func (ix *index) replace(old Position, t domain.Task) indexUpdate {
	ix.tasks[t.ID] = t
	if old.Section == t.Section() {
		return indexUpdate{action: actionReload, from: old, to: old}
	}
	to := Position{Section: t.Section(), Row: 0}
	ix.removeAt(old)
	ix.insertAt(to, t.ID)
	return indexUpdate{action: actionMove, from: old, to: to}
}
