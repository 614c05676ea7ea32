package domain

import "time"

// Task is a single to-do item owned by a TaskList.
type Task struct {
	ID         int64
	ListID     int64
	Name       string
	Note       string
	IsComplete bool
	Position   int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewTask creates a pending task with the given name and note.
func NewTask(listID int64, name, note string) Task {
	return Task{
		ListID: listID,
		Name:   name,
		Note:   note,
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.Name != "" && t.ListID > 0
}

// Section returns the section the task is displayed in.
func (t Task) Section() Section {
	if t.IsComplete {
		return SectionCompleted
	}
	return SectionPending
}

// ActionLabel is the label of the action that flips the completion flag.
func (t Task) ActionLabel() string {
	if t.IsComplete {
		return "Undone"
	}
	return "Done"
}

// String returns the task name for display purposes.
func (t Task) String() string {
	return t.Name
}

// Before reports whether t sorts ahead of other within a list.
func (t Task) Before(other Task) bool {
	if t.Position != other.Position {
		return t.Position < other.Position
	}
	return t.ID < other.ID
}
