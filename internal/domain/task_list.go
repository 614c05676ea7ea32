package domain

import "time"

// TaskList is a named, ordered collection of tasks.
type TaskList struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// NewTaskList creates a TaskList with the given name.
func NewTaskList(name string) TaskList {
	return TaskList{Name: name}
}

// String returns the list name for display purposes.
func (l TaskList) String() string {
	return l.Name
}

// TaskListSummary pairs a list with its per-section task counts.
type TaskListSummary struct {
	List      TaskList
	Pending   int
	Completed int
}

// Total returns the number of tasks in the list.
func (s TaskListSummary) Total() int {
	return s.Pending + s.Completed
}
