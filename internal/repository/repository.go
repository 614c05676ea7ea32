package repository

import (
	"context"
	"time"
)

// TaskList is the persisted form of a task list.
type TaskList struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// Task is the persisted form of a task.
// Position orders tasks within their list; smaller sorts first.
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

// ListCounts holds the number of pending and completed tasks in a list.
type ListCounts struct {
	Pending   int
	Completed int
}

// Repository defines the persistence operations shared by every backend.
type Repository interface {
	// Task list operations
	CreateTaskList(ctx context.Context, list *TaskList) error
	GetTaskList(ctx context.Context, id int64) (*TaskList, error)
	GetTaskListByName(ctx context.Context, name string) (*TaskList, error)
	ListTaskLists(ctx context.Context) ([]*TaskList, error)
	CountTasks(ctx context.Context, listID int64) (ListCounts, error)
	UpdateTaskList(ctx context.Context, list *TaskList) error
	DeleteTaskList(ctx context.Context, id int64) error

	// Task operations.
	// CreateTask appends the task after every existing task of its list.
	CreateTask(ctx context.Context, task *Task) error
	GetTask(ctx context.Context, id int64) (*Task, error)
	// ListTasks returns the tasks of a list ordered by position, then id.
	ListTasks(ctx context.Context, listID int64) ([]*Task, error)
	// UpdateTask saves name and note; position and completion are untouched.
	UpdateTask(ctx context.Context, task *Task) error
	// SetTaskComplete sets the completion flag and moves the task ahead of
	// every other task in its list.
	SetTaskComplete(ctx context.Context, id int64, complete bool) (*Task, error)
	DeleteTask(ctx context.Context, id int64) error

	// Utility
	Close() error
}
