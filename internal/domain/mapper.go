package domain

import (
	"tasklists/internal/repository"
)

// TaskMapper handles conversion between domain and repository Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToRepository converts a domain Task to a repository row.
func (m *TaskMapper) ToRepository(t Task) repository.Task {
	return repository.Task{
		ID:         t.ID,
		ListID:     t.ListID,
		Name:       t.Name,
		Note:       t.Note,
		IsComplete: t.IsComplete,
		Position:   t.Position,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

// FromRepository converts a repository row to a domain Task.
func (m *TaskMapper) FromRepository(row repository.Task) Task {
	return Task{
		ID:         row.ID,
		ListID:     row.ListID,
		Name:       row.Name,
		Note:       row.Note,
		IsComplete: row.IsComplete,
		Position:   row.Position,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

// FromRepositorySlice converts repository rows to domain Tasks.
func (m *TaskMapper) FromRepositorySlice(rows []*repository.Task) []*Task {
	tasks := make([]*Task, len(rows))
	for i, row := range rows {
		task := m.FromRepository(*row)
		tasks[i] = &task
	}
	return tasks
}

// TaskListMapper handles conversion between domain and repository TaskList models.
type TaskListMapper struct{}

// NewTaskListMapper creates a new TaskListMapper instance.
func NewTaskListMapper() *TaskListMapper {
	return &TaskListMapper{}
}

// ToRepository converts a domain TaskList to a repository row.
func (m *TaskListMapper) ToRepository(l TaskList) repository.TaskList {
	return repository.TaskList{
		ID:        l.ID,
		Name:      l.Name,
		CreatedAt: l.CreatedAt,
	}
}

// FromRepository converts a repository row to a domain TaskList.
func (m *TaskListMapper) FromRepository(row repository.TaskList) TaskList {
	return TaskList{
		ID:        row.ID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
	}
}

// FromRepositorySlice converts repository rows to domain TaskLists.
func (m *TaskListMapper) FromRepositorySlice(rows []*repository.TaskList) []*TaskList {
	lists := make([]*TaskList, len(rows))
	for i, row := range rows {
		list := m.FromRepository(*row)
		lists[i] = &list
	}
	return lists
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task     *TaskMapper
	TaskList *TaskListMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task:     NewTaskMapper(),
		TaskList: NewTaskListMapper(),
	}
}
