package sqlite

import (
	"tasklists/internal/repository"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

const taskColumns = `id, list_id, name, note, is_complete, position, created_at, updated_at`

const taskListColumns = `id, name, created_at`

// ScanTask scans a single task from a database row
func ScanTask(scanner Scanner) (*repository.Task, error) {
	task := &repository.Task{}
	var complete int64
	var createdAt, updatedAt string

	err := scanner.Scan(
		&task.ID,
		&task.ListID,
		&task.Name,
		&task.Note,
		&complete,
		&task.Position,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	task.IsComplete = complete != 0
	if task.CreatedAt, err = ParseTimeFromDB(createdAt); err != nil {
		return nil, err
	}
	if task.UpdatedAt, err = ParseTimeFromDB(updatedAt); err != nil {
		return nil, err
	}

	return task, nil
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*repository.Task, error) {
	tasks := []*repository.Task{}
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// ScanTaskList scans a single task list from a database row
func ScanTaskList(scanner Scanner) (*repository.TaskList, error) {
	list := &repository.TaskList{}
	var createdAt string
	if err := scanner.Scan(&list.ID, &list.Name, &createdAt); err != nil {
		return nil, err
	}

	var err error
	if list.CreatedAt, err = ParseTimeFromDB(createdAt); err != nil {
		return nil, err
	}
	return list, nil
}

// ScanTaskLists scans multiple task lists from database rows
func ScanTaskLists(rows Rows) ([]*repository.TaskList, error) {
	lists := []*repository.TaskList{}
	for rows.Next() {
		list, err := ScanTaskList(rows)
		if err != nil {
			return nil, err
		}
		lists = append(lists, list)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lists, nil
}
