package services

import (
	"context"
	"strings"

	"tasklists/internal/config"
	"tasklists/internal/domain"
	"tasklists/internal/errors"
	"tasklists/internal/repository"
	"tasklists/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          repository.Repository
	feed          *ChangeFeed
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
}

// NewTaskService creates a new TaskService instance
func NewTaskService(repo repository.Repository, feed *ChangeFeed, cfg *config.Config) TaskService {
	tv := validation.NewTaskValidator()
	if cfg != nil {
		tv = validation.NewTaskValidatorWithConfig(cfg)
	}
	if feed == nil {
		feed = NewChangeFeed()
	}
	return &taskServiceImpl{
		repo:          repo,
		feed:          feed,
		mapper:        domain.NewMapper(),
		taskValidator: tv,
	}
}

func validateID(id int64, what string) error {
	if id <= 0 {
		return errors.NewValidationError("invalid "+what+" ID", nil)
	}
	return nil
}

// Create appends a new pending task to a list
func (t *taskServiceImpl) Create(ctx context.Context, listID int64, name, note string) (*domain.Task, error) {
	name = strings.TrimSpace(name)
	note = strings.TrimSpace(note)
	if err := t.taskValidator.ValidateTaskForCreation(listID, name, note); err != nil {
		return nil, validation.ToAppError(err)
	}

	row := &repository.Task{ListID: listID, Name: name, Note: note}
	if err := t.repo.CreateTask(ctx, row); err != nil {
		return nil, err
	}

	task := t.mapper.Task.FromRepository(*row)
	t.feed.Publish(Change{Kind: ChangeInserted, ListID: listID, Task: task})
	return &task, nil
}

// GetTask retrieves a task by its ID
func (t *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if err := validateID(id, "task"); err != nil {
		return nil, err
	}

	row, err := t.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	task := t.mapper.Task.FromRepository(*row)
	return &task, nil
}

// Edit replaces the name and note of a task. Completion and position are
// left untouched.
func (t *taskServiceImpl) Edit(ctx context.Context, id int64, name, note string) (*domain.Task, error) {
	name = strings.TrimSpace(name)
	note = strings.TrimSpace(note)
	if err := t.taskValidator.ValidateTaskForUpdate(id, name, note); err != nil {
		return nil, validation.ToAppError(err)
	}

	row, err := t.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	row.Name = name
	row.Note = note
	if err := t.repo.UpdateTask(ctx, row); err != nil {
		return nil, err
	}

	task := t.mapper.Task.FromRepository(*row)
	t.feed.Publish(Change{Kind: ChangeUpdated, ListID: task.ListID, Task: task})
	return &task, nil
}

// ToggleComplete flips the completion flag; the task moves to the head of
// its new section.
func (t *taskServiceImpl) ToggleComplete(ctx context.Context, id int64) (*domain.Task, error) {
	if err := validateID(id, "task"); err != nil {
		return nil, err
	}

	current, err := t.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	row, err := t.repo.SetTaskComplete(ctx, id, !current.IsComplete)
	if err != nil {
		return nil, err
	}

	task := t.mapper.Task.FromRepository(*row)
	t.feed.Publish(Change{Kind: ChangeToggled, ListID: task.ListID, Task: task})
	return &task, nil
}

// Delete removes a task
func (t *taskServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := validateID(id, "task"); err != nil {
		return err
	}

	row, err := t.repo.GetTask(ctx, id)
	if err != nil {
		return err
	}

	if err := t.repo.DeleteTask(ctx, id); err != nil {
		return err
	}

	task := t.mapper.Task.FromRepository(*row)
	t.feed.Publish(Change{Kind: ChangeDeleted, ListID: task.ListID, Task: task})
	return nil
}

// Tasks returns the tasks of a list ordered by position
func (t *taskServiceImpl) Tasks(ctx context.Context, listID int64) ([]*domain.Task, error) {
	if err := validateID(listID, "list"); err != nil {
		return nil, err
	}

	rows, err := t.repo.ListTasks(ctx, listID)
	if err != nil {
		return nil, err
	}
	return t.mapper.Task.FromRepositorySlice(rows), nil
}

// Subscribe registers an observer of listID's changes
func (t *taskServiceImpl) Subscribe(listID int64, obs Observer) (cancel func()) {
	return t.feed.Subscribe(listID, obs)
}
