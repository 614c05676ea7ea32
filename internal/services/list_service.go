package services

import (
	"context"

	"tasklists/internal/config"
	"tasklists/internal/domain"
	"tasklists/internal/errors"
	"tasklists/internal/repository"
	"tasklists/internal/validation"
)

// listServiceImpl implements the ListService interface
type listServiceImpl struct {
	repo          repository.Repository
	feed          *ChangeFeed
	mapper        *domain.Mapper
	listValidator *validation.ListValidator
}

// NewListService creates a new ListService instance
func NewListService(repo repository.Repository, feed *ChangeFeed, cfg *config.Config) ListService {
	lv := validation.NewListValidator()
	if cfg != nil {
		lv = validation.NewListValidatorWithConfig(cfg)
	}
	if feed == nil {
		feed = NewChangeFeed()
	}
	return &listServiceImpl{
		repo:          repo,
		feed:          feed,
		mapper:        domain.NewMapper(),
		listValidator: lv,
	}
}

// ensureNameFree reports a validation error when another list already uses name
func (l *listServiceImpl) ensureNameFree(ctx context.Context, name string, exceptID int64) error {
	existing, err := l.repo.GetTaskListByName(ctx, name)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != exceptID {
		return errors.NewValidationError("a list named \""+name+"\" already exists", nil)
	}
	return nil
}

// CreateList creates a new, empty task list
func (l *listServiceImpl) CreateList(ctx context.Context, name string) (*domain.TaskList, error) {
	trimmed, err := l.listValidator.GetValidListName(name)
	if err != nil {
		return nil, validation.ToAppError(err)
	}
	if err := l.ensureNameFree(ctx, trimmed, 0); err != nil {
		return nil, err
	}

	row := &repository.TaskList{Name: trimmed}
	if err := l.repo.CreateTaskList(ctx, row); err != nil {
		return nil, err
	}

	list := l.mapper.TaskList.FromRepository(*row)
	return &list, nil
}

// GetList retrieves a list by ID
func (l *listServiceImpl) GetList(ctx context.Context, id int64) (*domain.TaskList, error) {
	if err := validateID(id, "list"); err != nil {
		return nil, err
	}
	row, err := l.repo.GetTaskList(ctx, id)
	if err != nil {
		return nil, err
	}
	list := l.mapper.TaskList.FromRepository(*row)
	return &list, nil
}

// GetListByName retrieves a list by its exact name
func (l *listServiceImpl) GetListByName(ctx context.Context, name string) (*domain.TaskList, error) {
	trimmed, err := l.listValidator.GetValidListName(name)
	if err != nil {
		return nil, validation.ToAppError(err)
	}
	row, err := l.repo.GetTaskListByName(ctx, trimmed)
	if err != nil {
		return nil, err
	}
	list := l.mapper.TaskList.FromRepository(*row)
	return &list, nil
}

// ListLists returns every list with its section counts, ordered by name
func (l *listServiceImpl) ListLists(ctx context.Context) ([]*domain.TaskListSummary, error) {
	rows, err := l.repo.ListTaskLists(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]*domain.TaskListSummary, 0, len(rows))
	for _, row := range rows {
		counts, err := l.repo.CountTasks(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, &domain.TaskListSummary{
			List:      l.mapper.TaskList.FromRepository(*row),
			Pending:   counts.Pending,
			Completed: counts.Completed,
		})
	}
	return summaries, nil
}

// RenameList changes the name of a list
func (l *listServiceImpl) RenameList(ctx context.Context, id int64, name string) (*domain.TaskList, error) {
	if err := validateID(id, "list"); err != nil {
		return nil, err
	}
	trimmed, err := l.listValidator.GetValidListName(name)
	if err != nil {
		return nil, validation.ToAppError(err)
	}

	row, err := l.repo.GetTaskList(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := l.ensureNameFree(ctx, trimmed, id); err != nil {
		return nil, err
	}

	row.Name = trimmed
	if err := l.repo.UpdateTaskList(ctx, row); err != nil {
		return nil, err
	}
	list := l.mapper.TaskList.FromRepository(*row)
	return &list, nil
}

// DeleteList deletes a list and its tasks. Observers of the list see a
// ChangeDeleted for every task that was in it.
func (l *listServiceImpl) DeleteList(ctx context.Context, id int64) error {
	if err := validateID(id, "list"); err != nil {
		return err
	}

	rows, err := l.repo.ListTasks(ctx, id)
	if err != nil {
		return err
	}
	if err := l.repo.DeleteTaskList(ctx, id); err != nil {
		return err
	}

	for _, task := range l.mapper.Task.FromRepositorySlice(rows) {
		l.feed.Publish(Change{Kind: ChangeDeleted, ListID: id, Task: *task})
	}
	return nil
}
