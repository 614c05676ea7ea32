package api

import (
	"context"

	"tasklists/internal/config"
	"tasklists/internal/domain"
	"tasklists/internal/services"
	"tasklists/internal/view"
)

// API is the entry point front ends use for list management and for
// opening task list views.
type API interface {
	// List operations, addressed by list name
	Lists(ctx context.Context) ([]*domain.TaskListSummary, error)
	CreateList(ctx context.Context, name string) (*domain.TaskList, error)
	FindList(ctx context.Context, name string) (*domain.TaskList, error)
	RenameList(ctx context.Context, name, newName string) (*domain.TaskList, error)
	DeleteList(ctx context.Context, name string) error

	// OpenView returns a loaded view of the named list. The caller closes it.
	OpenView(ctx context.Context, name string, prompt view.Prompt, display view.Display) (*view.TaskListView, error)

	// Snapshot returns both sections of the named list in display order
	Snapshot(ctx context.Context, name string) (*ListSnapshot, error)

	// FindTasks searches task names and notes. An empty listName searches
	// every list; a nil section searches both.
	FindTasks(ctx context.Context, text, listName string, section *domain.Section) ([]*services.TaskMatch, error)
}

type apiImpl struct {
	services *services.ServiceContainer
	config   *config.Config
}

// New creates a new API instance. cfg may be nil; it is read each time a
// view is opened.
func New(container *services.ServiceContainer, cfg *config.Config) API {
	return &apiImpl{services: container, config: cfg}
}

// viewOptions reads section titles and position resolution from the
// configuration as it is now, after any flag overrides.
func (a *apiImpl) viewOptions() view.Options {
	if a.config == nil {
		return view.DefaultOptions()
	}
	return view.Options{
		PendingTitle:    a.config.Display.PendingTitle,
		CompletedTitle:  a.config.Display.CompletedTitle,
		StrictPositions: a.config.View.StrictPositions,
	}
}

func (a *apiImpl) Lists(ctx context.Context) ([]*domain.TaskListSummary, error) {
	return a.services.ListService.ListLists(ctx)
}

func (a *apiImpl) CreateList(ctx context.Context, name string) (*domain.TaskList, error) {
	return a.services.ListService.CreateList(ctx, name)
}

func (a *apiImpl) FindList(ctx context.Context, name string) (*domain.TaskList, error) {
	return a.services.ListService.GetListByName(ctx, name)
}

func (a *apiImpl) RenameList(ctx context.Context, name, newName string) (*domain.TaskList, error) {
	list, err := a.FindList(ctx, name)
	if err != nil {
		return nil, err
	}
	return a.services.ListService.RenameList(ctx, list.ID, newName)
}

func (a *apiImpl) DeleteList(ctx context.Context, name string) error {
	list, err := a.FindList(ctx, name)
	if err != nil {
		return err
	}
	return a.services.ListService.DeleteList(ctx, list.ID)
}

func (a *apiImpl) OpenView(ctx context.Context, name string, prompt view.Prompt, display view.Display) (*view.TaskListView, error) {
	list, err := a.FindList(ctx, name)
	if err != nil {
		return nil, err
	}

	v := view.New(a.services.TaskService, prompt, display, a.viewOptions())
	if err := v.Load(ctx, *list); err != nil {
		return nil, err
	}
	return v, nil
}

func (a *apiImpl) FindTasks(ctx context.Context, text, listName string, section *domain.Section) ([]*services.TaskMatch, error) {
	opts := domain.SearchOptions{Text: text, Section: section}
	if listName != "" {
		list, err := a.FindList(ctx, listName)
		if err != nil {
			return nil, err
		}
		opts.ListID = &list.ID
	}
	return a.services.SearchService.SearchTasks(ctx, opts)
}
