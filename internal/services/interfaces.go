package services

import (
	"context"
	"fmt"

	"tasklists/internal/config"
	"tasklists/internal/domain"
	"tasklists/internal/repository"
)

// ChangeKind identifies what happened to a task
type ChangeKind int

const (
	ChangeInserted ChangeKind = iota
	ChangeUpdated
	ChangeToggled
	ChangeDeleted
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeInserted:
		return "inserted"
	case ChangeUpdated:
		return "updated"
	case ChangeToggled:
		return "toggled"
	case ChangeDeleted:
		return "deleted"
	default:
		return fmt.Sprintf("change(%d)", int(k))
	}
}

// Change describes a committed mutation of one task. Task holds the state
// after the mutation; for ChangeDeleted it is the last state before removal.
type Change struct {
	Kind   ChangeKind
	ListID int64
	Task   domain.Task
}

// Observer receives changes synchronously, before the mutating call returns
type Observer func(Change)

// TaskService handles task lifecycle within a list and announces every
// committed mutation to subscribers of that list.
type TaskService interface {
	// Task CRUD operations
	Create(ctx context.Context, listID int64, name, note string) (*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	Edit(ctx context.Context, id int64, name, note string) (*domain.Task, error)
	ToggleComplete(ctx context.Context, id int64) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error

	// Tasks returns the tasks of a list in display order
	Tasks(ctx context.Context, listID int64) ([]*domain.Task, error)

	// Subscribe registers obs for changes to listID until cancel is called
	Subscribe(listID int64, obs Observer) (cancel func())
}

// ListService handles task list lifecycle
type ListService interface {
	CreateList(ctx context.Context, name string) (*domain.TaskList, error)
	GetList(ctx context.Context, id int64) (*domain.TaskList, error)
	GetListByName(ctx context.Context, name string) (*domain.TaskList, error)
	ListLists(ctx context.Context) ([]*domain.TaskListSummary, error)
	RenameList(ctx context.Context, id int64, name string) (*domain.TaskList, error)
	DeleteList(ctx context.Context, id int64) error
}

// TaskMatch is one search result: a task with the row it occupies in its
// list's section
type TaskMatch struct {
	List    domain.TaskList
	Task    domain.Task
	Section domain.Section
	Row     int
}

// SearchService finds tasks across lists
type SearchService interface {
	SearchTasks(ctx context.Context, opts domain.SearchOptions) ([]*TaskMatch, error)
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	TaskService   TaskService
	ListService   ListService
	SearchService SearchService
	Feed          *ChangeFeed
}

// NewServiceContainer creates a new service container over one repository.
// cfg may be nil, in which case default validation limits apply.
func NewServiceContainer(repo repository.Repository, cfg *config.Config) *ServiceContainer {
	feed := NewChangeFeed()
	return &ServiceContainer{
		TaskService:   NewTaskService(repo, feed, cfg),
		ListService:   NewListService(repo, feed, cfg),
		SearchService: NewSearchService(repo),
		Feed:          feed,
	}
}
