package api

import (
	"context"
	"testing"

	"tasklists/internal/config"
	"tasklists/internal/domain"
	apperrors "tasklists/internal/errors"
	"tasklists/internal/repository/sqlite"
	"tasklists/internal/services"
	"tasklists/internal/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestAPI(t *testing.T, cfg *config.Config) (API, *services.ServiceContainer) {
	t.Helper()
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	container := services.NewServiceContainer(repo, cfg)
	return New(container, cfg), container
}

type confirmPrompt struct{ draft view.Draft }

func (p confirmPrompt) Show(_ string, _ *view.Draft, onConfirm func(view.Draft)) {
	onConfirm(p.draft)
}

type nopDisplay struct{}

func (nopDisplay) InsertRow(view.Position)              {}
func (nopDisplay) ReloadRow(view.Position)              {}
func (nopDisplay) DeleteRow(view.Position)              {}
func (nopDisplay) MoveRow(view.Position, view.Position) {}
func (nopDisplay) Notify(string)                        {}

func TestAPI_ListLifecycle(t *testing.T) {
	a, _ := setupTestAPI(t, nil)
	ctx := context.Background()

	created, err := a.CreateList(ctx, "Groceries")
	require.NoError(t, err)
	assert.Equal(t, "Groceries", created.Name)

	found, err := a.FindList(ctx, "Groceries")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	renamed, err := a.RenameList(ctx, "Groceries", "Shopping")
	require.NoError(t, err)
	assert.Equal(t, created.ID, renamed.ID)

	_, err = a.FindList(ctx, "Groceries")
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound))

	lists, err := a.Lists(ctx)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, "Shopping", lists[0].List.Name)

	require.NoError(t, a.DeleteList(ctx, "Shopping"))
	lists, err = a.Lists(ctx)
	require.NoError(t, err)
	assert.Empty(t, lists)

	err = a.DeleteList(ctx, "Shopping")
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound))
}

func TestAPI_OpenView(t *testing.T) {
	a, _ := setupTestAPI(t, nil)
	ctx := context.Background()
	_, err := a.CreateList(ctx, "Home")
	require.NoError(t, err)

	v, err := a.OpenView(ctx, "Home", confirmPrompt{view.Draft{Name: "Dishes"}}, nopDisplay{})
	require.NoError(t, err)
	defer v.Close()

	assert.Equal(t, "Home", v.Title())
	require.NoError(t, v.RequestCreate(ctx))
	assert.Equal(t, 1, v.RowCount(domain.SectionPending))

	_, err = a.OpenView(ctx, "Missing", nil, nil)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound))
}

func TestAPI_OpenView_ReadsConfigWhenOpened(t *testing.T) {
	cfg := config.NewConfig()
	a, _ := setupTestAPI(t, cfg)
	ctx := context.Background()
	_, err := a.CreateList(ctx, "Home")
	require.NoError(t, err)

	// changed after New, as flag overrides are
	cfg.Display.PendingTitle = "TODO"
	cfg.Display.CompletedTitle = "DONE"

	v, err := a.OpenView(ctx, "Home", nil, nil)
	require.NoError(t, err)
	defer v.Close()

	assert.Equal(t, "TODO", v.SectionTitle(domain.SectionPending))
	assert.Equal(t, "DONE", v.SectionTitle(domain.SectionCompleted))

	plain, _ := setupTestAPI(t, nil)
	_, err = plain.CreateList(ctx, "Home")
	require.NoError(t, err)
	v2, err := plain.OpenView(ctx, "Home", nil, nil)
	require.NoError(t, err)
	defer v2.Close()
	assert.Equal(t, "CURRENT TASKS", v2.SectionTitle(domain.SectionPending))
}

func TestAPI_Snapshot(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Display.CompletedTitle = "DONE"
	a, container := setupTestAPI(t, cfg)
	ctx := context.Background()

	list, err := a.CreateList(ctx, "Home")
	require.NoError(t, err)
	var last *domain.Task
	for _, name := range []string{"A", "B", "C"} {
		last, err = container.TaskService.Create(ctx, list.ID, name, "")
		require.NoError(t, err)
	}
	_, err = container.TaskService.ToggleComplete(ctx, last.ID)
	require.NoError(t, err)

	snap, err := a.Snapshot(ctx, "Home")
	require.NoError(t, err)

	assert.Equal(t, "Home", snap.List.Name)
	assert.Equal(t, 3, snap.Total())
	assert.Equal(t, "CURRENT TASKS", snap.Pending.Title)
	assert.Equal(t, "DONE", snap.Completed.Title)
	require.Len(t, snap.Pending.Tasks, 2)
	assert.Equal(t, "A", snap.Pending.Tasks[0].Name)
	assert.Equal(t, "B", snap.Pending.Tasks[1].Name)
	require.Len(t, snap.Completed.Tasks, 1)
	assert.Equal(t, "C", snap.Completed.Tasks[0].Name)
	assert.Len(t, snap.Sections(), 2)

	assert.Zero(t, container.Feed.SubscriberCount(list.ID))
}

func TestAPI_FindTasks(t *testing.T) {
	a, container := setupTestAPI(t, nil)
	ctx := context.Background()

	home, err := a.CreateList(ctx, "Home")
	require.NoError(t, err)
	work, err := a.CreateList(ctx, "Work")
	require.NoError(t, err)
	_, err = container.TaskService.Create(ctx, home.ID, "Call plumber", "")
	require.NoError(t, err)
	_, err = container.TaskService.Create(ctx, work.ID, "Call client", "")
	require.NoError(t, err)

	matches, err := a.FindTasks(ctx, "call", "", nil)
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	matches, err = a.FindTasks(ctx, "call", "Work", nil)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Call client", matches[0].Task.Name)

	completed := domain.SectionCompleted
	matches, err = a.FindTasks(ctx, "call", "", &completed)
	require.NoError(t, err)
	assert.Empty(t, matches)

	_, err = a.FindTasks(ctx, "call", "Garden", nil)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound))
}
