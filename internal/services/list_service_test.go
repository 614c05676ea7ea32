package services

import (
	"context"
	"testing"

	"tasklists/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListService_CreateList(t *testing.T) {
	container := NewServiceContainer(setupRepo(t), nil)
	ctx := context.Background()

	list, err := container.ListService.CreateList(ctx, "  Groceries ")
	require.NoError(t, err)
	assert.Equal(t, "Groceries", list.Name)
	assert.Greater(t, list.ID, int64(0))

	_, err = container.ListService.CreateList(ctx, "Groceries")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
	assert.Contains(t, errors.GetUserMessage(err), "already exists")

	_, err = container.ListService.CreateList(ctx, "")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
}

func TestListService_GetList(t *testing.T) {
	container, list := setupServices(t)
	ctx := context.Background()

	byID, err := container.ListService.GetList(ctx, list.ID)
	require.NoError(t, err)
	assert.Equal(t, "Home", byID.Name)

	byName, err := container.ListService.GetListByName(ctx, "Home")
	require.NoError(t, err)
	assert.Equal(t, list.ID, byName.ID)

	_, err = container.ListService.GetListByName(ctx, "Elsewhere")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	_, err = container.ListService.GetList(ctx, -1)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
}

func TestListService_ListLists(t *testing.T) {
	container, home := setupServices(t)
	ctx := context.Background()
	_, err := container.ListService.CreateList(ctx, "Away")
	require.NoError(t, err)

	a, err := container.TaskService.Create(ctx, home.ID, "A", "")
	require.NoError(t, err)
	_, err = container.TaskService.Create(ctx, home.ID, "B", "")
	require.NoError(t, err)
	_, err = container.TaskService.ToggleComplete(ctx, a.ID)
	require.NoError(t, err)

	summaries, err := container.ListService.ListLists(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "Away", summaries[0].List.Name)
	assert.Equal(t, 0, summaries[0].Total())

	assert.Equal(t, "Home", summaries[1].List.Name)
	assert.Equal(t, 1, summaries[1].Pending)
	assert.Equal(t, 1, summaries[1].Completed)
}

func TestListService_RenameList(t *testing.T) {
	container, home := setupServices(t)
	ctx := context.Background()
	_, err := container.ListService.CreateList(ctx, "Work")
	require.NoError(t, err)

	renamed, err := container.ListService.RenameList(ctx, home.ID, "House")
	require.NoError(t, err)
	assert.Equal(t, "House", renamed.Name)

	// renaming to its own name is allowed
	_, err = container.ListService.RenameList(ctx, home.ID, "House")
	assert.NoError(t, err)

	_, err = container.ListService.RenameList(ctx, home.ID, "Work")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))

	_, err = container.ListService.RenameList(ctx, 404, "Nowhere")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestListService_DeleteList(t *testing.T) {
	container, home := setupServices(t)
	ctx := context.Background()
	_, err := container.TaskService.Create(ctx, home.ID, "A", "")
	require.NoError(t, err)
	_, err = container.TaskService.Create(ctx, home.ID, "B", "")
	require.NoError(t, err)

	rec := &recorder{}
	container.TaskService.Subscribe(home.ID, rec.observe)

	require.NoError(t, container.ListService.DeleteList(ctx, home.ID))
	assert.Equal(t, []ChangeKind{ChangeDeleted, ChangeDeleted}, rec.kinds())

	_, err = container.ListService.GetList(ctx, home.ID)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	err = container.ListService.DeleteList(ctx, home.ID)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}
