package cli

import (
	"context"

	"tasklists/internal/errors"
)

// DeleteCommand handles the rm command
type DeleteCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new rm command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute deletes the task at LIST SECTION ROW. This cannot be undone.
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return errors.NewInvalidInputError("command", "rm", "usage: tl rm LIST SECTION ROW")
	}

	v, display, err := c.app.openView(ctx, args[0], c.app.newPrompt(nil, nil))
	if err != nil {
		return c.errorHandler.Handle("delete task", err)
	}
	defer v.Close()

	section, row, err := parsePosition(v, args[1], args[2])
	if err != nil {
		return err
	}

	if err := v.RequestDelete(ctx, section, row); err != nil {
		return c.errorHandler.HandleView("delete task", display, err)
	}
	c.app.afterChange(v)
	return nil
}
