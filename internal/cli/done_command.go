package cli

import (
	"context"

	"tasklists/internal/errors"
)

// DoneCommand handles the done command, which flips a task between the
// current and completed sections
type DoneCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewDoneCommand creates a new done command handler
func NewDoneCommand(app *App) *DoneCommand {
	return &DoneCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute toggles the task at LIST SECTION ROW
func (c *DoneCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return errors.NewInvalidInputError("command", "done", "usage: tl done LIST SECTION ROW")
	}

	v, display, err := c.app.openView(ctx, args[0], c.app.newPrompt(nil, nil))
	if err != nil {
		return c.errorHandler.Handle("toggle task", err)
	}
	defer v.Close()

	section, row, err := parsePosition(v, args[1], args[2])
	if err != nil {
		return err
	}

	if err := v.RequestToggle(ctx, section, row); err != nil {
		return c.errorHandler.HandleView("toggle task", display, err)
	}
	c.app.afterChange(v)
	return nil
}
