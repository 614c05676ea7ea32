package cli

import (
	"context"

	"tasklists/internal/errors"
)

// EditCommand handles the edit command
type EditCommand struct {
	app          *App
	name         *string
	note         *string
	errorHandler *ErrorHandler
}

// NewEditCommand creates a new edit command handler. name and note are nil
// unless given as flags; with neither, both are read from input.
func NewEditCommand(app *App, name, note *string) *EditCommand {
	return &EditCommand{app: app, name: name, note: note, errorHandler: NewErrorHandler()}
}

// Execute edits the task at LIST SECTION ROW
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return errors.NewInvalidInputError("command", "edit", "usage: tl edit LIST SECTION ROW [--name NAME] [--note NOTE]")
	}

	v, display, err := c.app.openView(ctx, args[0], c.app.newPrompt(c.name, c.note))
	if err != nil {
		return c.errorHandler.Handle("edit task", err)
	}
	defer v.Close()

	section, row, err := parsePosition(v, args[1], args[2])
	if err != nil {
		return err
	}

	if err := v.RequestEdit(ctx, section, row); err != nil {
		return c.errorHandler.HandleView("edit task", display, err)
	}
	c.app.afterChange(v)
	return nil
}
