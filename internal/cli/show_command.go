package cli

import (
	"context"

	"tasklists/internal/errors"
)

// ShowCommand handles the show command
type ShowCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewShowCommand creates a new show command handler
func NewShowCommand(app *App) *ShowCommand {
	return &ShowCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute prints both sections of the list with row addresses
func (c *ShowCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "show", "usage: tl show LIST")
	}

	v, _, err := c.app.openView(ctx, args[0], c.app.newPrompt(nil, nil))
	if err != nil {
		return c.errorHandler.Handle("show list", err)
	}
	defer v.Close()

	printView(c.app.out, v, c.app.config.Display.ShowNotes)
	return nil
}
