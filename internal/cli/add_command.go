package cli

import (
	"context"
	"strings"

	"tasklists/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	app          *App
	note         *string
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler. note is nil when --note
// was not given.
func NewAddCommand(app *App, note *string) *AddCommand {
	return &AddCommand{app: app, note: note, errorHandler: NewErrorHandler()}
}

// Execute appends a task to the current section. Without a name the task
// is read from input.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "add", "usage: tl add LIST [NAME] [--note NOTE]")
	}

	var name *string
	if len(args) > 1 {
		joined := strings.Join(args[1:], " ")
		name = &joined
	}

	v, display, err := c.app.openView(ctx, args[0], c.app.newPrompt(name, c.note))
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}
	defer v.Close()

	if err := v.RequestCreate(ctx); err != nil {
		return c.errorHandler.HandleView("add task", display, err)
	}
	c.app.afterChange(v)
	return nil
}
