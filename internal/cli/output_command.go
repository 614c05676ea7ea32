package cli

import (
	"context"
	"strings"

	"tasklists/internal/errors"
	"tasklists/internal/export"
)

// OutputCommand handles the output command
type OutputCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewOutputCommand creates a new output command handler
func NewOutputCommand(app *App) *OutputCommand {
	return &OutputCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute writes the list to standard output. The format defaults to the
// configured one when format= is omitted.
func (c *OutputCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errors.NewInvalidInputError("command", "output", "usage: tl output LIST [format=csv|json|pdf]")
	}

	format := c.app.config.Commands.OutputDefaultFormat
	if len(args) == 2 {
		if !strings.HasPrefix(args[1], "format=") {
			return errors.NewInvalidInputError("format", args[1], "invalid format option")
		}
		format = strings.TrimPrefix(args[1], "format=")
	}

	snap, err := c.app.api.Snapshot(ctx, args[0])
	if err != nil {
		return c.errorHandler.Handle("export list", err)
	}
	return export.Write(c.app.out, snap, format)
}
