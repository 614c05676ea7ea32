package cli

import (
	"context"
	"fmt"
	"strings"

	"tasklists/internal/api"
	"tasklists/internal/errors"
)

// ListCommand handles the lists command
type ListCommand struct {
	app *App
}

// NewListCommand creates a new lists command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute prints every list with its task counts
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	summaries, err := c.app.api.Lists(ctx)
	if err != nil {
		return NewErrorHandler().Handle("list task lists", err)
	}

	if len(summaries) == 0 {
		fmt.Fprintln(c.app.out, "No task lists found")
		return nil
	}

	width := len("LIST")
	for _, s := range summaries {
		if len(s.List.Name) > width {
			width = len(s.List.Name)
		}
	}

	fmt.Fprintf(c.app.out, "%-*s  %7s  %9s\n", width, "LIST", "CURRENT", "COMPLETED")
	for _, s := range summaries {
		fmt.Fprintf(c.app.out, "%-*s  %7d  %9d\n", width, s.List.Name, s.Pending, s.Completed)
	}
	return nil
}

// ListAdminCommand handles new-list, rename-list and rm-list
type ListAdminCommand struct {
	api          api.API
	app          *App
	errorHandler *ErrorHandler
}

// NewListAdminCommand creates a new list administration handler
func NewListAdminCommand(app *App) *ListAdminCommand {
	return &ListAdminCommand{api: app.api, app: app, errorHandler: NewErrorHandler()}
}

// Create makes a new empty list; all args form its name
func (c *ListAdminCommand) Create(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("command", "new-list", "usage: tl new-list NAME")
	}

	list, err := c.api.CreateList(ctx, strings.Join(args, " "))
	if err != nil {
		return c.errorHandler.Handle("create list", err)
	}
	fmt.Fprintf(c.app.out, "Created list: %s\n", list.Name)
	return nil
}

// Rename renames the list named args[0] to args[1]
func (c *ListAdminCommand) Rename(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewInvalidInputError("command", "rename-list", "usage: tl rename-list OLD NEW")
	}

	list, err := c.api.RenameList(ctx, args[0], args[1])
	if err != nil {
		return c.errorHandler.Handle("rename list", err)
	}
	fmt.Fprintf(c.app.out, "Renamed list %s to %s\n", args[0], list.Name)
	return nil
}

// Delete removes a list and all of its tasks
func (c *ListAdminCommand) Delete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("command", "rm-list", "usage: tl rm-list NAME")
	}

	name := strings.Join(args, " ")
	if err := c.api.DeleteList(ctx, name); err != nil {
		return c.errorHandler.Handle("delete list", err)
	}
	fmt.Fprintf(c.app.out, "Deleted list: %s\n", name)
	return nil
}
