package cli

import (
	"context"
	"fmt"
	"strings"

	"tasklists/internal/domain"
	"tasklists/internal/errors"
	"tasklists/internal/view"
)

// FindCommand handles the find command
type FindCommand struct {
	app          *App
	listName     string
	section      string
	errorHandler *ErrorHandler
}

// NewFindCommand creates a new find command handler. Empty listName and
// section search everywhere.
func NewFindCommand(app *App, listName, section string) *FindCommand {
	return &FindCommand{app: app, listName: listName, section: section, errorHandler: NewErrorHandler()}
}

// Execute prints every task whose name or note contains the args, with the
// address to use in edit, done and rm
func (c *FindCommand) Execute(ctx context.Context, args []string) error {
	var section *domain.Section
	if c.section != "" {
		s, err := domain.ParseSection(c.section)
		if err != nil {
			return errors.NewInvalidInputError("section", c.section, "use current or completed (0 or 1)")
		}
		section = &s
	}

	matches, err := c.app.api.FindTasks(ctx, strings.Join(args, " "), c.listName, section)
	if err != nil {
		return c.errorHandler.Handle("find tasks", err)
	}

	if len(matches) == 0 {
		fmt.Fprintln(c.app.out, "No matching tasks")
		return nil
	}

	width := len("LIST")
	for _, m := range matches {
		if len(m.List.Name) > width {
			width = len(m.List.Name)
		}
	}

	fmt.Fprintf(c.app.out, "%-*s  %-5s  %s\n", width, "LIST", "ROW", "TASK")
	for _, m := range matches {
		pos := view.Position{Section: m.Section, Row: m.Row}
		fmt.Fprintf(c.app.out, "%-*s  %-5s  %s\n", width, m.List.Name, pos, m.Task.Name)
	}
	return nil
}
