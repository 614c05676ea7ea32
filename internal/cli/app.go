package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"strconv"

	"tasklists/internal/api"
	"tasklists/internal/config"
	"tasklists/internal/domain"
	"tasklists/internal/errors"
	"tasklists/internal/view"
)

// App holds what every command handler needs
type App struct {
	api    api.API
	config *config.Config
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
}

// NewApp creates a CLI application bound to the process's standard streams
func NewApp(apiInstance api.API, cfg *config.Config) *App {
	return NewAppWithIO(apiInstance, cfg, os.Stdin, os.Stdout, os.Stderr)
}

// NewAppWithIO creates a CLI application with explicit streams
func NewAppWithIO(apiInstance api.API, cfg *config.Config, in io.Reader, out, errOut io.Writer) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &App{
		api:    apiInstance,
		config: cfg,
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
	}
}

// openView loads the named list behind prompt and a line display.
// The caller closes the view.
func (a *App) openView(ctx context.Context, listName string, prompt view.Prompt) (*view.TaskListView, *LineDisplay, error) {
	display := NewLineDisplay(a.out, a.errOut)
	v, err := a.api.OpenView(ctx, listName, prompt, display)
	if err != nil {
		return nil, nil, err
	}
	display.Attach(v)
	return v, display, nil
}

// newPrompt creates a line prompt reading from the app's input
func (a *App) newPrompt(name, note *string) *LinePrompt {
	return NewLinePrompt(a.in, a.out, name, note)
}

// afterChange prints the whole list when verbose output is enabled
func (a *App) afterChange(v *view.TaskListView) {
	if a.config.Application.Verbose {
		printView(a.out, v, a.config.Display.ShowNotes)
	}
}

// parsePosition reads SECTION and ROW arguments and checks them against v
func parsePosition(v *view.TaskListView, sectionArg, rowArg string) (domain.Section, int, error) {
	section, err := domain.ParseSection(sectionArg)
	if err != nil {
		return 0, 0, errors.NewInvalidInputError("section", sectionArg, "use current or completed (0 or 1)")
	}

	row, err := strconv.Atoi(rowArg)
	if err != nil {
		return 0, 0, errors.NewInvalidInputError("row", rowArg, "must be a number")
	}
	if row < 0 || row >= v.RowCount(section) {
		return 0, 0, errors.NewInvalidInputError("row", row,
			"no such row in the "+section.String()+" section of "+v.Title())
	}
	return section, row, nil
}
