package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"tasklists/internal/api"
	"tasklists/internal/config"
	"tasklists/internal/services"
	"tasklists/internal/tui"
)

// APIFactory builds the API once configuration is final. The returned
// closer releases the storage behind it.
type APIFactory func(ctx context.Context, cfg *config.Config) (api.API, io.Closer, error)

// DefaultAPIFactory opens the repository selected by TL_ENV and the
// database configuration.
func DefaultAPIFactory(ctx context.Context, cfg *config.Config) (api.API, io.Closer, error) {
	factory := config.NewRepositoryFactory(config.GetEnvironment(), cfg)
	repo, err := factory.CreateRepository(ctx)
	if err != nil {
		return nil, nil, err
	}
	return api.New(services.NewServiceContainer(repo, cfg), cfg), repo, nil
}

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	config  *config.Config
	factory APIFactory
	app     *App
	closer  io.Closer
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(cfg *config.Config, factory APIFactory) *RootCommand {
	if factory == nil {
		factory = DefaultAPIFactory
	}
	root := &RootCommand{
		config:  cfg,
		factory: factory,
	}

	root.cmd = &cobra.Command{
		Use:   "tl",
		Short: "A command-line to-do list manager",
		Long: `Task Lists (tl) keeps named to-do lists. Each list shows its tasks in two
sections, CURRENT TASKS and COMPLETED TASKS. Rows are addressed as
SECTION ROW, where SECTION is current (0) or completed (1) and ROW counts
from 0 as printed by "tl show".

EXAMPLES:
  tl new-list Home                         # Create a list
  tl add Home "Take out trash" --note bins # Append a task to CURRENT TASKS
  tl show Home                             # Show both sections with row numbers
  tl done Home current 0                   # Mark the first current task done
  tl done Home completed 0                 # ...and move it back
  tl edit Home current 1 --name "Dishes"   # Rename a task
  tl rm Home completed 0                   # Delete a task
  tl find paint --section current          # Find tasks in every list
  tl output Home format=json > home.json   # Export a list
  tl tui Home                              # Interactive view

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Database Configuration:
    TL_DB_DRIVER                           sqlite or postgres (default: sqlite)
    TL_DB_DIR                              Database directory (default: ~/.tl)
    TL_DB_FILENAME                         Database filename (default: tl.db)
    TL_DB_DSN                              Postgres connection string
    TL_DB_QUERY_TIMEOUT                    Query timeout (default: 10s)
    TL_DB_WRITE_TIMEOUT                    Write timeout (default: 5s)

  Display Configuration:
    TL_DISPLAY_PENDING_TITLE               Current section title (default: CURRENT TASKS)
    TL_DISPLAY_COMPLETED_TITLE             Completed section title (default: COMPLETED TASKS)
    TL_DISPLAY_SHOW_NOTES                  Show task notes (default: true)

  Validation Configuration:
    TL_VALIDATION_TASK_NAME_MIN            Min task name length (default: 1)
    TL_VALIDATION_TASK_NAME_MAX            Max task name length (default: 255)
    TL_VALIDATION_NOTE_MAX                 Max note length (default: 1000)
    TL_VALIDATION_LIST_NAME_MAX            Max list name length (default: 100)

  View Configuration:
    TL_VIEW_STRICT_POSITIONS               Fail instead of falling back to row 0 (default: false)

  Application Configuration:
    TL_APP_TIMEOUT                         Application timeout (default: 60s)
    TL_APP_VERBOSE                         Print the list after each change (default: false)
    TL_OUTPUT_DEFAULT_FORMAT               Default output format (default: csv)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := root.getConfigFromFlags(); err != nil {
				return err
			}
			return root.open(cmd)
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Command exposes the cobra command, e.g. for tests to set args and streams
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Execute runs the root command and releases storage afterwards
func (r *RootCommand) Execute() error {
	err := r.cmd.Execute()
	if r.closer != nil {
		if cerr := r.closer.Close(); cerr != nil && err == nil {
			err = cerr
		}
		r.closer = nil
	}
	return err
}

// open builds the app for the command about to run
func (r *RootCommand) open(cmd *cobra.Command) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
	defer cancel()

	apiInstance, closer, err := r.factory(ctx, r.config)
	if err != nil {
		return err
	}
	r.closer = closer
	r.app = NewAppWithIO(apiInstance, r.config, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	return nil
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Database configuration
	flags.String("db-driver", "", "Database driver, sqlite or postgres (overrides TL_DB_DRIVER)")
	flags.String("db-dir", "", "Database directory (overrides TL_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TL_DB_FILENAME)")
	flags.String("db-dsn", "", "Postgres connection string (overrides TL_DB_DSN)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TL_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides TL_DB_WRITE_TIMEOUT)")

	// Display configuration
	flags.String("pending-title", "", "Current section title (overrides TL_DISPLAY_PENDING_TITLE)")
	flags.String("completed-title", "", "Completed section title (overrides TL_DISPLAY_COMPLETED_TITLE)")
	flags.Bool("show-notes", true, "Show task notes (overrides TL_DISPLAY_SHOW_NOTES)")

	// Validation configuration
	flags.Int("task-name-min-length", 0, "Minimum task name length (overrides TL_VALIDATION_TASK_NAME_MIN)")
	flags.Int("task-name-max-length", 0, "Maximum task name length (overrides TL_VALIDATION_TASK_NAME_MAX)")
	flags.Int("note-max-length", 0, "Maximum note length (overrides TL_VALIDATION_NOTE_MAX)")
	flags.Int("list-name-max-length", 0, "Maximum list name length (overrides TL_VALIDATION_LIST_NAME_MAX)")

	// View configuration
	flags.Bool("strict-positions", false, "Fail when a row cannot be located (overrides TL_VIEW_STRICT_POSITIONS)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Application timeout (overrides TL_APP_TIMEOUT)")
	flags.BoolP("verbose", "v", false, "Print the list after each change (overrides TL_APP_VERBOSE)")
	flags.String("output-format", "", "Default output format (overrides TL_OUTPUT_DEFAULT_FORMAT)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	listsCmd := &cobra.Command{
		Use:   "lists",
		Short: "List task lists",
		Long:  "List every task list with the number of current and completed tasks.",
		Args:  cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, args []string) error {
			return NewListCommand(r.app).Execute(ctx, args)
		}),
	}

	newListCmd := &cobra.Command{
		Use:   "new-list NAME",
		Short: "Create a task list",
		Args:  cobra.MinimumNArgs(1),
		RunE: r.run(func(ctx context.Context, args []string) error {
			return NewListAdminCommand(r.app).Create(ctx, args)
		}),
	}

	renameListCmd := &cobra.Command{
		Use:   "rename-list OLD NEW",
		Short: "Rename a task list",
		Args:  cobra.ExactArgs(2),
		RunE: r.run(func(ctx context.Context, args []string) error {
			return NewListAdminCommand(r.app).Rename(ctx, args)
		}),
	}

	rmListCmd := &cobra.Command{
		Use:   "rm-list NAME",
		Short: "Delete a task list and all its tasks",
		Long:  "Delete a task list and all of its tasks. This operation cannot be undone.",
		Args:  cobra.MinimumNArgs(1),
		RunE: r.run(func(ctx context.Context, args []string) error {
			return NewListAdminCommand(r.app).Delete(ctx, args)
		}),
	}

	showCmd := &cobra.Command{
		Use:   "show LIST",
		Short: "Show a list's current and completed tasks",
		Args:  cobra.ExactArgs(1),
		RunE: r.run(func(ctx context.Context, args []string) error {
			return NewShowCommand(r.app).Execute(ctx, args)
		}),
	}

	addCmd := &cobra.Command{
		Use:   "add LIST [NAME]",
		Short: "Add a task to the current section",
		Long: `Add a task to the end of the current section of LIST.

Without NAME the name and note are read from standard input; an empty
name cancels.`,
		Args: cobra.MinimumNArgs(1),
	}
	addNote := addCmd.Flags().String("note", "", "Task note")
	addCmd.RunE = r.run(func(ctx context.Context, args []string) error {
		return NewAddCommand(r.app, changedString(addCmd, "note", addNote)).Execute(ctx, args)
	})

	editCmd := &cobra.Command{
		Use:   "edit LIST SECTION ROW",
		Short: "Edit a task's name and note",
		Long: `Edit the task at SECTION ROW of LIST. The task keeps its place.

With neither --name nor --note, both are read from standard input; an
empty answer keeps the current value.`,
		Args: cobra.ExactArgs(3),
	}
	editName := editCmd.Flags().String("name", "", "New task name")
	editNote := editCmd.Flags().String("note", "", "New task note")
	editCmd.RunE = r.run(func(ctx context.Context, args []string) error {
		return NewEditCommand(r.app,
			changedString(editCmd, "name", editName),
			changedString(editCmd, "note", editNote)).Execute(ctx, args)
	})

	doneCmd := &cobra.Command{
		Use:     "done LIST SECTION ROW",
		Aliases: []string{"toggle"},
		Short:   "Mark a task done, or not done",
		Long:    "Move the task at SECTION ROW of LIST to the top of the other section.",
		Args:    cobra.ExactArgs(3),
		RunE: r.run(func(ctx context.Context, args []string) error {
			return NewDoneCommand(r.app).Execute(ctx, args)
		}),
	}

	rmCmd := &cobra.Command{
		Use:   "rm LIST SECTION ROW",
		Short: "Delete a task",
		Long:  "Delete the task at SECTION ROW of LIST. This operation cannot be undone.",
		Args:  cobra.ExactArgs(3),
		RunE: r.run(func(ctx context.Context, args []string) error {
			return NewDeleteCommand(r.app).Execute(ctx, args)
		}),
	}

	findCmd := &cobra.Command{
		Use:   "find [TEXT]",
		Short: "Find tasks by name or note",
		Long: `Find tasks whose name or note contains TEXT, ignoring case. Each match
is printed with its list and SECTION.ROW address.`,
		Args: cobra.ArbitraryArgs,
	}
	findList := findCmd.Flags().String("list", "", "Only search this list")
	findSection := findCmd.Flags().String("section", "", "Only search this section (current or completed)")
	findCmd.RunE = r.run(func(ctx context.Context, args []string) error {
		return NewFindCommand(r.app, *findList, *findSection).Execute(ctx, args)
	})

	outputCmd := &cobra.Command{
		Use:   "output LIST [format=csv|json|pdf]",
		Short: "Export a list in the specified format",
		Long: `Export a task list to standard output.

Supported formats:
  csv  - one row per task with its section and row
  json - the list with both sections
  pdf  - a printable document

Example:
  tl output Home format=pdf > home.pdf`,
		Args: cobra.RangeArgs(1, 2),
		RunE: r.run(func(ctx context.Context, args []string) error {
			return NewOutputCommand(r.app).Execute(ctx, args)
		}),
	}

	tuiCmd := &cobra.Command{
		Use:   "tui LIST",
		Short: "Open a list in the interactive view",
		Long: `Open LIST in a full-screen view.

Keys: up/down move, tab switches section, a adds, e edits, d deletes,
space or enter marks done/not done, esc cancels the editor, q quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Interactive sessions are not bound by the application timeout
			return tui.Run(cmd.Context(), r.app.api, r.config, args[0])
		},
	}

	r.cmd.AddCommand(
		listsCmd,
		newListCmd,
		renameListCmd,
		rmListCmd,
		showCmd,
		addCmd,
		editCmd,
		doneCmd,
		rmCmd,
		findCmd,
		outputCmd,
		tuiCmd,
	)
}

// run wraps a handler with the application timeout
func (r *RootCommand) run(handler func(ctx context.Context, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
		defer cancel()
		return handler(ctx, args)
	}
}

// changedString returns the flag value only when the user set it
func changedString(cmd *cobra.Command, name string, value *string) *string {
	if cmd.Flags().Changed(name) {
		return value
	}
	return nil
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// getConfigFromFlags applies flags the user set on top of the loaded
// configuration and validates the result
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	str := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}
	dur := func(name string) *time.Duration {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetDuration(name)
		return &v
	}
	num := func(name string) *int {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetInt(name)
		return &v
	}
	boolean := func(name string) *bool {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetBool(name)
		return &v
	}

	// Database configuration
	overrides.DBDriver = str("db-driver")
	overrides.DBDir = str("db-dir")
	overrides.DBFilename = str("db-filename")
	overrides.DBDSN = str("db-dsn")
	overrides.DBQueryTimeout = dur("db-query-timeout")
	overrides.DBWriteTimeout = dur("db-write-timeout")

	// Display configuration
	overrides.PendingTitle = str("pending-title")
	overrides.CompletedTitle = str("completed-title")
	overrides.ShowNotes = boolean("show-notes")

	// Validation configuration
	overrides.TaskNameMinLength = num("task-name-min-length")
	overrides.TaskNameMaxLength = num("task-name-max-length")
	overrides.NoteMaxLength = num("note-max-length")
	overrides.ListNameMaxLength = num("list-name-max-length")

	// View configuration
	overrides.StrictPositions = boolean("strict-positions")

	// Application configuration
	overrides.Timeout = dur("app-timeout")
	overrides.Verbose = boolean("verbose")
	overrides.OutputDefaultFormat = str("output-format")

	r.config.ApplyOverrides(overrides)
	return r.config.Validate()
}
