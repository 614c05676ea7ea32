package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Database drivers accepted by TL_DB_DRIVER
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all configuration options for the task list application
type Config struct {
	Database    DatabaseConfig
	Validation  ValidationConfig
	Display     DisplayConfig
	View        ViewConfig
	Application ApplicationConfig
	Commands    CommandsConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Driver         string        `env:"TL_DB_DRIVER"`
	Dir            string        `env:"TL_DB_DIR"`
	Filename       string        `env:"TL_DB_FILENAME"`
	DSN            string        `env:"TL_DB_DSN"`
	QueryTimeout   time.Duration `env:"TL_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"TL_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"TL_DB_DIR_PERMISSIONS"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TaskNameMinLength int `env:"TL_VALIDATION_TASK_NAME_MIN"`
	TaskNameMaxLength int `env:"TL_VALIDATION_TASK_NAME_MAX"`
	NoteMaxLength     int `env:"TL_VALIDATION_NOTE_MAX"`
	ListNameMaxLength int `env:"TL_VALIDATION_LIST_NAME_MAX"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	PendingTitle   string `env:"TL_DISPLAY_PENDING_TITLE"`
	CompletedTitle string `env:"TL_DISPLAY_COMPLETED_TITLE"`
	ShowNotes      bool   `env:"TL_DISPLAY_SHOW_NOTES"`
}

// ViewConfig holds task list view behaviour
type ViewConfig struct {
	// StrictPositions turns an unresolvable row position into an error
	// instead of falling back to row 0.
	StrictPositions bool `env:"TL_VIEW_STRICT_POSITIONS"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TL_APP_TIMEOUT"`
	Verbose bool          `env:"TL_APP_VERBOSE"`
}

// CommandsConfig holds command-specific defaults
type CommandsConfig struct {
	OutputDefaultFormat string `env:"TL_OUTPUT_DEFAULT_FORMAT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".tl")

	return &Config{
		Database: DatabaseConfig{
			Driver:         DriverSQLite,
			Dir:            defaultDBDir,
			Filename:       "tl.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Validation: ValidationConfig{
			TaskNameMinLength: 1,
			TaskNameMaxLength: 255,
			NoteMaxLength:     1000,
			ListNameMaxLength: 100,
		},
		Display: DisplayConfig{
			PendingTitle:   "CURRENT TASKS",
			CompletedTitle: "COMPLETED TASKS",
			ShowNotes:      true,
		},
		View: ViewConfig{
			StrictPositions: false,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
		Commands: CommandsConfig{
			OutputDefaultFormat: "csv",
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Database.WriteTimeout
}

// LoadFromEnvironment loads configuration from environment variables.
// Unparseable values are ignored and the current value kept.
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if driver := os.Getenv("TL_DB_DRIVER"); driver != "" {
		c.Database.Driver = driver
	}
	if dir := os.Getenv("TL_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TL_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if dsn := os.Getenv("TL_DB_DSN"); dsn != "" {
		c.Database.DSN = dsn
	}
	if timeout := os.Getenv("TL_DB_QUERY_TIMEOUT"); timeout != "" {
		c.Database.QueryTimeout = ParseDurationWithFallback(timeout, c.Database.QueryTimeout)
	}
	if timeout := os.Getenv("TL_DB_WRITE_TIMEOUT"); timeout != "" {
		c.Database.WriteTimeout = ParseDurationWithFallback(timeout, c.Database.WriteTimeout)
	}
	if perms := os.Getenv("TL_DB_DIR_PERMISSIONS"); perms != "" {
		c.Database.DirPermissions = ParseUint32WithFallback(perms, 8, c.Database.DirPermissions)
	}

	// Validation configuration
	if minLen := os.Getenv("TL_VALIDATION_TASK_NAME_MIN"); minLen != "" {
		c.Validation.TaskNameMinLength = ParseIntWithFallback(minLen, c.Validation.TaskNameMinLength)
	}
	if maxLen := os.Getenv("TL_VALIDATION_TASK_NAME_MAX"); maxLen != "" {
		c.Validation.TaskNameMaxLength = ParseIntWithFallback(maxLen, c.Validation.TaskNameMaxLength)
	}
	if maxLen := os.Getenv("TL_VALIDATION_NOTE_MAX"); maxLen != "" {
		c.Validation.NoteMaxLength = ParseIntWithFallback(maxLen, c.Validation.NoteMaxLength)
	}
	if maxLen := os.Getenv("TL_VALIDATION_LIST_NAME_MAX"); maxLen != "" {
		c.Validation.ListNameMaxLength = ParseIntWithFallback(maxLen, c.Validation.ListNameMaxLength)
	}

	// Display configuration
	if title := os.Getenv("TL_DISPLAY_PENDING_TITLE"); title != "" {
		c.Display.PendingTitle = title
	}
	if title := os.Getenv("TL_DISPLAY_COMPLETED_TITLE"); title != "" {
		c.Display.CompletedTitle = title
	}
	if show := os.Getenv("TL_DISPLAY_SHOW_NOTES"); show != "" {
		c.Display.ShowNotes = ParseBoolWithFallback(show, c.Display.ShowNotes)
	}

	// View configuration
	if strict := os.Getenv("TL_VIEW_STRICT_POSITIONS"); strict != "" {
		c.View.StrictPositions = ParseBoolWithFallback(strict, c.View.StrictPositions)
	}

	// Application configuration
	if timeout := os.Getenv("TL_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("TL_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	// Commands configuration
	if format := os.Getenv("TL_OUTPUT_DEFAULT_FORMAT"); format != "" {
		c.Commands.OutputDefaultFormat = format
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate database configuration
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Dir == "" {
			return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
		}
		if c.Database.Filename == "" {
			return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
		}
	case DriverPostgres:
		if c.Database.DSN == "" {
			return &ConfigError{Field: "database.dsn", Message: "postgres driver requires a DSN"}
		}
	default:
		return &ConfigError{Field: "database.driver", Message: "unknown driver " + strconv.Quote(c.Database.Driver)}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	// Validate validation configuration
	if c.Validation.TaskNameMinLength < 1 {
		return &ConfigError{Field: "validation.task_name_min_length", Message: "task name minimum length must be at least 1"}
	}
	if c.Validation.TaskNameMaxLength < c.Validation.TaskNameMinLength {
		return &ConfigError{Field: "validation.task_name_max_length", Message: "task name maximum length must be greater than minimum length"}
	}
	if c.Validation.NoteMaxLength < 0 {
		return &ConfigError{Field: "validation.note_max_length", Message: "note maximum length cannot be negative"}
	}
	if c.Validation.ListNameMaxLength < 1 {
		return &ConfigError{Field: "validation.list_name_max_length", Message: "list name maximum length must be at least 1"}
	}

	// Validate display configuration
	if c.Display.PendingTitle == "" || c.Display.CompletedTitle == "" {
		return &ConfigError{Field: "display.titles", Message: "section titles cannot be empty"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
