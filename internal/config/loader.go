package config

import (
	"strconv"
	"time"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with environment variables
// 3. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if overrides != nil {
		l.config.ApplyOverrides(overrides)
	}

	// Validate once everything is applied so a flag can repair a bad env value
	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// ConfigOverrides holds command line flag overrides; nil fields are not set
type ConfigOverrides struct {
	// Database overrides
	DBDriver         *string
	DBDir            *string
	DBFilename       *string
	DBDSN            *string
	DBQueryTimeout   *time.Duration
	DBWriteTimeout   *time.Duration
	DBDirPermissions *uint32

	// Validation overrides
	TaskNameMinLength *int
	TaskNameMaxLength *int
	NoteMaxLength     *int
	ListNameMaxLength *int

	// Display overrides
	PendingTitle   *string
	CompletedTitle *string
	ShowNotes      *bool

	// View overrides
	StrictPositions *bool

	// Application overrides
	Timeout *time.Duration
	Verbose *bool

	// Commands overrides
	OutputDefaultFormat *string
}

// ApplyOverrides copies every set override into the configuration. The
// caller validates afterwards.
func (c *Config) ApplyOverrides(overrides *ConfigOverrides) {
	if overrides == nil {
		return
	}

	// Database overrides
	if overrides.DBDriver != nil {
		c.Database.Driver = *overrides.DBDriver
	}
	if overrides.DBDir != nil {
		c.Database.Dir = *overrides.DBDir
	}
	if overrides.DBFilename != nil {
		c.Database.Filename = *overrides.DBFilename
	}
	if overrides.DBDSN != nil {
		c.Database.DSN = *overrides.DBDSN
	}
	if overrides.DBQueryTimeout != nil {
		c.Database.QueryTimeout = *overrides.DBQueryTimeout
	}
	if overrides.DBWriteTimeout != nil {
		c.Database.WriteTimeout = *overrides.DBWriteTimeout
	}
	if overrides.DBDirPermissions != nil {
		c.Database.DirPermissions = *overrides.DBDirPermissions
	}

	// Validation overrides
	if overrides.TaskNameMinLength != nil {
		c.Validation.TaskNameMinLength = *overrides.TaskNameMinLength
	}
	if overrides.TaskNameMaxLength != nil {
		c.Validation.TaskNameMaxLength = *overrides.TaskNameMaxLength
	}
	if overrides.NoteMaxLength != nil {
		c.Validation.NoteMaxLength = *overrides.NoteMaxLength
	}
	if overrides.ListNameMaxLength != nil {
		c.Validation.ListNameMaxLength = *overrides.ListNameMaxLength
	}

	// Display overrides
	if overrides.PendingTitle != nil {
		c.Display.PendingTitle = *overrides.PendingTitle
	}
	if overrides.CompletedTitle != nil {
		c.Display.CompletedTitle = *overrides.CompletedTitle
	}
	if overrides.ShowNotes != nil {
		c.Display.ShowNotes = *overrides.ShowNotes
	}

	// View overrides
	if overrides.StrictPositions != nil {
		c.View.StrictPositions = *overrides.StrictPositions
	}

	// Application overrides
	if overrides.Timeout != nil {
		c.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		c.Application.Verbose = *overrides.Verbose
	}

	// Commands overrides
	if overrides.OutputDefaultFormat != nil {
		c.Commands.OutputDefaultFormat = *overrides.OutputDefaultFormat
	}
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
