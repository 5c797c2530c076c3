package config

import (
	"github.com/nibzard/todos-go/internal/logging"
	"github.com/nibzard/todos-go/internal/todo"
)

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
	// Files lists the config files that were read, lowest priority first.
	Files []string
}

// Default values.
const (
	DefaultTitle         = "todos"
	DefaultPlaceholder   = "What needs to be done?"
	DefaultCharLimit     = 256
	DefaultFilter        = "all"
	DefaultAltScreen     = true
	DefaultLogDir        = "~/.todos/logs"
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultLogTimestamps = true
)

// Config holds the full configuration for todos.
type Config struct {
	// Widget
	Title         string `toml:"title"`
	Placeholder   string `toml:"placeholder"`
	CharLimit     int    `toml:"char_limit"`
	DefaultFilter string `toml:"default_filter"`
	AltScreen     bool   `toml:"alt_screen"`

	// Logging configuration
	LogDir        string `toml:"log_dir"`
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`
}

// Filter returns the initial filter selection. Load has already validated
// DefaultFilter, so an invalid value only occurs for hand-built configs and
// falls back to showing everything.
func (c *Config) Filter() todo.Filter {
	f, err := todo.ParseFilter(c.DefaultFilter)
	if err != nil {
		return todo.FilterAll
	}
	return f
}

// LogOptions returns the logger settings.
func (c *Config) LogOptions() logging.Options {
	opts := logging.DefaultOptions()
	opts.Level = c.LogLevel
	opts.Format = c.LogFormat
	opts.Timestamps = c.LogTimestamps
	opts.Caller = c.LogCaller
	return opts
}

// configFields returns the list of configurable field names for source tracking.
func configFields() []string {
	return []string{
		"title",
		"placeholder",
		"char_limit",
		"default_filter",
		"alt_screen",
		"log_dir",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
	}
}

// Fields returns the configurable field names in display order.
func Fields() []string {
	return configFields()
}

// Value returns the display form of a field, or "" for unknown names.
func (c *Config) Value(field string) string {
	switch field {
	case "title":
		return c.Title
	case "placeholder":
		return c.Placeholder
	case "char_limit":
		return itoa(c.CharLimit)
	case "default_filter":
		return c.DefaultFilter
	case "alt_screen":
		return btoa(c.AltScreen)
	case "log_dir":
		return c.LogDir
	case "log_level":
		return c.LogLevel
	case "log_format":
		return c.LogFormat
	case "log_timestamps":
		return btoa(c.LogTimestamps)
	case "log_caller":
		return btoa(c.LogCaller)
	default:
		return ""
	}
}
