package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# todos configuration file
# Values can be overridden by TODOS_* environment variables or CLI flags

# Heading shown above the list
title = "todos"

# Placeholder of the entry line
placeholder = "What needs to be done?"

# Maximum length of a new task
char_limit = 256

# Initial filter: all, active, or completed
default_filter = "all"

# Draw in the terminal alternate screen
alt_screen = true

# Session log directory (supports ~ and $VAR expansion)
log_dir = "~/.todos/logs"

# Logging
log_level = "info"      # debug, info, warn, error
log_format = "text"     # text, json, logfmt
log_timestamps = true
log_caller = false
`
}
