package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// findProjectConfigFile looks for a config file in the current directory.
func findProjectConfigFile() string {
	names := []string{"todos.toml", ".todos.toml"}
	for _, name := range names {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// findUserConfigFile looks for a user-level config file.
// Checks ~/.todos/todos.toml first, then falls back to OS-specific
// config directories.
func findUserConfigFile() string {
	home, err := os.UserHomeDir()
	if err == nil {
		p := filepath.Join(home, ".todos", "todos.toml")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	if cfgDir := osUserConfigDir(); cfgDir != "" {
		p := filepath.Join(cfgDir, "todos", "todos.toml")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// osUserConfigDir returns the OS-specific user config directory.
// Returns empty string if the directory cannot be determined.
func osUserConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return os.Getenv("APPDATA")
	case "darwin":
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, "Library", "Application Support")
		}
	case "linux", "openbsd", "freebsd", "netbsd":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return xdg
		}
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, ".config")
		}
	}
	return ""
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.Title = DefaultTitle
	cfg.Placeholder = DefaultPlaceholder
	cfg.CharLimit = DefaultCharLimit
	cfg.DefaultFilter = DefaultFilter
	cfg.AltScreen = DefaultAltScreen
	cfg.LogDir = DefaultLogDir
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = DefaultLogTimestamps
	cfg.LogCaller = false
}
