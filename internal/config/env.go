package config

import (
	"os"
	"strconv"
	"strings"
)

// loadFromEnv overrides config from TODOS_* environment variables. When
// sources is non-nil it records which fields were set.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) {
	set := func(field string) {
		if sources != nil {
			sources[field] = SourceEnv
		}
	}

	if v := os.Getenv("TODOS_TITLE"); v != "" {
		cfg.Title = v
		set("title")
	}
	if v := os.Getenv("TODOS_PLACEHOLDER"); v != "" {
		cfg.Placeholder = v
		set("placeholder")
	}
	if v := os.Getenv("TODOS_CHAR_LIMIT"); v != "" {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			cfg.CharLimit = i
			set("char_limit")
		}
	}
	if v := os.Getenv("TODOS_FILTER"); v != "" {
		cfg.DefaultFilter = v
		set("default_filter")
	}
	if v := os.Getenv("TODOS_ALT_SCREEN"); v != "" {
		cfg.AltScreen = boolFromString(v)
		set("alt_screen")
	}
	if v := os.Getenv("TODOS_LOG_DIR"); v != "" {
		cfg.LogDir = v
		set("log_dir")
	}
	if v := os.Getenv("TODOS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
		set("log_level")
	}
	if v := os.Getenv("TODOS_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
		set("log_format")
	}
	if v := os.Getenv("TODOS_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
		set("log_timestamps")
	}
	if v := os.Getenv("TODOS_LOG_CALLER"); v != "" {
		cfg.LogCaller = boolFromString(v)
		set("log_caller")
	}
}

// boolFromString parses a boolean from a string.
func boolFromString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}

func itoa(i int) string {
	return strconv.Itoa(i)
}

func btoa(b bool) string {
	return strconv.FormatBool(b)
}
