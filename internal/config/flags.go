package config

import (
	"flag"
)

// flagToField maps flag names to config field names.
var flagToField = map[string]string{
	"title":          "title",
	"placeholder":    "placeholder",
	"char-limit":     "char_limit",
	"filter":         "default_filter",
	"alt-screen":     "alt_screen",
	"log-dir":        "log_dir",
	"log-level":      "log_level",
	"log-format":     "log_format",
	"log-timestamps": "log_timestamps",
	"log-caller":     "log_caller",
}

// parseFlags defines the config flags on fs, parses args, and copies only
// the flags that were explicitly set into cfg. When sources is non-nil it
// records which fields came from flags.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet("todos", flag.ContinueOnError)
	}

	parsed := *cfg
	fs.StringVar(&parsed.Title, "title", cfg.Title, "Heading shown above the list")
	fs.StringVar(&parsed.Placeholder, "placeholder", cfg.Placeholder, "Placeholder text of the entry line")
	fs.IntVar(&parsed.CharLimit, "char-limit", cfg.CharLimit, "Maximum length of a new task")
	fs.StringVar(&parsed.DefaultFilter, "filter", cfg.DefaultFilter, "Initial filter (all, active, completed)")
	fs.BoolVar(&parsed.AltScreen, "alt-screen", cfg.AltScreen, "Use the terminal alternate screen")
	fs.StringVar(&parsed.LogDir, "log-dir", cfg.LogDir, "Session log directory")
	fs.StringVar(&parsed.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&parsed.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	fs.BoolVar(&parsed.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Show timestamps in logs")
	fs.BoolVar(&parsed.LogCaller, "log-caller", cfg.LogCaller, "Show caller location in logs")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		field, ok := flagToField[f.Name]
		if !ok {
			return
		}
		applyField(cfg, &parsed, field)
		if sources != nil {
			sources[field] = SourceFlag
		}
	})

	return nil
}

// applyField copies one field from src to dst.
func applyField(dst, src *Config, field string) {
	switch field {
	case "title":
		dst.Title = src.Title
	case "placeholder":
		dst.Placeholder = src.Placeholder
	case "char_limit":
		dst.CharLimit = src.CharLimit
	case "default_filter":
		dst.DefaultFilter = src.DefaultFilter
	case "alt_screen":
		dst.AltScreen = src.AltScreen
	case "log_dir":
		dst.LogDir = src.LogDir
	case "log_level":
		dst.LogLevel = src.LogLevel
	case "log_format":
		dst.LogFormat = src.LogFormat
	case "log_timestamps":
		dst.LogTimestamps = src.LogTimestamps
	case "log_caller":
		dst.LogCaller = src.LogCaller
	}
}
