package config

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/nibzard/todos-go/internal/todo"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (~/.todos/todos.toml or OS-specific config dir)
// 3. Project config file (todos.toml or .todos.toml in current directory)
// 4. Environment variables
// 5. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cws, err := load(fs, args, nil)
	if err != nil {
		return nil, err
	}
	return cws.Config, nil
}

// LoadWithSources loads configuration and tracks the source of each value.
func LoadWithSources(fs *flag.FlagSet, args []string) (*ConfigWithSources, error) {
	sources := make(map[string]ConfigSource)
	for _, field := range configFields() {
		sources[field] = SourceDefault
	}
	return load(fs, args, sources)
}

func load(fs *flag.FlagSet, args []string, sources map[string]ConfigSource) (*ConfigWithSources, error) {
	cfg := &Config{}
	var files []string

	// 1. Set defaults
	setDefaults(cfg)

	// 2. User config file
	if path := findUserConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path, sources, SourceUserFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", path, err)
		}
		files = append(files, path)
	}

	// 3. Project config file (overrides user config)
	if path := findProjectConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path, sources, SourceProjFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", path, err)
		}
		files = append(files, path)
	}

	// 4. Environment
	loadFromEnv(cfg, sources)

	// 5. CLI flags
	if err := parseFlags(cfg, fs, args, sources); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}

	return &ConfigWithSources{Config: cfg, Sources: sources, Files: files}, nil
}

// loadConfigFile decodes a TOML file over cfg. Keys present in the file
// are attributed to source when sources is non-nil.
func loadConfigFile(cfg *Config, path string, sources map[string]ConfigSource, source ConfigSource) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	if sources != nil {
		for _, field := range configFields() {
			if md.IsDefined(field) {
				sources[field] = source
			}
		}
	}
	return nil
}

// finalizeConfig normalizes and validates values.
func finalizeConfig(cfg *Config) error {
	cfg.LogDir = expandPath(cfg.LogDir)

	f, err := todo.ParseFilter(cfg.DefaultFilter)
	if err != nil {
		return fmt.Errorf("default_filter: %w", err)
	}
	cfg.DefaultFilter = string(f)

	if cfg.CharLimit <= 0 {
		return fmt.Errorf("char_limit must be positive, got %d", cfg.CharLimit)
	}
	return nil
}
