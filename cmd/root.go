// Package cmd implements the CLI command structure for todos.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nibzard/todos-go/internal/config"
	"github.com/nibzard/todos-go/internal/logging"
	"github.com/nibzard/todos-go/internal/script"
	"github.com/nibzard/todos-go/internal/todo"
	"github.com/nibzard/todos-go/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the todos CLI.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("todos", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand(os.Stdout)
	}
	cfg := cws.Config

	// No args or a leading flag means the default "tui" command.
	subcommand := "tui"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "tui":
		return tuiCommand(ctx, cfg, remainingArgs)
	case "replay":
		return replayCommand(ctx, cfg, remainingArgs, os.Stdin, os.Stdout)
	case "config":
		return configCommand(cws, remainingArgs, os.Stdout)
	case "logs":
		return logsCommand(ctx, cfg, remainingArgs, os.Stdout)
	case "version":
		return versionCommand(os.Stdout)
	case "help":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// tuiCommand wires a store and controller and runs the terminal UI.
func tuiCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("todos tui", flag.ContinueOnError)
	noLog := fs.Bool("no-log", false, "Do not write a session log")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	logger := logging.Discard()
	if !*noLog {
		session, err := logging.NewSessionLogger(cfg.LogDir, cfg.LogOptions())
		if err != nil {
			return fmt.Errorf("opening session log: %w", err)
		}
		defer session.Close()
		logger = session.Logger()
	}

	store := todo.NewStore(todo.WithLogger(logger))
	ctrl := ui.NewController(store,
		ui.WithFilter(cfg.Filter()),
		ui.WithControllerLogger(logger),
	)
	defer ctrl.Close()

	return ui.RunTUI(ctx, cfg, ctrl, ui.WithLogger(logger))
}

// replayCommand runs a JSONL script headless and prints its renderings.
func replayCommand(ctx context.Context, cfg *config.Config, args []string, stdin io.Reader, w io.Writer) error {
	fs := flag.NewFlagSet("todos replay", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "Log each applied event to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) > 1 {
		return fmt.Errorf("unexpected arguments: %v", remaining[1:])
	}

	in := stdin
	source := "-"
	if len(remaining) == 1 && remaining[0] != "-" {
		source = remaining[0]
		f, err := os.Open(source)
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		in = f
	}

	logger := logging.Discard()
	if *verbose {
		opts := cfg.LogOptions()
		opts.Level = "debug"
		logger = logging.New(os.Stderr, opts)
	}

	store := todo.NewStore(todo.WithLogger(logger))
	ctrl := ui.NewController(store,
		ui.WithFilter(cfg.Filter()),
		ui.WithControllerLogger(logger),
	)
	defer ctrl.Close()

	res, err := script.Run(ctx, in, w, ctrl,
		script.WithTitle(cfg.Title),
		script.WithPlaceholder(cfg.Placeholder),
		script.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("replay %s: %w", source, err)
	}
	logger.Info("replay finished", "events", res.Events, "tasks", len(res.Tasks))
	return nil
}

// configCommand prints the resolved configuration or the example file.
func configCommand(cws *config.ConfigWithSources, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("todos config", flag.ContinueOnError)
	example := fs.Bool("example", false, "Print an example todos.toml")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if *example {
		fmt.Fprint(w, config.ExampleConfig())
		return nil
	}

	if len(cws.Files) == 0 {
		fmt.Fprintln(w, "# no config files found")
	}
	for _, f := range cws.Files {
		fmt.Fprintf(w, "# loaded %s\n", f)
	}
	for _, field := range config.Fields() {
		fmt.Fprintf(w, "%-15s = %-28s # %s\n", field, cws.Config.Value(field), cws.Sources[field])
	}
	return nil
}

// logsCommand prints the tail of the latest session log.
func logsCommand(ctx context.Context, cfg *config.Config, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("todos logs", flag.ContinueOnError)
	follow := fs.Bool("f", false, "Follow the log (like tail -f)")
	fs.BoolVar(follow, "follow", false, "Follow the log (like tail -f)")
	n := fs.Int("n", 0, "Number of lines to show (0 = all)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *n < 0 {
		return fmt.Errorf("-n must not be negative")
	}

	logPath, err := logging.FindLatestLog(cfg.LogDir)
	if err != nil {
		return fmt.Errorf("finding latest log: %w", err)
	}
	if logPath == "" {
		fmt.Fprintln(w, "No log files found.")
		return nil
	}

	fmt.Fprintf(w, "Tailing: %s\n", logPath)
	if *follow {
		fmt.Fprintln(w, "(Ctrl+C to stop)")
	}
	fmt.Fprintln(w)

	return logging.TailLog(ctx, w, logPath, *n, *follow)
}

// versionCommand prints version information.
func versionCommand(w io.Writer) error {
	fmt.Fprintf(w, "todos version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "todos - a keyboard driven todo list for the terminal")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  todos [options] [command]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  tui            Launch the terminal UI (default command)")
	fmt.Fprintln(w, "  replay [file]  Replay a JSONL event script and print the renderings")
	fmt.Fprintln(w, "  config         Show the resolved configuration and where each value came from")
	fmt.Fprintln(w, "  logs           Show the latest session log")
	fmt.Fprintln(w, "  version        Show version information")
	fmt.Fprintln(w, "  help           Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tui Options:")
	fmt.Fprintln(w, "  -no-log")
	fmt.Fprintln(w, "        Do not write a session log")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Replay Options:")
	fmt.Fprintln(w, "  -v    Log each applied event to stderr")
	fmt.Fprintln(w, "  Reads the script from stdin when file is omitted or \"-\".")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Config Options:")
	fmt.Fprintln(w, "  -example")
	fmt.Fprintln(w, "        Print an example todos.toml")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Logs Options:")
	fmt.Fprintln(w, "  -f, --follow")
	fmt.Fprintln(w, "        Follow the log (like tail -f)")
	fmt.Fprintln(w, "  -n int")
	fmt.Fprintln(w, "        Number of lines to show (0 = all)")
}
