// Package logging writes per-session log files and tails them.
package logging

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// LogExt is the file extension of session logs.
const LogExt = ".log"

// Options holds logger settings.
type Options struct {
	Level      string
	Format     string
	Timestamps bool
	Caller     bool
	Prefix     string
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Level:      "info",
		Format:     "text",
		Timestamps: true,
		Prefix:     "todos",
	}
}

// ParseLevel parses a level name. Unknown names map to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// ParseFormatter parses a formatter name. Unknown names map to text.
func ParseFormatter(format string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

// New builds a logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(opts.Level),
		Formatter:       ParseFormatter(opts.Format),
		ReportTimestamp: opts.Timestamps,
		ReportCaller:    opts.Caller,
		Prefix:          opts.Prefix,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// SessionLogger owns the log file of one interactive session.
type SessionLogger struct {
	Dir       string
	SessionID string
	LogPath   string
	file      *os.File
	logger    *log.Logger
}

// NewSessionLogger creates baseDir if needed and opens a new session log
// file inside it.
func NewSessionLogger(baseDir string, opts Options) (*SessionLogger, error) {
	if strings.TrimSpace(baseDir) == "" {
		return nil, fmt.Errorf("log base dir is empty")
	}
	dir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("resolve log dir: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	id := uuid.New().String()
	path := filepath.Join(dir, sessionFileName(id, time.Now()))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}

	return &SessionLogger{
		Dir:       dir,
		SessionID: id,
		LogPath:   path,
		file:      file,
		logger:    New(file, opts).With("session", id),
	}, nil
}

// Logger returns the session logger, or a discarding logger when s is nil.
func (s *SessionLogger) Logger() *log.Logger {
	if s == nil || s.logger == nil {
		return Discard()
	}
	return s.logger
}

// Close closes the log file.
func (s *SessionLogger) Close() error {
	if s == nil || s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

// sessionFileName sorts by start time and stays unique within a second.
func sessionFileName(id string, now time.Time) string {
	short := strings.ReplaceAll(id, "-", "")
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("%s-%s%s", now.UTC().Format("20060102-150405"), short, LogExt)
}

// FindLatestLog returns the most recently modified session log in dir.
// It returns "" with no error when dir does not exist or holds no logs.
func FindLatestLog(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read log dir: %w", err)
	}

	var latest string
	var latestTime time.Time
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), LogExt) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if latest == "" || info.ModTime().After(latestTime) {
			latestTime = info.ModTime()
			latest = filepath.Join(dir, entry.Name())
		}
	}
	return latest, nil
}

// TailLog writes the last n lines of path to w (all lines when n <= 0).
// With follow set it keeps copying appended data until ctx is done.
func TailLog(ctx context.Context, w io.Writer, path string, n int, follow bool) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()

	if err := writeLastLines(w, file, n); err != nil {
		return err
	}
	if !follow {
		return nil
	}

	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := io.Copy(w, file); err != nil {
				return fmt.Errorf("follow log file: %w", err)
			}
		}
	}
}

// writeLastLines leaves r positioned at EOF.
func writeLastLines(w io.Writer, r io.Reader, n int) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		if n > 0 && len(lines) > n {
			lines = lines[1:]
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read log file: %w", err)
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
