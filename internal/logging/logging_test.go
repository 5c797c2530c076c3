// Package logging provides tests for session logs and tail output.
package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewSessionLogger(t *testing.T) {
	t.Run("creates nested dir and log file", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "logs", "nested")
		s, err := NewSessionLogger(dir, DefaultOptions())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer s.Close()

		if s.SessionID == "" {
			t.Error("expected SessionID to be set")
		}
		if !strings.HasSuffix(s.LogPath, LogExt) {
			t.Errorf("LogPath %q missing %s suffix", s.LogPath, LogExt)
		}
		if _, err := os.Stat(s.LogPath); err != nil {
			t.Errorf("log file not created: %v", err)
		}
	})

	t.Run("empty base dir returns error", func(t *testing.T) {
		_, err := NewSessionLogger("  ", DefaultOptions())
		if err == nil || !strings.Contains(err.Error(), "empty") {
			t.Fatalf("expected empty dir error, got %v", err)
		}
	})

	t.Run("writes entries tagged with session", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Format = "logfmt"
		s, err := NewSessionLogger(t.TempDir(), opts)
		if err != nil {
			t.Fatalf("NewSessionLogger: %v", err)
		}
		s.Logger().Info("hello", "count", 2)
		if err := s.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}

		data, err := os.ReadFile(s.LogPath)
		if err != nil {
			t.Fatalf("read log: %v", err)
		}
		out := string(data)
		if !strings.Contains(out, "hello") || !strings.Contains(out, "session="+s.SessionID) {
			t.Errorf("unexpected log contents %q", out)
		}
	})
}

func TestSessionLoggerNilSafe(t *testing.T) {
	var s *SessionLogger
	if s.Logger() == nil {
		t.Error("nil session should still return a logger")
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close on nil: %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]log.Level{
		"debug":   log.DebugLevel,
		"INFO":    log.InfoLevel,
		"warning": log.WarnLevel,
		"error":   log.ErrorLevel,
		"bogus":   log.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q): got %v, want %v", in, got, want)
		}
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{Level: "warn", Format: "text"})
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info leaked at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn missing: %q", out)
	}
}

func TestSessionFileName(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	got := sessionFileName("0123abcd-ef45-6789-0000-000000000000", now)
	want := "20260102-030405-0123abcd.log"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFindLatestLog(t *testing.T) {
	t.Run("missing dir", func(t *testing.T) {
		got, err := FindLatestLog(filepath.Join(t.TempDir(), "nope"))
		if err != nil || got != "" {
			t.Errorf("got %q, %v", got, err)
		}
	})

	t.Run("picks newest log", func(t *testing.T) {
		dir := t.TempDir()
		old := filepath.Join(dir, "old.log")
		recent := filepath.Join(dir, "recent.log")
		other := filepath.Join(dir, "notes.txt")
		for _, p := range []string{old, recent, other} {
			if err := os.WriteFile(p, []byte("x\n"), 0644); err != nil {
				t.Fatal(err)
			}
		}
		past := time.Now().Add(-time.Hour)
		if err := os.Chtimes(old, past, past); err != nil {
			t.Fatal(err)
		}
		future := time.Now().Add(time.Hour)
		if err := os.Chtimes(other, future, future); err != nil {
			t.Fatal(err)
		}

		got, err := FindLatestLog(dir)
		if err != nil {
			t.Fatalf("FindLatestLog: %v", err)
		}
		if got != recent {
			t.Errorf("got %q, want %q", got, recent)
		}
	})
}

func TestTailLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.log")
	if err := os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		n    int
		want string
	}{
		{"all lines", 0, "one\ntwo\nthree\n"},
		{"last two", 2, "two\nthree\n"},
		{"more than available", 10, "one\ntwo\nthree\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := TailLog(context.Background(), &buf, path, tt.n, false); err != nil {
				t.Fatalf("TailLog: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		err := TailLog(context.Background(), &bytes.Buffer{}, path+".missing", 0, false)
		if err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("follow stops on cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		var buf bytes.Buffer
		if err := TailLog(ctx, &buf, path, 1, true); err != nil {
			t.Fatalf("TailLog: %v", err)
		}
		if buf.String() != "three\n" {
			t.Errorf("got %q", buf.String())
		}
	})
}
