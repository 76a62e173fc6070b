package logging

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for input, want := range cases {
		if got := ParseLevel(input); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestConsoleHandlerOutput(t *testing.T) {
	var buf strings.Builder
	logger, err := New(Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	scoped := NewComponentLogger(logger, "store")
	scoped.Info("publication added", String("name", "test"), Error(errors.New("boom boom")))

	out := buf.String()
	if !strings.Contains(out, "INFO store: publication added") {
		t.Errorf("unexpected console line: %q", out)
	}
	if !strings.Contains(out, "name=test") {
		t.Errorf("attribute missing: %q", out)
	}
	if !strings.Contains(out, `error="boom boom"`) {
		t.Errorf("error attribute not quoted: %q", out)
	}
}

func TestConsoleHandlerLevelFilter(t *testing.T) {
	var buf strings.Builder
	logger, err := New(Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Info("dropped")
	logger.Warn("kept")
	if strings.Contains(buf.String(), "dropped") {
		t.Error("info record not filtered at warn level")
	}
	if !strings.Contains(buf.String(), "kept") {
		t.Error("warn record missing")
	}
}

func TestJSONHandlerOutput(t *testing.T) {
	var buf strings.Builder
	logger, err := New(Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Info("hello", String("name", "x"))
	out := buf.String()
	if !strings.Contains(out, `"msg":"hello"`) || !strings.Contains(out, `"name":"x"`) {
		t.Errorf("unexpected json line: %q", out)
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := NewNop()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("nop logger should not be enabled")
	}
}
