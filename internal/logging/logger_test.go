package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"unknown": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestConsoleHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newConsoleHandler(&buf, slog.LevelInfo))

	logger.Info("scanning root", slog.String("component", "workflow"), slog.Int("files", 3))

	line := buf.String()
	if !strings.Contains(line, " INFO workflow: scanning root") {
		t.Fatalf("unexpected line: %q", line)
	}
	if !strings.Contains(line, "files=3") {
		t.Fatalf("missing attr: %q", line)
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component should be promoted, not rendered as attr: %q", line)
	}
}

func TestConsoleHandlerWithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newConsoleHandler(&buf, slog.LevelInfo))

	logger = logger.With(slog.String("run_id", "abc"))
	logger.WithGroup("engine").Info("done", slog.String("model", "medium"))

	line := buf.String()
	if !strings.Contains(line, "run_id=abc") {
		t.Fatalf("missing bound attr: %q", line)
	}
	if !strings.Contains(line, "engine.model=medium") {
		t.Fatalf("missing grouped attr: %q", line)
	}
}

func TestConsoleHandlerLevelGate(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newConsoleHandler(&buf, slog.LevelWarn))

	logger.Info("quiet")
	logger.Warn("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Fatalf("info should be suppressed: %q", out)
	}
	if !strings.Contains(out, "WARN") {
		t.Fatalf("warn should pass: %q", out)
	}
}

func TestConsoleHandlerQuoting(t *testing.T) {
	var buf bytes.Buffer
	handler := newConsoleHandler(&buf, slog.LevelInfo)
	logger := slog.New(handler)

	logger.Info("msg", slog.String("path", "/videos/my movie.mkv"))

	if !strings.Contains(buf.String(), `path="/videos/my movie.mkv"`) {
		t.Fatalf("value with spaces should be quoted: %q", buf.String())
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestHandlerEnabled(t *testing.T) {
	h := newConsoleHandler(&bytes.Buffer{}, slog.LevelInfo)
	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("debug should be disabled at info level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("error should be enabled at info level")
	}
}
