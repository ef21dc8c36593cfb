package logging

import (
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevelDefaultsToInfo(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for input, want := range cases {
		if got := parseLevel(input); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestConsoleHandlerFoldsComponent(t *testing.T) {
	var sb strings.Builder
	levelVar := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&sb, levelVar))

	NewComponentLogger(logger, "engine").Info("scan complete", Int("rows", 3))

	line := sb.String()
	if !strings.Contains(line, "engine: scan complete") {
		t.Fatalf("expected component prefix, got %q", line)
	}
	if !strings.Contains(line, "rows=3") {
		t.Fatalf("expected rows attr, got %q", line)
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component should not appear as key=value, got %q", line)
	}
}

func TestConsoleHandlerQuotesValues(t *testing.T) {
	var sb strings.Builder
	levelVar := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&sb, levelVar))

	logger.Info("saved", String("path", "outputs/my file.json"))

	if !strings.Contains(sb.String(), `path="outputs/my file.json"`) {
		t.Fatalf("expected quoted path, got %q", sb.String())
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	logger.Error("should not panic", Error(nil))
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
