package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func newBufferLogger(level slog.Level) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	levelVar.Set(level)
	return slog.New(newConsoleHandler(&buf, levelVar)), &buf
}

func TestConsoleHandlerLiftsComponentPrefix(t *testing.T) {
	logger, buf := newBufferLogger(slog.LevelInfo)
	component := NewComponentLogger(logger, "scheduler")

	component.Info("schedule loaded", Int("events", 4))

	line := buf.String()
	if !strings.Contains(line, "INFO scheduler: schedule loaded") {
		t.Fatalf("line = %q", line)
	}
	if !strings.Contains(line, "events=4") {
		t.Fatalf("line = %q", line)
	}
	if strings.Contains(line, FieldComponent+"=") {
		t.Fatalf("component must not repeat as an attribute: %q", line)
	}
}

func TestConsoleHandlerQuotesValuesWithSpaces(t *testing.T) {
	logger, buf := newBufferLogger(slog.LevelInfo)

	logger.Info("event", String("title", "Opening Night"))

	if !strings.Contains(buf.String(), `title="Opening Night"`) {
		t.Fatalf("line = %q", buf.String())
	}
}

func TestConsoleHandlerFormatsErrors(t *testing.T) {
	logger, buf := newBufferLogger(slog.LevelInfo)

	logger.Warn("save failed", Error(errors.New("disk full")))

	line := buf.String()
	if !strings.Contains(line, "WARN") || !strings.Contains(line, "disk full") {
		t.Fatalf("line = %q", line)
	}
}

func TestConsoleHandlerHonorsLevel(t *testing.T) {
	logger, buf := newBufferLogger(slog.LevelWarn)

	logger.Info("quiet")
	if buf.Len() != 0 {
		t.Fatalf("info should be suppressed at warn level, got %q", buf.String())
	}

	logger.Error("loud")
	if !strings.Contains(buf.String(), "ERROR loud") {
		t.Fatalf("line = %q", buf.String())
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	// Must not panic and must accept attrs.
	logger.Info("ignored", String("key", "value"))
	logger.With(String("a", "b")).Error("also ignored")
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
