package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSlogAdapter_With(t *testing.T) {
	var buf bytes.Buffer
	logger := NewText(&buf, slog.LevelDebug)

	logger.With("run", "abc").Debug("attached node", "level", "district")

	out := buf.String()
	for _, want := range []string{"attached node", "run=abc", "level=district", "level=DEBUG"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got %q", want, out)
		}
	}
}

func TestSlogAdapter_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewText(&buf, slog.LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected debug/info to be filtered, got %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("expected warn record, got %q", out)
	}
}

func TestOrNop(t *testing.T) {
	if _, ok := OrNop(nil).(NopLogger); !ok {
		t.Error("OrNop(nil) should return NopLogger")
	}

	l := NewSlogAdapter(nil)
	if OrNop(l) != Logger(l) {
		t.Error("OrNop should return the given logger unchanged")
	}

	// NopLogger must be safe to use through With.
	OrNop(nil).With("k", "v").Error("ignored")
}
