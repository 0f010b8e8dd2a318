package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func captureLog(t *testing.T, level Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(level)
	t.Cleanup(func() {
		SetOutput(nil)
		SetLevel(LevelInfo)
	})
	return &buf
}

func TestLevelFiltering(t *testing.T) {
	buf := captureLog(t, LevelWarn)
	Debug("hidden debug")
	Info("hidden info")
	Warn("edit target missing", "event_id", "7")
	Error("ledger write failed", errors.New("disk full"), "event_id", "task-1")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected debug/info to be filtered, got %q", out)
	}
	if !strings.Contains(out, "[WARN] edit target missing event_id=7") {
		t.Fatalf("missing warn line: %q", out)
	}
	if !strings.Contains(out, `[ERROR] ledger write failed err="disk full" event_id=task-1`) {
		t.Fatalf("missing error line: %q", out)
	}
}

func TestFormatKVsQuotesAndSkipsOddTail(t *testing.T) {
	got := formatKVs("title", "Event Conf.", "count", 2, "dangling")
	want := ` title="Event Conf." count=2`
	if got != want {
		t.Fatalf("formatKVs = %q, want %q", got, want)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		" INFO ":  LevelInfo,
		"warning": LevelWarn,
		"error":   LevelError,
	}
	for in, want := range cases {
		got, ok := ParseLevel(in)
		if !ok || got != want {
			t.Fatalf("ParseLevel(%q) = %q,%v want %q", in, got, ok, want)
		}
	}
	if got, ok := ParseLevel("loud"); ok || got != LevelInfo {
		t.Fatalf("expected unknown level to fall back to INFO, got %q,%v", got, ok)
	}
}
