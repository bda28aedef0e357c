package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
)

func newTestLogger(t *testing.T) (*Logger, *os.File) {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "log-*.jsonl")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return New(f, LevelDebug), f
}

func TestLoggerWritesJSONLine(t *testing.T) {
	l, f := newTestLogger(t)
	l.Info("hello", "n", 1)

	data, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var line map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &line); err != nil {
		t.Fatalf("not valid JSON: %v (%s)", err, data)
	}
	if line["msg"] != "hello" {
		t.Fatalf("msg = %v, want hello", line["msg"])
	}
}

func TestWithComponentTagsLines(t *testing.T) {
	l, f := newTestLogger(t)
	l.WithComponent("diff").Info("loaded")

	data, _ := os.ReadFile(f.Name())
	var line map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &line); err != nil {
		t.Fatalf("not valid JSON: %v", err)
	}
	if line["component"] != "diff" {
		t.Fatalf("component = %v, want diff", line["component"])
	}
}

func TestErrorErrNoopOnNilError(t *testing.T) {
	l, f := newTestLogger(t)
	l.ErrorErr("should not appear", nil)

	data, _ := os.ReadFile(f.Name())
	if len(bytes.TrimSpace(data)) != 0 {
		t.Fatalf("expected no output, got %q", data)
	}
}

func TestEnabledRespectsLevel(t *testing.T) {
	l := New(os.Stderr, LevelWarn)
	if l.Enabled(LevelDebug) {
		t.Fatal("debug should not be enabled at warn level")
	}
	if !l.Enabled(slog.LevelError) {
		t.Fatal("error should be enabled at warn level")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"WARN":    LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"bogus":   LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
