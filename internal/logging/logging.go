// Package logging provides the structured logger shared by every runtime
// thread. Grounded on internal/app/logging.go in the teacher module: the
// same level/component/field vocabulary, but backed by the stdlib
// log/slog handler the teacher's own dependency set already implies
// rather than a hand-rolled formatter.
package logging

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Level mirrors slog.Level under the names spec.md and the teacher use.
type Level = slog.Level

const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// ParseLevel parses a level name, defaulting to Info on anything unrecognized.
func ParseLevel(s string) Level {
	switch s {
	case "debug", "DEBUG":
		return LevelDebug
	case "warn", "WARN", "warning", "WARNING":
		return LevelWarn
	case "error", "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger wraps *slog.Logger with the WithComponent convenience the rest of
// the runtime threads use to tag log lines by thread name.
type Logger struct {
	inner *slog.Logger
}

// New builds a Logger writing JSON lines to w at the given minimum level.
func New(w *os.File, level Level) *Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{inner: slog.New(h)}
}

// WithComponent returns a child logger tagging every line with the named
// runtime thread or module (matches runtime.StatusTable thread names).
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{inner: l.inner.With("component", component)}
}

// WithFields returns a child logger with the given key/value pairs attached
// to every subsequent line.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return &Logger{inner: l.inner.With(args...)}
}

func (l *Logger) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)   { l.inner.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)   { l.inner.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any)  { l.inner.Error(msg, args...) }

// ErrorErr logs err with the given message, a no-op when err is nil — the
// common "log and continue" shape used around artifact draining in the
// process loop.
func (l *Logger) ErrorErr(msg string, err error, args ...any) {
	if err == nil {
		return
	}
	l.inner.Error(msg, append([]any{"error", err}, args...)...)
}

// Enabled reports whether a line at level would actually be emitted, so
// callers can skip building an expensive field set.
func (l *Logger) Enabled(level Level) bool {
	return l.inner.Enabled(context.Background(), level)
}

// StateFilePath returns the default log destination: a single file under
// the user's state/cache directory, kept off stdout/stderr so it never
// corrupts the alternate-screen UI the renderer owns.
func StateFilePath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "git-interactive-rebase-tool", "log.jsonl"), nil
}

// OpenStateFile opens (creating parent directories as needed) the default
// log file for appending.
func OpenStateFile() (*os.File, error) {
	path, err := StateFilePath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
}

var (
	global     *Logger
	globalOnce sync.Once
	globalMu   sync.Mutex
)

// Get returns the process-wide logger, opening the default state file
// logger at Info level on first use if Set was never called.
func Get() *Logger {
	globalOnce.Do(func() {
		globalMu.Lock()
		defer globalMu.Unlock()
		if global != nil {
			return
		}
		f, err := OpenStateFile()
		if err != nil {
			global = New(os.Stderr, LevelInfo)
			return
		}
		global = New(f, LevelInfo)
	})
	globalMu.Lock()
	defer globalMu.Unlock()
	return global
}

// Set installs the process-wide logger. Call early during startup, before
// any runtime thread calls Get.
func Set(l *Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	global = l
	globalOnce.Do(func() {})
}

// Discard is a logger that drops everything, used in tests.
var Discard = New(discardFile(), LevelError+1)

func discardFile() *os.File {
	f, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		return os.Stderr
	}
	return f
}
