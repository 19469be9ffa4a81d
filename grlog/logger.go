package grlog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
)

// Level orders grasim's five severities, TRACE being the most verbose
// and ERROR the least, matching the environment-variable contract.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

// slogLevelTrace sits one step below slog's built-in Debug level,
// since log/slog has no native TRACE severity.
const slogLevelTrace = slog.Level(-8)

func (l Level) toSlog() slog.Level {
	switch l {
	case LevelTrace:
		return slogLevelTrace
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// envVar is the level-selecting environment variable consulted by Init.
const envVar = "GRASIM_LOG"

func levelFromEnv() Level {
	switch os.Getenv(envVar) {
	case "ERROR":
		return LevelError
	case "WARN":
		return LevelWarn
	case "DEBUG":
		return LevelDebug
	case "TRACE":
		return LevelTrace
	default:
		return LevelInfo
	}
}

var (
	once     sync.Once
	instance *slog.Logger
	initErr  error
)

// Init builds the singleton logger on its first call, tee-ing to
// logPath (opened append-only, created if absent) and stdout. Every
// later call, regardless of its logPath argument, returns the logger
// built by the first call and its error — per the "second and later
// initialization requests are ignored" contract, Init never reopens a
// different file or re-reads the environment after the first success.
func Init(logPath string) (*slog.Logger, error) {
	once.Do(func() {
		instance, initErr = build(logPath)
	})
	return instance, initErr
}

func build(logPath string) (*slog.Logger, error) {
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	level := levelFromEnv()
	opts := &slog.HandlerOptions{Level: level.toSlog()}

	var mu sync.Mutex
	handler := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&syncWriter{mu: &mu, w: os.Stdout}, opts),
		slog.NewJSONHandler(&syncWriter{mu: &mu, w: file}, opts),
	}}

	return slog.New(handler), nil
}

// syncWriter serializes Write calls across every handler sharing the
// same mutex, so two goroutines logging concurrently never interleave
// a record's bytes mid-line.
type syncWriter struct {
	mu *sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// multiHandler fans a slog.Record out to every handler it wraps,
// the tee between the file destination and stdout.
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, r.Level) {
			continue
		}
		if err := handler.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		out[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: out}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	out := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		out[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: out}
}
