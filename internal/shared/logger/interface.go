package logger

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"time"
)

// Interface is the logger every component receives. The *w variants exist
// for call sites that read better with an explicit key/value list; both
// forms take alternating keys and values.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	With(args ...any) Interface

	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
	Fatalw(msg string, keysAndValues ...any)
}

type slogLogger struct {
	logger *slog.Logger
}

// NewLogger wraps the process logger configured by Init.
func NewLogger() Interface {
	return FromSlog(Get())
}

func FromSlog(l *slog.Logger) Interface {
	return &slogLogger{logger: l}
}

// emit records the caller of the exported method so source attribution
// points at application code rather than this file.
func (l *slogLogger) emit(level slog.Level, msg string, args []any) {
	ctx := context.Background()
	if !l.logger.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(args...)
	_ = l.logger.Handler().Handle(ctx, r)
}

func (l *slogLogger) Debug(msg string, args ...any) { l.emit(slog.LevelDebug, msg, args) }
func (l *slogLogger) Info(msg string, args ...any)  { l.emit(slog.LevelInfo, msg, args) }
func (l *slogLogger) Warn(msg string, args ...any)  { l.emit(slog.LevelWarn, msg, args) }
func (l *slogLogger) Error(msg string, args ...any) { l.emit(slog.LevelError, msg, args) }

func (l *slogLogger) Fatal(msg string, args ...any) {
	l.emit(slog.LevelError, msg, args)
	os.Exit(1)
}

func (l *slogLogger) Debugw(msg string, kv ...any) { l.emit(slog.LevelDebug, msg, kv) }
func (l *slogLogger) Infow(msg string, kv ...any)  { l.emit(slog.LevelInfo, msg, kv) }
func (l *slogLogger) Warnw(msg string, kv ...any)  { l.emit(slog.LevelWarn, msg, kv) }
func (l *slogLogger) Errorw(msg string, kv ...any) { l.emit(slog.LevelError, msg, kv) }

func (l *slogLogger) Fatalw(msg string, kv ...any) {
	l.emit(slog.LevelError, msg, kv)
	os.Exit(1)
}

func (l *slogLogger) With(args ...any) Interface {
	return &slogLogger{logger: l.logger.With(args...)}
}

// NewNopLogger discards everything.
func NewNopLogger() Interface {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any)    {}
func (nopLogger) Info(string, ...any)     {}
func (nopLogger) Warn(string, ...any)     {}
func (nopLogger) Error(string, ...any)    {}
func (nopLogger) Fatal(string, ...any)    {}
func (n nopLogger) With(...any) Interface { return n }
func (nopLogger) Debugw(string, ...any)   {}
func (nopLogger) Infow(string, ...any)    {}
func (nopLogger) Warnw(string, ...any)    {}
func (nopLogger) Errorw(string, ...any)   {}
func (nopLogger) Fatalw(string, ...any)   {}
