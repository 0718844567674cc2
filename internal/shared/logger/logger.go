package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"github.com/tinytickets/tinytickets/internal/shared/config"
)

var (
	Logger *slog.Logger
	level  = new(slog.LevelVar)
	mu     sync.Mutex
)

// Init configures the process-wide logger. Warnings and errors carry their
// source location; in debug mode every level does and the minimum level
// drops to debug.
func Init(cfg *config.LoggerConfig, debug bool) error {
	level.Set(parseLevel(cfg.Level))
	sourceFrom := slog.LevelWarn
	if debug {
		level.Set(slog.LevelDebug)
		sourceFrom = slog.LevelDebug
	}

	writer, err := openOutput(cfg.OutputPath)
	if err != nil {
		return err
	}

	setDefault(slog.New(newServiceHandler(baseHandler(writer, cfg.Format), sourceFrom)))
	return nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func openOutput(path string) (io.Writer, error) {
	switch strings.ToLower(path) {
	case "stdout", "":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	}
}

// baseHandler renders JSON for "json" and colored text otherwise. Colors are
// dropped when w is not a terminal.
func baseHandler(w io.Writer, format string) slog.Handler {
	if format == "json" {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		NoColor:    !isTerminal(w),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" && a.Value.Kind() == slog.KindAny {
				if err, ok := a.Value.Any().(error); ok {
					return tint.Err(err)
				}
			}
			return a
		},
	})
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func setDefault(l *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	Logger = l
	slog.SetDefault(l)
}

// Get returns the process-wide logger, falling back to colored text on
// stdout when Init was never called.
func Get() *slog.Logger {
	mu.Lock()
	l := Logger
	mu.Unlock()
	if l != nil {
		return l
	}

	l = slog.New(newServiceHandler(baseHandler(os.Stdout, "console"), slog.LevelWarn))
	setDefault(l)
	return l
}

func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}

func Fatal(msg string, args ...any) {
	Get().Error(msg, args...)
	os.Exit(1)
}

// Sync is kept for callers that defer it; slog writes are unbuffered.
func Sync() error {
	return nil
}
