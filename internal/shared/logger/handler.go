package logger

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
)

// Redacted replaces the value of attributes that may carry credentials.
const Redacted = "[REDACTED]"

// sensitiveKeys are matched case-insensitively against attribute keys.
var sensitiveKeys = map[string]struct{}{
	"password":      {},
	"smtp_password": {},
	"x-token":       {},
	"authorization": {},
}

// serviceHandler adds a source location to records at or above sourceFrom
// and redacts credential attributes before they reach the wrapped handler.
// The wrapped handler must not add source itself.
type serviceHandler struct {
	handler    slog.Handler
	sourceFrom slog.Level
}

func newServiceHandler(handler slog.Handler, sourceFrom slog.Level) slog.Handler {
	return &serviceHandler{handler: handler, sourceFrom: sourceFrom}
}

func (h *serviceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *serviceHandler) Handle(ctx context.Context, r slog.Record) error {
	out := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		out.AddAttrs(redact(a))
		return true
	})

	if r.Level >= h.sourceFrom && r.PC != 0 {
		f, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		out.AddAttrs(slog.Any(slog.SourceKey, &slog.Source{
			Function: f.Function,
			File:     f.File,
			Line:     f.Line,
		}))
	}

	return h.handler.Handle(ctx, out)
}

func (h *serviceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clean := make([]slog.Attr, 0, len(attrs))
	for _, a := range attrs {
		clean = append(clean, redact(a))
	}
	return &serviceHandler{handler: h.handler.WithAttrs(clean), sourceFrom: h.sourceFrom}
}

func (h *serviceHandler) WithGroup(name string) slog.Handler {
	return &serviceHandler{handler: h.handler.WithGroup(name), sourceFrom: h.sourceFrom}
}

func redact(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		clean := make([]any, 0, len(group))
		for _, g := range group {
			clean = append(clean, redact(g))
		}
		return slog.Group(a.Key, clean...)
	}
	if _, ok := sensitiveKeys[strings.ToLower(a.Key)]; ok {
		return slog.String(a.Key, Redacted)
	}
	return a
}
