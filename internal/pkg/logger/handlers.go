// internal/pkg/logger/handlers.go
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"sync"
)

// contextHandler copies request-scoped context values onto every record
// so handlers and services do not have to thread them manually.
type contextHandler struct {
	next slog.Handler
	keys []ContextKey
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, record slog.Record) error {
	attrs := contextAttrs(ctx, h.keys)
	if len(attrs) == 0 {
		return h.next.Handle(ctx, record)
	}

	enriched := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(a slog.Attr) bool {
		enriched.AddAttrs(a)
		return true
	})
	enriched.AddAttrs(attrs...)

	return h.next.Handle(ctx, enriched)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{next: h.next.WithAttrs(attrs), keys: h.keys}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{next: h.next.WithGroup(name), keys: h.keys}
}

// redactHandler masks credential-looking values before they reach the
// output. Keys are matched by substring, message text by pattern.
type redactHandler struct {
	next    slog.Handler
	pattern *regexp.Regexp
	blocked []string
}

const redactedValue = "***REDACTED***"

func newRedactHandler(next slog.Handler) *redactHandler {
	return &redactHandler{
		next: next,
		pattern: regexp.MustCompile(
			`(?i)(password|secret|token|jwt|bearer|api[-_]?key)\s*[:=]\s*["']?([^"'\s]+)`),
		blocked: []string{
			"password", "secret", "token", "jwt", "auth", "api_key",
		},
	}
}

func (h *redactHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *redactHandler) Handle(ctx context.Context, record slog.Record) error {
	clean := slog.NewRecord(record.Time, record.Level, h.redactString(record.Message), record.PC)
	record.Attrs(func(a slog.Attr) bool {
		clean.AddAttrs(h.redactAttr(a))
		return true
	})

	return h.next.Handle(ctx, clean)
}

func (h *redactHandler) redactAttr(attr slog.Attr) slog.Attr {
	lowerKey := strings.ToLower(attr.Key)
	for _, blocked := range h.blocked {
		if strings.Contains(lowerKey, blocked) {
			attr.Value = slog.StringValue(redactedValue)
			return attr
		}
	}

	if s, ok := attr.Value.Any().(string); ok {
		attr.Value = slog.StringValue(h.redactString(s))
	}

	return attr
}

func (h *redactHandler) redactString(s string) string {
	return h.pattern.ReplaceAllString(s, "$1="+redactedValue)
}

func (h *redactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &redactHandler{
		next:    h.next.WithAttrs(attrs),
		pattern: h.pattern,
		blocked: h.blocked,
	}
}

func (h *redactHandler) WithGroup(name string) slog.Handler {
	return &redactHandler{
		next:    h.next.WithGroup(name),
		pattern: h.pattern,
		blocked: h.blocked,
	}
}

// devTextHandler renders colored single-line output for local runs
type devTextHandler struct {
	*slog.TextHandler
	mu sync.Mutex
	w  io.Writer
}

func newDevTextHandler(w io.Writer, opts *slog.HandlerOptions) *devTextHandler {
	return &devTextHandler{
		TextHandler: slog.NewTextHandler(w, opts),
		w:           w,
	}
}

func (h *devTextHandler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	const reset = "\033[0m"

	level := r.Level.String()
	fmt.Fprintf(h.w, "%s%s %s%s%s %s",
		levelColor(r.Level),
		r.Time.Format("2006-01-02 15:04:05.000"),
		strings.ToUpper(level),
		reset,
		strings.Repeat(" ", 7-len(level)),
		r.Message,
	)

	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(h.w, " \033[36m%s=%v%s", a.Key, a.Value, reset)
		return true
	})

	fmt.Fprintln(h.w)

	return nil
}

func levelColor(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "\033[37m"
	case slog.LevelInfo:
		return "\033[34m"
	case slog.LevelWarn:
		return "\033[33m"
	case slog.LevelError:
		return "\033[31m"
	default:
		return "\033[0m"
	}
}
