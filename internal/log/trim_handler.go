package log

import (
	"context"
	"io"
	"log/slog"
	"unicode/utf8"
)

// MaxAttrLen is the longest string attribute value logged verbatim.
// Context windows are bounded upstream, but OCR blocks and section texts
// are not.
const MaxAttrLen = 160

// TrimMarker is appended to a trimmed value.
const TrimMarker = "...(trimmed)"

// TrimHandler wraps an slog.Handler and caps string attribute values at
// MaxAttrLen runes. A handler wrapper integrates with standard slog APIs
// and works with any underlying handler, text or JSON alike.
type TrimHandler struct {
	handler slog.Handler
}

// NewTrimHandler creates a TrimHandler wrapping the given handler.
// If handler is nil, the returned TrimHandler uses slog.Default().Handler().
func NewTrimHandler(handler slog.Handler) *TrimHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &TrimHandler{handler: handler}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *TrimHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle trims the record's attributes and passes it to the underlying
// handler.
func (h *TrimHandler) Handle(ctx context.Context, r slog.Record) error {
	trimmed := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		trimmed.AddAttrs(h.trimAttr(a))
		return true
	})
	return h.handler.Handle(ctx, trimmed)
}

// WithAttrs returns a new handler with the given attributes added, trimmed.
func (h *TrimHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = h.trimAttr(a)
	}
	return &TrimHandler{handler: h.handler.WithAttrs(out)}
}

// WithGroup returns a new handler with the given group name.
func (h *TrimHandler) WithGroup(name string) slog.Handler {
	return &TrimHandler{handler: h.handler.WithGroup(name)}
}

// trimAttr trims a single attribute, recursively handling groups.
func (h *TrimHandler) trimAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		out := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			out[i] = h.trimAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(out...)}
	}

	if a.Value.Kind() != slog.KindString {
		return a
	}
	s := a.Value.String()
	if utf8.RuneCountInString(s) <= MaxAttrLen {
		return a
	}

	runes := []rune(s)
	return slog.String(a.Key, string(runes[:MaxAttrLen])+TrimMarker)
}

// NewLogger creates a logger writing human-readable output to w. Verbose
// mode lowers the level to debug; otherwise only warnings and errors are
// logged.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	base := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewTrimHandler(base))
}
