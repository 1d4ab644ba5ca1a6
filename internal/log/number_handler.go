package log

import (
	"context"
	"io"
	"log/slog"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// groupingThreshold is the smallest magnitude that receives thousands
// separators. Four-digit values such as ports and years are left as-is;
// anything five digits and up is grouped.
const groupingThreshold = 10000

// printer formats grouped integers. English grouping (1,234,567) is used
// unconditionally; the separators exist for scanning logs, not for
// localization.
var printer = message.NewPrinter(language.English)

// NumberHandler wraps an slog.Handler to apply digit grouping to large
// integer attribute values. It intercepts log records and reformats any
// int64 or uint64 attribute at or above the grouping threshold before
// passing the record to the underlying handler.
//
// Design decision: We use a handler wrapper rather than formatting at each
// call site because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. Call sites keep logging raw integers and stay grep-friendly
type NumberHandler struct {
	// handler is the underlying slog handler that receives formatted records.
	handler slog.Handler
}

// NewNumberHandler creates a new NumberHandler wrapping the given handler.
// All integer attributes will be formatted before being passed to the
// underlying handler. If handler is nil, the returned NumberHandler will
// use slog.Default().Handler().
func NewNumberHandler(handler slog.Handler) *NumberHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &NumberHandler{handler: handler}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *NumberHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle formats the record's attributes and passes it to the underlying handler.
func (h *NumberHandler) Handle(ctx context.Context, r slog.Record) error {
	// Create a new record with formatted attributes
	formatted := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	// Format each attribute
	r.Attrs(func(a slog.Attr) bool {
		formatted.AddAttrs(h.humanizeAttr(a))
		return true
	})

	return h.handler.Handle(ctx, formatted)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are formatted before being added.
func (h *NumberHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	formattedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		formattedAttrs[i] = h.humanizeAttr(a)
	}
	return &NumberHandler{handler: h.handler.WithAttrs(formattedAttrs)}
}

// WithGroup returns a new handler with the given group name.
func (h *NumberHandler) WithGroup(name string) slog.Handler {
	return &NumberHandler{handler: h.handler.WithGroup(name)}
}

// humanizeAttr formats a single attribute, recursively handling groups.
// Non-integer kinds (strings, durations, times) pass through unchanged.
func (h *NumberHandler) humanizeAttr(a slog.Attr) slog.Attr {
	// Handle groups recursively
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		formattedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			formattedAttrs[i] = h.humanizeAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(formattedAttrs...)}
	}

	switch a.Value.Kind() {
	case slog.KindInt64:
		if v := a.Value.Int64(); v >= groupingThreshold || v <= -groupingThreshold {
			return slog.String(a.Key, printer.Sprintf("%d", v))
		}
	case slog.KindUint64:
		if v := a.Value.Uint64(); v >= groupingThreshold {
			return slog.String(a.Key, printer.Sprintf("%d", v))
		}
	}

	return a
}

// NewLogger creates a new slog.Logger for scan progress output.
// Large integer attributes are formatted with thousands separators.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
//
// Returns a *slog.Logger that can be used with slog.SetDefault() or passed
// to components that accept *slog.Logger.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	textHandler := slog.NewTextHandler(w, opts)
	numberHandler := NewNumberHandler(textHandler)

	return slog.New(numberHandler)
}
