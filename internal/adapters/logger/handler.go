package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/snobb/imk/internal/ui/style"
)

const timeFormat = "15:04:05"

// PrettyHandler is a slog.Handler producing human-readable, colored lines
// prefixed with the wall-clock time.
type PrettyHandler struct {
	out        *termenv.Output
	level      slog.Leveler
	timestamps bool
	attrs      []slog.Attr
	group      string
}

// NewPrettyHandler creates a new PrettyHandler writing to w with the given color profile.
func NewPrettyHandler(w io.Writer, profile termenv.Profile, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:        termenv.NewOutput(w, termenv.WithProfile(profile), termenv.WithTTY(true)),
		level:      level,
		timestamps: true,
	}
}

// WithoutTimestamps returns a copy of the handler that omits the time prefix.
func (h *PrettyHandler) WithoutTimestamps() *PrettyHandler {
	c := *h
	c.timestamps = false
	return &c
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var msg string
	var color termenv.Color

	switch {
	case r.Level >= slog.LevelError:
		msg = style.Cross + " " + r.Message
		color = h.out.Color(string(style.Red))
	case r.Level >= slog.LevelWarn:
		msg = style.Warning + " " + r.Message
		color = h.out.Color(string(style.Yellow))
	default:
		msg = r.Message
	}

	attrParts := make([]string, 0, len(h.attrs)+r.NumAttrs())
	for _, attr := range h.attrs {
		attrParts = append(attrParts, formatAttr(h.group, attr))
	}
	r.Attrs(func(attr slog.Attr) bool {
		attrParts = append(attrParts, formatAttr(h.group, attr))
		return true
	})
	if len(attrParts) > 0 {
		msg += " " + strings.Join(attrParts, " ")
	}

	var line strings.Builder
	if h.timestamps && !r.Time.IsZero() {
		stamp := h.out.String(r.Time.Format(timeFormat)).Foreground(h.out.Color(string(style.Slate)))
		line.WriteString(stamp.String())
		line.WriteByte(' ')
	}

	styled := h.out.String(msg)
	if color != nil {
		styled = styled.Foreground(color)
	}
	line.WriteString(styled.String())
	line.WriteByte('\n')

	_, err := h.out.WriteString(line.String())
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	copy(newAttrs[len(h.attrs):], attrs)

	c := *h
	c.attrs = newAttrs
	return &c
}

// WithGroup returns a new Handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	c := *h
	c.group = name
	return &c
}

// formatAttr formats a single attribute for output.
// If a group is set, the key is prefixed with the group name.
func formatAttr(group string, attr slog.Attr) string {
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}
	return key + "=" + attr.Value.String()
}
