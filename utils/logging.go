package utils

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

// NewLogger returns a JSON logger for "json", and a human friendly one otherwise.
func NewLogger(format string) *slog.Logger {
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(LocalDevHandlerOptions{
		SlogOpts: slog.HandlerOptions{Level: slog.LevelDebug},
		UseColor: true,
	}.NewLocalDevHandler(os.Stderr))
}

// LocalDevHandler prints "<time> <level> <message> " then hands the attributes to a text handler.
type LocalDevHandler struct {
	opts  LocalDevHandlerOptions
	inner slog.Handler

	mu *sync.Mutex
	w  io.Writer
}

type LocalDevHandlerOptions struct {
	SlogOpts slog.HandlerOptions
	UseColor bool
}

func (opts LocalDevHandlerOptions) NewLocalDevHandler(w io.Writer) *LocalDevHandler {
	innerOpts := opts.SlogOpts
	innerOpts.AddSource = false
	innerOpts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
		switch a.Key {
		case slog.TimeKey, slog.LevelKey, slog.MessageKey:
			return slog.Attr{}
		}
		if opts.SlogOpts.ReplaceAttr != nil {
			return opts.SlogOpts.ReplaceAttr(groups, a)
		}
		return a
	}
	return &LocalDevHandler{
		opts:  opts,
		w:     w,
		mu:    &sync.Mutex{},
		inner: slog.NewTextHandler(w, &innerOpts),
	}
}

func (h *LocalDevHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *LocalDevHandler) Handle(ctx context.Context, r slog.Record) error {
	var buf bytes.Buffer

	buf.WriteString(r.Time.Format(time.RFC3339))
	buf.WriteString(" ")

	level := r.Level.String()
	if h.opts.UseColor {
		level = colorizeLevel(r.Level)
	}
	buf.WriteString(level)
	buf.WriteString(" ")
	buf.WriteString(r.Message)
	buf.WriteString(" ")

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, err := h.w.Write(buf.Bytes()); err != nil {
		return err
	}
	return h.inner.Handle(ctx, r)
}

func (h *LocalDevHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LocalDevHandler{opts: h.opts, w: h.w, mu: h.mu, inner: h.inner.WithAttrs(attrs)}
}

func (h *LocalDevHandler) WithGroup(name string) slog.Handler {
	return &LocalDevHandler{opts: h.opts, w: h.w, mu: h.mu, inner: h.inner.WithGroup(name)}
}

const (
	colorRed     = 31
	colorYellow  = 33
	colorBlue    = 34
	colorMagenta = 35
)

func colorizeLevel(level slog.Level) string {
	color := colorRed
	switch {
	case level < slog.LevelInfo:
		color = colorMagenta
	case level < slog.LevelWarn:
		color = colorBlue
	case level < slog.LevelError:
		color = colorYellow
	}
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", color, level.String())
}
