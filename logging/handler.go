package logging

import (
	"context"
	"io"
	"strings"
	"sync"

	"golang.org/x/exp/slog"
)

// textHandler formats records as a single space-joined line: timestamp,
// level, message, then any attrs, terminated by a newline. It wraps a
// slog.TextHandler for the level-gating and attribute bookkeeping and
// owns the actual io.Writer write under a mutex, matching slog's own
// handler contract that Handle must be safe for concurrent use.
type textHandler struct {
	h   slog.Handler
	mu  *sync.Mutex
	out io.Writer
}

func newTextHandler(w io.Writer, level slog.Leveler) *textHandler {
	return &textHandler{
		out: w,
		h:   slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}),
		mu:  &sync.Mutex{},
	}
}

func (h *textHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.h.Enabled(ctx, level)
}

func (h *textHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &textHandler{h: h.h.WithAttrs(attrs), out: h.out, mu: h.mu}
}

func (h *textHandler) WithGroup(name string) slog.Handler {
	return &textHandler{h: h.h.WithGroup(name), out: h.out, mu: h.mu}
}

func (h *textHandler) Handle(ctx context.Context, r slog.Record) error {
	formattedTime := r.Time.Format("2006/01/02 15:04:05")
	parts := []string{formattedTime, r.Level.String(), r.Message}

	r.Attrs(func(a slog.Attr) bool {
		parts = append(parts, a.String())

		return true
	})
	parts = append(parts, "\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write([]byte(strings.Join(parts, " ")))

	return err
}
