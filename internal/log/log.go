// Package log builds the application's slog logger. Request handlers
// attach scoped attributes through the context.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

type ctxAttrsKey struct{}

// ContextHandler copies attributes stored in the context onto every
// record it handles.
type ContextHandler struct {
	slog.Handler
}

func (h ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(ctxAttrsKey{}).([]slog.Attr); ok {
		r.AddAttrs(attrs...)
	}
	return h.Handler.Handle(ctx, r)
}

// AppendCtx returns a context carrying attr in addition to any
// attributes already present.
func AppendCtx(parent context.Context, attr slog.Attr) context.Context {
	if parent == nil {
		parent = context.Background()
	}
	attrs, _ := parent.Value(ctxAttrsKey{}).([]slog.Attr)
	out := make([]slog.Attr, len(attrs), len(attrs)+1)
	copy(out, attrs)
	return context.WithValue(parent, ctxAttrsKey{}, append(out, attr))
}

func New(options *slog.HandlerOptions) *slog.Logger {
	if options == nil {
		options = &slog.HandlerOptions{Level: slog.LevelDebug}
	}
	return slog.New(ContextHandler{Handler: slog.NewJSONHandler(os.Stderr, options)})
}

// NullLogger discards everything. Tests use it to silence components
// that demand a logger.
func NullLogger() *slog.Logger {
	return slog.New(ContextHandler{Handler: slog.NewTextHandler(io.Discard, nil)})
}
