// Package logredact wraps an slog.Handler so secret-bearing attributes never
// reach the log sink. The identity daemon logs through this wrapper because
// its working set includes raw private key material.
package logredact

import (
	"context"
	"log/slog"
)

const placeholder = "[redacted]"

// secretKeys are attribute names whose values are always replaced.
var secretKeys = map[string]struct{}{
	"private_key": {},
	"mnemonic":    {},
	"passphrase":  {},
}

type handler struct {
	next slog.Handler
}

// Wrap returns a handler that redacts secret attributes before delegating.
func Wrap(next slog.Handler) slog.Handler {
	return &handler{next: next}
}

func (h *handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *handler) Handle(ctx context.Context, rec slog.Record) error {
	out := slog.NewRecord(rec.Time, rec.Level, rec.Message, rec.PC)
	rec.Attrs(func(a slog.Attr) bool {
		out.AddAttrs(redact(a))
		return true
	})
	return h.next.Handle(ctx, out)
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	cleaned := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		cleaned[i] = redact(a)
	}
	return &handler{next: h.next.WithAttrs(cleaned)}
}

func (h *handler) WithGroup(name string) slog.Handler {
	return &handler{next: h.next.WithGroup(name)}
}

func redact(a slog.Attr) slog.Attr {
	if _, secret := secretKeys[a.Key]; secret {
		a.Value = slog.StringValue(placeholder)
	}
	return a
}
