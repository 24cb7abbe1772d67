// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package logging provides structured logging tagged with the emitting component.
package logging

import (
	"context"
	"log/slog"
)

// ComponentKey is the attribute key stamped on every record.
const ComponentKey = "component"

// componentHandler wraps a slog.Handler to add the component name.
type componentHandler struct {
	handler   slog.Handler
	component string
}

// Handle adds the component to the log record.
func (h *componentHandler) Handle(ctx context.Context, r slog.Record) error {
	r.AddAttrs(slog.String(ComponentKey, h.component))

	//nolint:wrapcheck // Handler interface requires unwrapped error passthrough
	return h.handler.Handle(ctx, r)
}

// Enabled returns true if the level is enabled.
func (h *componentHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// WithAttrs returns a new handler with the given attributes.
func (h *componentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &componentHandler{
		handler:   h.handler.WithAttrs(attrs),
		component: h.component,
	}
}

// WithGroup returns a new handler with the given group.
func (h *componentHandler) WithGroup(name string) slog.Handler {
	return &componentHandler{
		handler:   h.handler.WithGroup(name),
		component: h.component,
	}
}

// Component returns a logger that tags records with the component name.
// If base is nil, the handler of slog.Default() at call time is used.
func Component(component string, base slog.Handler) *slog.Logger {
	if base == nil {
		base = slog.Default().Handler()
	}
	return slog.New(&componentHandler{handler: base, component: component})
}
