// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package enum

import "log/slog"

// Option configures a Type.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for finalization and rejected calls.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
