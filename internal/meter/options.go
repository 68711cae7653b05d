// SPDX-FileCopyrightText: 2026 The aespower Authors
// SPDX-License-Identifier: Apache-2.0

package meter

import (
	"log/slog"

	"k8s.io/utils/clock"
)

type Opts struct {
	logger *slog.Logger
	clock  clock.PassiveClock
}

// DefaultOpts returns a new Opts with defaults set
func DefaultOpts() Opts {
	return Opts{
		logger: slog.Default(),
		clock:  clock.RealClock{},
	}
}

// OptionFn is a function that sets one or more options in the Opts struct
type OptionFn func(*Opts)

// WithLogger sets the logger for the Meter
func WithLogger(logger *slog.Logger) OptionFn {
	return func(o *Opts) {
		o.logger = logger
	}
}

// WithClock sets the wall clock for the Meter
func WithClock(c clock.PassiveClock) OptionFn {
	return func(o *Opts) {
		o.clock = c
	}
}
