// SPDX-License-Identifier: MIT
// Package: metroroute/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • transferPenalty = 240 s
//   • shuntWeight     = 120 s
//   • shuntLine       = "R"
//   • manual, shunts  = none
//   • logger          = discard

package builder

import (
	"io"
	"log/slog"
	"math"
)

// stationPair names two stations for a manual transfer or a shunt.
type stationPair struct {
	a, b string
}

// builderConfig aggregates all knobs used by the build steps.
// It is passed by VALUE once resolved.
type builderConfig struct {
	// Weight of every Transfer edge, in seconds.
	transferPenalty int64
	// Weight and line ID of every Shunt edge.
	shuntWeight int64
	shuntLine   string

	// Extra links applied by Build after the automatic transfers.
	manual []stationPair
	shunts []stationPair

	logger *slog.Logger
}

// Deterministic defaults (named, no magic numbers).
const (
	DefaultTransferPenalty = int64(240) // seconds spent changing platform
	DefaultShuntWeight     = int64(120) // seconds charged for a shunt link
	DefaultShuntLine       = "R"        // line ID carried by shunt links
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		transferPenalty: DefaultTransferPenalty,
		shuntWeight:     DefaultShuntWeight,
		shuntLine:       DefaultShuntLine,
		logger:          slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.shuntLine == "" {
		cfg.shuntLine = DefaultShuntLine
	}

	return cfg
}
