// SPDX-License-Identifier: MIT
// Package: metroroute/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs
//     (negative weights, nil logger). Build steps themselves never panic.

package builder

import (
	"log/slog"
	"strings"

	"github.com/katalvlaran/metroroute/core"
)

// BuilderOption customizes the builder by mutating a builderConfig before
// construction begins.
type BuilderOption func(*builderConfig)

// WithTransferPenalty sets the weight, in seconds, of every Transfer edge.
// Panics on a negative value or one above core.MaxWeight.
func WithTransferPenalty(seconds int64) BuilderOption {
	if seconds < 0 || seconds > core.MaxWeight {
		panic("builder: WithTransferPenalty out of range")
	}
	return func(c *builderConfig) { c.transferPenalty = seconds }
}

// WithShuntWeight sets the constant weight, in seconds, of every Shunt edge.
// Panics on a negative value or one above core.MaxWeight.
func WithShuntWeight(seconds int64) BuilderOption {
	if seconds < 0 || seconds > core.MaxWeight {
		panic("builder: WithShuntWeight out of range")
	}
	return func(c *builderConfig) { c.shuntWeight = seconds }
}

// WithShuntLine sets the line ID carried by Shunt edges. Empty means default.
func WithShuntLine(line string) BuilderOption {
	return func(c *builderConfig) { c.shuntLine = strings.TrimSpace(line) }
}

// WithManualTransfer asks Build to join two differently named stations with
// Transfer edges. May be given several times; applied in order.
func WithManualTransfer(a, b string) BuilderOption {
	return func(c *builderConfig) { c.manual = append(c.manual, stationPair{a: a, b: b}) }
}

// WithShunt asks Build to add a shunt link between two stations.
// May be given several times; applied in order after manual transfers.
func WithShunt(a, b string) BuilderOption {
	return func(c *builderConfig) { c.shunts = append(c.shunts, stationPair{a: a, b: b}) }
}

// WithLogger routes build diagnostics to logger. Panics on nil.
func WithLogger(logger *slog.Logger) BuilderOption {
	if logger == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) { c.logger = logger }
}
