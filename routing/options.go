// File: options.go
// Role: engine configuration via functional options.
// Contract: option constructors panic on meaningless values; queries never panic.

package routing

import (
	"io"
	"log/slog"
	"math"
	"runtime"

	"github.com/katalvlaran/metroroute/core"
)

// DefaultMaxExpansions caps the partial paths popped per alias pair.
const DefaultMaxExpansions = 200_000

// engineConfig holds the resolved knobs of an Engine.
type engineConfig struct {
	maxExpansions int // per alias pair
	maxHops       int // 0 = unlimited
	parallelism   int // concurrent alias-pair workers
	avoid         [core.Shunt + 1]bool
	logger        *slog.Logger
}

// avoids reports whether any edge kind is excluded.
func (c *engineConfig) avoids() bool {
	for _, a := range c.avoid {
		if a {
			return true
		}
	}

	return false
}

// usable reports whether routes may traverse e.
func (c *engineConfig) usable(e *core.Edge) bool { return !c.avoid[e.Kind] }

// Option customizes an Engine.
type Option func(*engineConfig)

func newEngineConfig(opts ...Option) engineConfig {
	cfg := engineConfig{
		maxExpansions: DefaultMaxExpansions,
		parallelism:   runtime.GOMAXPROCS(0),
		logger:        slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithMaxExpansions caps the number of partial paths expanded per alias
// pair. Panics if n < 1.
func WithMaxExpansions(n int) Option {
	if n < 1 {
		panic("routing: WithMaxExpansions(<1)")
	}
	return func(c *engineConfig) { c.maxExpansions = n }
}

// WithMaxHops limits paths to n edges; 0 removes the limit. Panics if n < 0.
func WithMaxHops(n int) Option {
	if n < 0 {
		panic("routing: WithMaxHops(<0)")
	}
	return func(c *engineConfig) { c.maxHops = n }
}

// WithParallelism sets how many alias pairs are searched concurrently.
// Panics if n < 1.
func WithParallelism(n int) Option {
	if n < 1 {
		panic("routing: WithParallelism(<1)")
	}
	return func(c *engineConfig) { c.parallelism = n }
}

// WithAvoid excludes edges of the given kinds from every route, e.g.
// WithAvoid(core.Shunt) for journeys on timetabled service only. Repeated
// calls accumulate. Panics on an unknown kind.
func WithAvoid(kinds ...core.EdgeKind) Option {
	for _, k := range kinds {
		if !k.Valid() {
			panic("routing: WithAvoid(unknown kind)")
		}
	}
	return func(c *engineConfig) {
		for _, k := range kinds {
			c.avoid[k] = true
		}
	}
}

// WithLogger routes per-query diagnostics to logger. Panics on nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic("routing: WithLogger(nil)")
	}
	return func(c *engineConfig) { c.logger = logger }
}
