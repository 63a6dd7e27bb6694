// SPDX-License-Identifier: MIT
// Package: metroroute/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(reg, bopts, steps...). Creates the Builder,
//     resolves cfg, runs steps in order.
//   - Build(reg, itineraries, observations, opts...) is the canonical order:
//     segments → travel times → transfers → manual transfers → shunts.
//   - Determinism: same inputs/options and step order ⇒ identical graphs.
//   - Safety: never panic; record problems become Warnings.

package builder

import (
	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/records"
	"github.com/katalvlaran/metroroute/registry"
)

// Builder assembles a core.Graph from a registry and record streams.
// A Builder is not safe for concurrent use.
type Builder struct {
	reg      *registry.Registry
	g        *core.Graph
	cfg      builderConfig
	warnings *Warnings
}

// New creates a Builder whose graph already holds one node per registry node.
func New(reg *registry.Registry, opts ...BuilderOption) (*Builder, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	cfg := newBuilderConfig(opts...)
	nodes := reg.Nodes()
	g := core.NewGraph(core.WithCapacity(len(nodes), 2*len(nodes)))
	for _, id := range nodes {
		st, _ := reg.StationOf(id)
		pos, _ := reg.Position(id)
		if err := g.AddNode(id, core.WithStation(st.Key), core.WithPosition(pos)); err != nil {
			return nil, builderErrorf("New", "add node %s: %w", id, err)
		}
	}

	return &Builder{reg: reg, g: g, cfg: cfg, warnings: newWarnings()}, nil
}

// Graph returns the graph under construction.
func (b *Builder) Graph() *core.Graph { return b.g }

// Warnings returns the warnings collected so far.
func (b *Builder) Warnings() *Warnings { return b.warnings }

// Step is one deterministic mutation applied by BuildGraph.
type Step func(b *Builder)

// LineSegments returns a Step running AddLineSegments.
func LineSegments(its []records.Itinerary) Step {
	return func(b *Builder) { b.AddLineSegments(its) }
}

// TravelTimes returns a Step running MergeTravelTimes.
func TravelTimes(obs []records.Observation) Step {
	return func(b *Builder) { b.MergeTravelTimes(obs) }
}

// Transfers returns a Step running AddTransfers.
func Transfers() Step {
	return func(b *Builder) { b.AddTransfers() }
}

// ManualTransfer returns a Step running AddManualTransfer.
func ManualTransfer(a, c string) Step {
	return func(b *Builder) { b.AddManualTransfer(a, c) }
}

// ShuntLink returns a Step running AddShunt.
func ShuntLink(a, c string) Step {
	return func(b *Builder) { b.AddShunt(a, c) }
}

// BuildGraph creates a Builder over reg and applies all steps in order.
func BuildGraph(reg *registry.Registry, bopts []BuilderOption, steps ...Step) (*core.Graph, *Warnings, error) {
	b, err := New(reg, bopts...)
	if err != nil {
		return nil, nil, err
	}
	for i, step := range steps {
		if step == nil {
			return nil, nil, builderErrorf("BuildGraph", "step %d: %w", i, ErrNilStep)
		}
		step(b)
	}
	b.logStats()

	return b.g, b.warnings, nil
}

// Build runs the canonical construction: line segments, travel times,
// automatic transfers, then the manual transfers and shunts named in opts.
func Build(reg *registry.Registry, its []records.Itinerary, obs []records.Observation, opts ...BuilderOption) (*core.Graph, *Warnings, error) {
	cfg := newBuilderConfig(opts...)
	steps := []Step{LineSegments(its), TravelTimes(obs), Transfers()}
	for _, p := range cfg.manual {
		steps = append(steps, ManualTransfer(p.a, p.b))
	}
	for _, p := range cfg.shunts {
		steps = append(steps, ShuntLink(p.a, p.b))
	}

	return BuildGraph(reg, opts, steps...)
}

func (b *Builder) logStats() {
	st := b.g.Stats()
	b.cfg.logger.Info("graph built",
		"nodes", st.NodeCount,
		"line_segments", st.LineSegments,
		"untimed_segments", st.UntimedLines,
		"transfers", st.Transfers,
		"shunts", st.Shunts,
		"isolated_nodes", st.IsolatedNodes,
		"warnings", b.warnings.Len(),
	)
}
