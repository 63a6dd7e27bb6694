// SPDX-License-Identifier: MIT
// Package: metroroute/builder
//
// impl_transfers.go - transfer edges (automatic and manual) and shunt links.

package builder

import (
	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/registry"
)

// AddTransfers adds a Transfer edge, weighted by the transfer penalty,
// between every pair of aliased nodes of every station with two or more
// nodes. A pair already joined by a LineSegment keeps only that edge.
// Replaying is a no-op. Returns the number of new edges.
//
// Complexity: O(Σ n_s²) over stations s with n_s aliases.
func (b *Builder) AddTransfers() int {
	added := 0
	for _, st := range b.reg.Stations() {
		nodes := st.Nodes
		for i := 0; i < len(nodes); i++ {
			for j := i + 1; j < len(nodes); j++ {
				if b.addTransfer(nodes[i], nodes[j]) {
					added++
				}
			}
		}
	}
	b.cfg.logger.Debug("transfers added", "edges", added)

	return added
}

// AddManualTransfer joins every node of station a with every node of station
// c by a Transfer edge, for stations close enough to walk between that do
// not share a name. Same skip rules as AddTransfers. Unknown names raise
// WarnUnknownStation. Returns the number of new edges.
func (b *Builder) AddManualTransfer(a, c string) int {
	from, to, ok := b.stationPair("manual transfer", a, c)
	if !ok {
		return 0
	}
	added := 0
	for _, u := range from.Nodes {
		for _, v := range to.Nodes {
			if b.addTransfer(u, v) {
				added++
			}
		}
	}
	b.cfg.logger.Debug("manual transfer", "from", from.Name, "to", to.Name, "edges", added)

	return added
}

// AddShunt links stations a and c with Shunt edges carrying the shunt line
// and the constant shunt weight. Only alias nodes with no LineSegment and no
// Shunt edge of their own qualify, so the link never duplicates a served
// route; a second call therefore finds nothing left to link. Returns the
// number of new edges.
func (b *Builder) AddShunt(a, c string) int {
	from, to, ok := b.stationPair("shunt", a, c)
	if !ok {
		return 0
	}

	// Qualification is decided before any shunt edge is added.
	origins := b.unserved(from.Nodes)
	dests := b.unserved(to.Nodes)

	added := 0
	for _, u := range origins {
		for _, v := range dests {
			if u == v {
				continue
			}
			if _, err := b.g.AddEdge(u, v, core.Shunt, b.cfg.shuntWeight, core.WithLine(b.cfg.shuntLine)); err == nil {
				added++
			}
		}
	}
	if added == 0 {
		b.warnings.Add(WarnNoShuntPairs, from.Name+"<->"+to.Name, "no unserved node pair to link")
	}
	b.cfg.logger.Debug("shunt", "from", from.Name, "to", to.Name, "edges", added)

	return added
}

// addTransfer adds one Transfer edge unless the pair is a loop, already has a
// Transfer, or is served by a LineSegment.
func (b *Builder) addTransfer(u, v string) bool {
	if u == v || b.g.HasEdge(u, v, core.LineSegment, core.Transfer) {
		return false
	}
	_, err := b.g.AddEdge(u, v, core.Transfer, b.cfg.transferPenalty)

	return err == nil
}

// unserved filters nodes that have no LineSegment or Shunt edge.
func (b *Builder) unserved(nodes []string) []string {
	var out []string
	for _, n := range nodes {
		if !b.g.HasServiceEdges(n) {
			out = append(out, n)
		}
	}

	return out
}

// stationPair resolves both names, raising WarnUnknownStation for each miss.
func (b *Builder) stationPair(what, a, c string) (*registry.Station, *registry.Station, bool) {
	from, okA := b.reg.Station(a)
	to, okC := b.reg.Station(c)
	if !okA {
		b.warnings.Add(WarnUnknownStation, a, "%s names unknown station", what)
	}
	if !okC {
		b.warnings.Add(WarnUnknownStation, c, "%s names unknown station", what)
	}

	return from, to, okA && okC
}
