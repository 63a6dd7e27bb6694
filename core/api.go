// File: api.go
// Role: Read-only facade: Stats snapshot and edge filtering by kind.
// Policy:
//   - No mutation here.
//   - Stats() is an O(V+E) snapshot; use it for build reports and assertions.

package core

// Stats produces a read-only snapshot of node and edge counts split by kind.
//
// Implementation:
//   - Stage 1: Acquire muNode.RLock, snapshot node count.
//   - Stage 2: Acquire muEdgeAdj.RLock, classify edges and count isolated nodes.
//
// Complexity: O(V+E).
func (g *Graph) Stats() *GraphStats {
	g.muNode.RLock()
	stats := GraphStats{NodeCount: len(g.nodes)}
	g.muNode.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		switch e.Kind {
		case LineSegment:
			stats.LineSegments++
			if !e.Timed {
				stats.UntimedLines++
			}
		case Transfer:
			stats.Transfers++
		case Shunt:
			stats.Shunts++
		}
	}
	for _, set := range g.adjacency {
		if len(set) == 0 {
			stats.IsolatedNodes++
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}

// EdgesOfKind returns the edges of one kind in insertion order.
func (g *Graph) EdgesOfKind(kind EdgeKind) []*Edge {
	all := g.Edges()
	out := all[:0]
	for _, e := range all {
		if e.Kind == kind {
			out = append(out, e)
		}
	}

	return out
}

// HasServiceEdges reports whether id has at least one LineSegment or Shunt
// edge. Nodes without one are reachable only through transfers, or not at all.
func (g *Graph) HasServiceEdges(id string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for k := range g.adjacency[id] {
		if k.kind == LineSegment || k.kind == Shunt {
			return true
		}
	}

	return false
}
