// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/EdgeBetween/HasEdge/SetWeight/Edges,
//       plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order (by numeric Edge.ID).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"fmt"
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates an undirected edge of the given kind between u and v.
//
// Steps:
//  1. Validate IDs, kind, weight and loops.
//  2. Check both endpoints exist (nodes are never created implicitly).
//  3. Lock muEdgeAdj; reject a second edge with the same (pair, kind).
//  4. Store the edge and link both adjacency sets.
//
// Errors:
//   - ErrEmptyNodeID, ErrBadKind, ErrNegativeWeight, ErrWeightTooLarge,
//     ErrLoopNotAllowed.
//   - ErrNodeNotFound if either endpoint is missing.
//   - ErrEdgeExists (wrapped with the pair) if the identity is already taken.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string, kind EdgeKind, weight int64, opts ...EdgeOption) (string, error) {
	if u == "" || v == "" {
		return "", ErrEmptyNodeID
	}
	if !kind.Valid() {
		return "", ErrBadKind
	}
	if err := checkWeight(weight); err != nil {
		return "", fmt.Errorf("%w: %s-%s weight=%d", err, u, v, weight)
	}
	if u == v {
		return "", ErrLoopNotAllowed
	}

	g.muNode.RLock()
	_, okU := g.nodes[u]
	_, okV := g.nodes[v]
	g.muNode.RUnlock()
	if !okU || !okV {
		return "", fmt.Errorf("%w: %s-%s", ErrNodeNotFound, u, v)
	}

	key := newEdgeKey(u, v, kind)

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if prev, ok := g.edges[key]; ok {
		return prev.ID, fmt.Errorf("%w: %s %s-%s", ErrEdgeExists, kind, key.a, key.b)
	}

	seq := g.nextEdgeID + 1
	g.nextEdgeID = seq
	e := &Edge{
		ID:     nextEdgeID(seq),
		From:   key.a,
		To:     key.b,
		Kind:   kind,
		Weight: weight,
		seq:    seq,
	}
	for _, opt := range opts {
		opt(e)
	}
	if kind == Transfer {
		e.Line = ""
	}

	g.edges[key] = e
	g.byID[e.ID] = e
	g.adjacency[key.a][key] = struct{}{}
	g.adjacency[key.b][key] = struct{}{}

	return e.ID, nil
}

// EdgeBetween returns the edge of the given kind joining u and v, if any.
// The returned *Edge must be treated as read-only.
func (g *Graph) EdgeBetween(u, v string, kind EdgeKind) (*Edge, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[newEdgeKey(u, v, kind)]

	return e, ok
}

// HasEdge reports whether u and v are joined by an edge of any of the given
// kinds. With no kinds, any edge counts.
func (g *Graph) HasEdge(u, v string, kinds ...EdgeKind) bool {
	if u == "" || v == "" {
		return false
	}
	if len(kinds) == 0 {
		kinds = []EdgeKind{LineSegment, Transfer, Shunt}
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for _, k := range kinds {
		if _, ok := g.edges[newEdgeKey(u, v, k)]; ok {
			return true
		}
	}

	return false
}

// GetEdge returns the edge with the given ID, or ErrEdgeNotFound.
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.byID[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// SetWeight overwrites the weight of an existing edge and marks it timed.
// It returns the previous weight and whether the edge had been timed before.
//
// Errors:
//   - ErrEdgeNotFound, ErrNegativeWeight, ErrWeightTooLarge.
func (g *Graph) SetWeight(edgeID string, weight int64) (prev int64, wasTimed bool, err error) {
	if err := checkWeight(weight); err != nil {
		return 0, false, fmt.Errorf("%w: %s weight=%d", err, edgeID, weight)
	}
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.byID[edgeID]
	if !ok {
		return 0, false, ErrEdgeNotFound
	}
	prev, wasTimed = e.Weight, e.Timed
	e.Weight = weight
	e.Timed = true

	return prev, wasTimed, nil
}

// checkWeight enforces 0 ≤ weight ≤ MaxWeight.
func checkWeight(weight int64) error {
	switch {
	case weight < 0:
		return ErrNegativeWeight
	case weight > MaxWeight:
		return ErrWeightTooLarge
	}

	return nil
}

// Edges returns all edges in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns total number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// sortEdges orders edges by insertion sequence.
func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].seq < es[j].seq })
}

// nextEdgeID renders sequence number n as "e<n>" without fmt.
// Callers hold muEdgeAdj for writing.
func nextEdgeID(n uint64) string {
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
