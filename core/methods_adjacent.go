// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, AdjacencyList).
// Determinism:
//   - Neighbors() sorts by insertion order of the edges.
//   - NeighborIDs() returns unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muNode and muEdgeAdj read locks, in that order.

package core

import "sort"

// Neighbors returns all edges incident to id, in edge insertion order.
// Parallel edges of different kinds to the same neighbor are all returned.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//   - ErrNodeNotFound: if the node does not exist.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]*Edge, 0, len(g.adjacency[id]))
	for k := range g.adjacency[id] {
		out = append(out, g.edges[k])
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the unique set of node IDs adjacent to id, sorted ascending.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		nb := e.Other(id)
		if _, ok := seen[nb]; ok {
			continue
		}
		seen[nb] = struct{}{}
		out = append(out, nb)
	}
	sort.Strings(out)

	return out, nil
}

// AdjacencyList returns a snapshot node ID → incident edges (insertion
// order). The map is built once, so hot loops such as routing can avoid the
// per-call locking and sorting of Neighbors. Slices are independent copies;
// the *Edge values are shared and read-only.
//
// Complexity: O(V + E log E).
func (g *Graph) AdjacencyList() map[string][]*Edge {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make(map[string][]*Edge, len(g.nodes))
	for id := range g.nodes {
		list := make([]*Edge, 0, len(g.adjacency[id]))
		for k := range g.adjacency[id] {
			list = append(list, g.edges[k])
		}
		sortEdges(list)
		out[id] = list
	}

	return out
}
