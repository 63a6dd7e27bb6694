// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Node table protected by muNode.
//   - Adjacency bootstrap under muEdgeAdj.
package core

import "sort"

// AddNode inserts a node if missing. Adding an existing ID is a no-op and
// leaves the first registration's attributes in place.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string, opts ...NodeOption) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.muNode.Lock()
	defer g.muNode.Unlock()
	if _, ok := g.nodes[id]; ok {
		return nil
	}
	n := &Node{ID: id}
	for _, opt := range opts {
		opt(n)
	}
	g.nodes[id] = n

	g.muEdgeAdj.Lock()
	if g.adjacency[id] == nil {
		g.adjacency[id] = make(map[edgeKey]struct{})
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasNode reports whether id is present.
func (g *Graph) HasNode(id string) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns the node with the given id.
// The returned *Node must be treated as read-only.
func (g *Graph) Node(id string) (*Node, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return n, nil
}

// Nodes returns all node IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	out := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.nodes)
}

// Degree returns the number of incident edges of each kind.
func (g *Graph) Degree(id string) (map[EdgeKind]int, error) {
	if !g.HasNode(id) {
		return nil, ErrNodeNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make(map[EdgeKind]int, 3)
	for k := range g.adjacency[id] {
		out[k.kind]++
	}

	return out, nil
}

// NodeLines returns the sorted set of line IDs carried by the LineSegment and
// Shunt edges incident to id. Transfers contribute nothing.
func (g *Graph) NodeLines(id string) ([]string, error) {
	if !g.HasNode(id) {
		return nil, ErrNodeNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	seen := make(map[string]struct{})
	for k := range g.adjacency[id] {
		if k.kind == Transfer {
			continue
		}
		if line := g.edges[k].Line; line != "" {
			seen[line] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for line := range seen {
		out = append(out, line)
	}
	sort.Strings(out)

	return out, nil
}
