// Package core provides the in-memory rail network Graph used by the builder
// and the routing engine.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Nodes are platform/stop instances identified by a stable code, stored in
//     a flat table (no pointers between nodes, so loops in the network never
//     become ownership cycles).
//   - Edges are undirected and typed: LineSegment, Transfer or Shunt.
//   - Edge identity is the unordered node pair plus kind; at most one edge of
//     each kind joins a pair, so replaying a build never duplicates edges.
//   - Edge IDs ("e1", "e2", …) record insertion order; every enumeration
//     (Edges, Neighbors, AdjacencyList) follows it, which keeps routing output
//     deterministic.
//   - Separate sync.RWMutex for nodes (muNode) and edges+adjacency (muEdgeAdj).
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id string, opts ...NodeOption) error          // O(1)
//	HasNode(id string) bool                               // O(1)
//	Node(id string) (*Node, error)                        // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v string, kind EdgeKind, w int64, opts ...EdgeOption) (string, error) // O(1)
//	EdgeBetween(u, v string, kind EdgeKind) (*Edge, bool) // O(1)
//	HasEdge(u, v string, kinds ...EdgeKind) bool          // O(1)
//	SetWeight(edgeID string, w int64) (int64, bool, error)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)                 // O(d·log d)
//	NeighborIDs(id string) ([]string, error)              // O(d·log d)
//	AdjacencyList() map[string][]*Edge                    // O(V+E·log E)
//	NodeLines(id string) ([]string, error)                // derived line set
//	Stats() *GraphStats                                   // O(V+E)
//
// Weights are seconds. A LineSegment that never received a travel-time
// observation keeps weight 0 and Timed == false.
package core
