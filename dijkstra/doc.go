// Package dijkstra provides Dijkstra's shortest-path algorithm over the
// network core.Graph, with non-negative integer weights in seconds.
//
// Overview:
//
//   - Every edge is undirected; all three kinds (line, transfer, shunt) are
//     traversable unless an EdgeFilter says otherwise.
//   - The search may be seeded with several sources at distance 0. Seeding
//     with every alias node of a station yields the distance from each node
//     to the nearest alias, which the routing engine uses as an admissible
//     lower bound when pruning its multi-path search.
//   - With WithReturnPath the predecessor map rebuilds one shortest path per
//     node (PathTo). Tests use it as the single-path reference result.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// API reference:
//
//	func Dijkstra(
//	    g *core.Graph,
//	    opts ...Option,
//	) (dist map[string]int64, prev map[string]string, err error)
//
//	  - opts:
//	      • Source(id) / Sources(ids...): required, the starting nodes.
//	      • WithReturnPath():            return a predecessor map; otherwise prev == nil.
//	      • WithEdgeFilter(func):        skip edges the predicate rejects
//	                                     (routing's avoided edge kinds).
//	      • WithAdjacency(map):          read neighbors from a pre-built snapshot.
//	  - dist:    dist[v] = minimal distance from the source set, or Unreachable.
//	  - prev:    prev[v] = predecessor of v, "" for sources and unreachable nodes.
//
// Thread safety:
//
//   - Dijkstra only reads g; concurrent calls on a built graph are safe.
package dijkstra
