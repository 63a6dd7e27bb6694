// Package bfs provides breadth-first search over the network core.Graph,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from one or more start nodes.
//     All starts sit at depth 0, so Depth[v] is the hop distance from v to the
//     nearest start. Seeded with a station's aliases this is the admissible
//     hop bound the routing engine uses when a query caps path length.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node → hops from the nearest start
//   - Parent: map from node → its predecessor in the BFS forest
//   - Filtering of individual edges via WithFilterEdge (e.g. by edge kind).
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	Neighbors are enqueued in edge insertion order, and starts in the order
//	given, so the visit sequence is reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(
//	    g, []string{"SOL_1", "SOL_2"},
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterEdge(func(e *core.Edge) bool { return e.Kind != core.Shunt }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrNoStart              if starts is empty.
//   - ErrStartNodeNotFound    if a start node does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if core.Neighbors fails for any node.
//   - The context error when ctx is cancelled.
package bfs
