// Package routing enumerates up to K cost-ranked, node-simple paths between
// two named stations of the network graph.
//
// A station name resolves to a set of alias nodes (platforms sharing the
// name). Route searches every (origin alias, destination alias) pair, one
// worker per pair through an errgroup, and merges the candidates:
//
//   - Each pair runs a best-first search over partial simple paths, ordered
//     by accumulated weight. Reaching the destination alias emits a candidate
//     and the search continues; it stops after K distinct local candidates.
//   - Extensions are pruned with admissible lower bounds: the Dijkstra
//     distance from the extension's end to the destination alias and, when
//     WithMaxHops is set, the BFS hop distance.
//   - Workers share the K-th best candidate weight seen so far; a pair whose
//     next partial path already weighs more stops early.
//   - WithMaxExpansions caps the partial paths expanded per pair, so dense
//     alias clusters cannot blow up the search. A query that found nothing
//     after hitting the cap reports NoPathError.Truncated.
//
// Results are sorted by total weight, then by pair (origin and destination
// aliases in sorted order), then by discovery order; identical node sequences
// are reported once. For a fixed graph and options the output is the same on
// every call.
//
// Example:
//
//	eng, _ := routing.NewEngine(g, reg, routing.WithMaxHops(60))
//	paths, err := eng.Route(ctx, "Sol", "Nuevos Ministerios", 3)
//	switch {
//	case errors.Is(err, routing.ErrUnknownStation):
//	case errors.Is(err, routing.ErrNoPathFound):
//	}
package routing
