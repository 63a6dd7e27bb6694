// Package dijkstra implements Dijkstra's shortest-path algorithm over the
// undirected, typed-edge network graph, seeded from one or more sources.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), O(E) worst-case heap entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - Edges rejected by EdgeFilter are skipped, as if absent.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Heap ties are broken by node ID so predecessor maps are reproducible.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/metroroute/core"
)

// Dijkstra computes, for every node of g, the shortest distance from the
// nearest of the configured sources. With several sources this is the
// distance to the source *set*, which routing uses as a lower bound towards
// all aliases of a station.
//
// Returns:
//
//   - dist: map from node ID to minimum distance (Unreachable if unreachable).
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For sources and unreachable v, prev[v] == "".
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. At least one source (ErrNoSources).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain every source (ErrNodeNotFound).
//  4. No edge in g can have negative weight (ErrNegativeWeight).
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if len(cfg.Sources) == 0 {
		return nil, nil, ErrNoSources
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	for _, s := range cfg.Sources {
		if !g.HasNode(s) {
			return nil, nil, fmt.Errorf("%w: %q", ErrNodeNotFound, s)
		}
	}

	// 3) Pre-scan all edges to detect negative weights.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s-%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 4) Prepare state.
	V := g.NodeCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, V),
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, V)
	}

	// 5) Run.
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// PathTo rebuilds the node sequence ending at target from a predecessor map
// returned with WithReturnPath. It returns nil when target was not reached.
func PathTo(dist map[string]int64, prev map[string]string, target string) []string {
	d, ok := dist[target]
	if !ok || d == Unreachable || prev == nil {
		return nil
	}
	var rev []string
	for v := target; v != ""; v = prev[v] {
		rev = append(rev, v)
		if len(rev) > len(dist) {
			return nil // corrupt map; never loops on valid input
		}
	}
	out := make([]string, len(rev))
	for i, v := range rev {
		out[len(rev)-1-i] = v
	}

	return out
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph       // The input graph; read-only within Dijkstra.
	options Options           // Configuration options.
	dist    map[string]int64  // Node ID → current best distance from the source set.
	prev    map[string]string // Node ID → predecessor on the shortest path.
	visited map[string]bool   // Tracks if a node's distance is finalized.
	pq      nodePQ            // Min-heap of *nodeItem for lazy priority queue.
}

// init sets up initial distances and pushes every source at distance 0.
func (r *runner) init() {
	for _, v := range r.g.Nodes() {
		r.dist[v] = Unreachable
		if r.prev != nil {
			r.prev[v] = ""
		}
	}
	heap.Init(&r.pq)
	for _, s := range r.options.Sources {
		if r.dist[s] == 0 {
			continue // duplicate source
		}
		r.dist[s] = 0
		heap.Push(&r.pq, &nodeItem{id: s, dist: 0})
	}
}

// process repeatedly extracts the closest unsettled node and relaxes its
// edges, until the heap is empty.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// Skip stale heap entries.
		if r.visited[u] || d > r.dist[u] {
			continue
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// neighbors returns the incident edges of u from the snapshot when one was
// supplied, else from the graph.
func (r *runner) neighbors(u string) ([]*core.Edge, error) {
	if r.options.Adjacency != nil {
		return r.options.Adjacency[u], nil
	}
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	return edges, nil
}

// relax examines each edge incident to u and attempts to improve distances
// to its neighbors. Assumes r.dist[u] is final.
func (r *runner) relax(u string) error {
	edges, err := r.neighbors(u)
	if err != nil {
		return err
	}

	for _, e := range edges {
		if r.options.EdgeFilter != nil && !r.options.EdgeFilter(e) {
			continue
		}
		w := e.Weight
		if w < 0 {
			return fmt.Errorf("%w: edge %s-%s weight=%d", ErrNegativeWeight, e.From, e.To, w)
		}

		v := e.Other(u)
		if w > Unreachable-1-r.dist[u] {
			continue // sum would overflow or reach the Unreachable sentinel
		}
		newDist := r.dist[u] + w
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem represents a node and its current distance from the source set.
type nodeItem struct {
	id   string // node ID
	dist int64  // distance from the source set
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
