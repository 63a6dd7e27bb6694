// File: engine.go
// Role: query entry points, alias-pair fan-out and result merging.
// Determinism:
//   - Alias pairs are enumerated in sorted order and merged by
//     (total, pair index, local discovery order).
//   - The bound shared across workers only ends searches early; a pair that
//     stops on it could not have contributed to the final top K.
// Concurrency:
//   - The Engine is read-only after NewEngine; Route may be called from
//     many goroutines.

package routing

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/metroroute/bfs"
	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/dijkstra"
	"github.com/katalvlaran/metroroute/registry"
)

// Engine answers multi-path queries over one built graph.
type Engine struct {
	g   *core.Graph
	reg *registry.Registry
	adj map[string][]*core.Edge
	cfg engineConfig
}

// NewEngine snapshots the adjacency of g. The graph must not be modified
// afterwards.
func NewEngine(g *core.Graph, reg *registry.Registry, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if reg == nil {
		return nil, ErrNilRegistry
	}

	return &Engine{g: g, reg: reg, adj: g.AdjacencyList(), cfg: newEngineConfig(opts...)}, nil
}

// With returns an Engine sharing e's graph snapshot with opts applied on
// top of e's configuration. It is cheap enough to call per query.
func (e *Engine) With(opts ...Option) *Engine {
	cp := *e
	for _, opt := range opts {
		opt(&cp.cfg)
	}

	return &cp
}

// Route builds a throwaway Engine and runs one query. Callers issuing many
// queries over the same graph should keep an Engine instead.
func Route(ctx context.Context, g *core.Graph, reg *registry.Registry, origin, dest string, k int, opts ...Option) ([]PathResult, error) {
	e, err := NewEngine(g, reg, opts...)
	if err != nil {
		return nil, err
	}

	return e.Route(ctx, origin, dest, k)
}

// aliasPair is one (origin alias, destination alias) search.
type aliasPair struct {
	idx      int
	from, to string
}

// Route returns up to k distinct simple paths from any alias of origin to any
// alias of dest, in non-decreasing order of total weight.
//
// Errors:
//   - ErrInvalidK if k < 1.
//   - *registry.StationError (errors.Is ErrUnknownStation) for an unknown name.
//   - *NoPathError (errors.Is ErrNoPathFound) when no alias pair is connected.
//   - the context's error when ctx is done before the search completes.
func (e *Engine) Route(ctx context.Context, origin, dest string, k int) ([]PathResult, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}
	origins, err := e.aliases(origin)
	if err != nil {
		return nil, err
	}
	dests, err := e.aliases(dest)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	started := time.Now()

	pairs := make([]aliasPair, 0, len(origins)*len(dests))
	for _, a := range origins {
		for _, b := range dests {
			pairs = append(pairs, aliasPair{idx: len(pairs), from: a, to: b})
		}
	}

	bounds, err := e.lowerBounds(ctx, dests)
	if err != nil {
		return nil, err
	}

	shared := newKthBound(k)
	found := make([][]candidate, len(pairs))
	stats := make([]pairStats, len(pairs))

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(e.cfg.parallelism)
	for _, p := range pairs {
		p := p
		grp.Go(func() error {
			s := &searcher{
				ctx:   gctx,
				adj:   e.adj,
				cfg:   &e.cfg,
				pair:  p,
				k:     k,
				lb:    bounds[p.to],
				bound: shared,
			}
			cands, st, err := s.run()
			found[p.idx], stats[p.idx] = cands, st

			return err
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, fmt.Errorf("routing: %s -> %s: %w", origin, dest, err)
	}

	results := merge(found, k)
	truncated, expansions := false, 0
	for _, st := range stats {
		truncated = truncated || st.truncated
		expansions += st.expansions
	}
	e.cfg.logger.Debug("route",
		"origin", origin,
		"destination", dest,
		"k", k,
		"pairs", len(pairs),
		"expansions", expansions,
		"truncated", truncated,
		"results", len(results),
		"elapsed", time.Since(started),
	)
	if truncated {
		e.cfg.logger.Warn("route search truncated", "origin", origin, "destination", dest, "max_expansions", e.cfg.maxExpansions)
	}
	if len(results) == 0 {
		return nil, &NoPathError{Origin: origin, Destination: dest, Truncated: truncated}
	}

	return results, nil
}

// aliases resolves name to the alias nodes present in the graph.
func (e *Engine) aliases(name string) ([]string, error) {
	ids, err := e.reg.Resolve(name)
	if err != nil {
		return nil, err
	}
	out := ids[:0]
	for _, id := range ids {
		if e.g.HasNode(id) {
			out = append(out, id)
		}
	}

	return out, nil
}

// lowerBounds holds, per destination alias, admissible distances towards it.
type lowerBounds struct {
	weight map[string]int64 // shortest weight to the alias
	hops   map[string]int   // fewest edges to the alias; nil when hops are not capped
}

// lowerBounds runs one Dijkstra (and, with a hop cap, one BFS) per
// destination alias over the adjacency snapshot, restricted to usable edges.
func (e *Engine) lowerBounds(ctx context.Context, dests []string) (map[string]lowerBounds, error) {
	dopts := []dijkstra.Option{dijkstra.WithAdjacency(e.adj)}
	bopts := []bfs.Option{
		bfs.WithContext(ctx),
		bfs.WithMaxDepth(e.cfg.maxHops),
		bfs.WithAdjacency(e.adj),
	}
	if e.cfg.avoids() {
		dopts = append(dopts, dijkstra.WithEdgeFilter(e.cfg.usable))
		bopts = append(bopts, bfs.WithFilterEdge(e.cfg.usable))
	}

	out := make(map[string]lowerBounds, len(dests))
	for _, b := range dests {
		dist, _, err := dijkstra.Dijkstra(e.g, append(dopts, dijkstra.Source(b))...)
		if err != nil {
			return nil, fmt.Errorf("routing: lower bounds to %s: %w", b, err)
		}
		lb := lowerBounds{weight: dist}
		if e.cfg.maxHops > 0 {
			res, err := bfs.BFS(e.g, []string{b}, bopts...)
			if err != nil {
				return nil, fmt.Errorf("routing: hop bounds to %s: %w", b, err)
			}
			lb.hops = res.Depth
		}
		out[b] = lb
	}

	return out, nil
}

// merge orders all candidates, drops repeated node sequences and keeps k.
func merge(found [][]candidate, k int) []PathResult {
	var all []candidate
	for _, cs := range found {
		all = append(all, cs...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if a.total != b.total {
			return a.total < b.total
		}
		if a.pair != b.pair {
			return a.pair < b.pair
		}
		return a.order < b.order
	})

	seen := make(map[string]struct{}, len(all))
	out := make([]PathResult, 0, k)
	for _, c := range all {
		if len(out) == k {
			break
		}
		key := strings.Join(c.result.Nodes, "\x00")
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c.result)
	}

	return out
}
