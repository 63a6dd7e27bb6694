// Package dijkstra defines core types and configuration options
// for the multi-source shortest-distance search over core.Graph.
//
// Options:
//
//	– Sources:          IDs of the starting nodes (at least one, all present).
//	– ReturnPath:       if true, return the predecessor map for path reconstruction.
//	– EdgeFilter:       optional predicate; edges for which it returns false are skipped.
//	– Adjacency:        optional pre-built core.Graph.AdjacencyList snapshot.
//
// Errors (sentinel):
//
//	– ErrNoSources       if no source ID was provided.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrNodeNotFound    if a source node does not exist in the graph.
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/metroroute/core"
)

// Unreachable is the distance reported for nodes no source can reach.
const Unreachable = int64(math.MaxInt64)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSources indicates that no source node ID was provided.
	ErrNoSources = errors.New("dijkstra: no source node given")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates that a source node does not exist in the graph.
	ErrNodeNotFound = errors.New("dijkstra: source node not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Sources    – starting node IDs; every one starts at distance 0.
// ReturnPath – if true, return the predecessor map; otherwise prev map is nil.
type Options struct {
	Sources    []string                // Starting node IDs
	ReturnPath bool                    // Whether to return the predecessor map
	EdgeFilter func(*core.Edge) bool   // Nil means every edge is usable
	Adjacency  map[string][]*core.Edge // Nil means read neighbors from the graph
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source appends one starting node. May be repeated.
func Source(id string) Option {
	return func(o *Options) {
		o.Sources = append(o.Sources, id)
	}
}

// Sources appends several starting nodes; all of them start at distance 0.
func Sources(ids ...string) Option {
	return func(o *Options) {
		o.Sources = append(o.Sources, ids...)
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithEdgeFilter restricts the search to edges for which keep returns true.
func WithEdgeFilter(keep func(*core.Edge) bool) Option {
	return func(o *Options) {
		o.EdgeFilter = keep
	}
}

// WithAdjacency makes the search read neighbors from a snapshot produced by
// core.Graph.AdjacencyList instead of locking the graph per node. Callers
// running many searches over one graph build the snapshot once.
func WithAdjacency(adj map[string][]*core.Edge) Option {
	return func(o *Options) {
		o.Adjacency = adj
	}
}

// DefaultOptions returns an Options struct initialized with defaults for the
// given sources.
//
// Defaults:
//   - ReturnPath: false (predecessor map not returned).
//   - EdgeFilter: nil (every edge usable).
func DefaultOptions(sources ...string) Options {
	return Options{
		Sources:    sources,
		ReturnPath: false,
	}
}
