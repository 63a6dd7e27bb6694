// Package core defines the network Graph: a flat node table, a typed edge
// table keyed by unordered node pair plus kind, and incrementally maintained
// adjacency.
//
// All core APIs use separate sync.RWMutex locks internally (muNode for nodes,
// muEdgeAdj for edges and adjacency), so a fully built Graph can be read from
// many routing goroutines at once.
//
// This file declares Node, Edge, EdgeKind, Graph, GraphOption, NodeOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyNodeID     - node ID is the empty string.
//	ErrNodeNotFound    - requested node does not exist.
//	ErrEdgeNotFound    - requested edge does not exist.
//	ErrEdgeExists      - an edge of the same kind already joins the pair.
//	ErrNegativeWeight  - a negative weight was supplied.
//	ErrWeightTooLarge  - a weight above MaxWeight was supplied.
//	ErrLoopNotAllowed  - both endpoints are the same node.
//	ErrBadKind         - unknown EdgeKind value.
package core

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/paulmach/orb"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEdgeExists indicates that the unordered pair already has an edge of that kind.
	ErrEdgeExists = errors.New("core: edge of this kind already exists")

	// ErrNegativeWeight indicates a weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrLoopNotAllowed indicates a self-loop; stations never connect to themselves.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadKind indicates an EdgeKind outside the declared set.
	ErrBadKind = errors.New("core: unknown edge kind")

	// ErrWeightTooLarge indicates a weight above MaxWeight.
	ErrWeightTooLarge = errors.New("core: edge weight too large")
)

// MaxWeight is the largest weight an edge may carry. Sums along any path of
// up to 65536 edges stay below math.MaxInt64.
const MaxWeight = math.MaxInt64 >> 16

// EdgeKind tags every Edge with the kind of connection it models.
type EdgeKind uint8

const (
	// LineSegment is a scheduled track connection between adjacent stops on one line.
	LineSegment EdgeKind = iota + 1

	// Transfer is a walking connection between platforms, weighted by a fixed penalty.
	Transfer

	// Shunt is a non-timetabled connector carrying a line ID and a constant weight.
	Shunt
)

// String returns the lower-case name used in logs and JSON output.
func (k EdgeKind) String() string {
	switch k {
	case LineSegment:
		return "line"
	case Transfer:
		return "transfer"
	case Shunt:
		return "shunt"
	default:
		return "unknown"
	}
}

// Valid reports whether k is one of the declared kinds.
func (k EdgeKind) Valid() bool { return k >= LineSegment && k <= Shunt }

// ParseEdgeKind is the inverse of String. Surrounding space and case are
// ignored; anything else yields ErrBadKind.
func ParseEdgeKind(s string) (EdgeKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "line":
		return LineSegment, nil
	case "transfer":
		return Transfer, nil
	case "shunt":
		return Shunt, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadKind, s)
	}
}

// MarshalText encodes k by name, so JSON output reads "line", not 1.
func (k EdgeKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Node is one platform/stop instance.
//
// Station is the normalized key of the owning station in the registry; it is
// a back-reference only. Position is presentation data and is never read by
// routing.
type Node struct {
	// ID is the unique node code.
	ID string

	// Station is the normalized name of the owning station.
	Station string

	// Position is the node's planar location (x = lon, y = lat).
	Position orb.Point
}

// Edge is an undirected connection between From and To.
//
// From is always the lexicographically smaller endpoint so that the same pair
// prints identically regardless of insertion order.
type Edge struct {
	// ID records insertion order ("e1", "e2", ...).
	ID string

	// From and To are the endpoint node IDs, From < To.
	From string
	To   string

	// Kind tags the connection.
	Kind EdgeKind

	// Line is the line identifier; empty for Transfer edges.
	Line string

	// Weight is the traversal cost in seconds.
	Weight int64

	// Timed is set once a travel-time observation has been merged into a LineSegment.
	Timed bool

	seq uint64 // numeric form of ID, used for ordering
}

// Other returns the endpoint opposite to id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// edgeKey is the identity of an edge: unordered pair plus kind.
type edgeKey struct {
	a, b string // a < b
	kind EdgeKind
}

// newEdgeKey orders the endpoints so that (u,v) and (v,u) map to the same key.
func newEdgeKey(u, v string, kind EdgeKind) edgeKey {
	if v < u {
		u, v = v, u
	}

	return edgeKey{a: u, b: v, kind: kind}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the node and edge tables.
func WithCapacity(nodes, edges int) GraphOption {
	return func(g *Graph) {
		if nodes > 0 {
			g.nodes = make(map[string]*Node, nodes)
			g.adjacency = make(map[string]map[edgeKey]struct{}, nodes)
		}
		if edges > 0 {
			g.edges = make(map[edgeKey]*Edge, edges)
			g.byID = make(map[string]*Edge, edges)
		}
	}
}

// NodeOption configures a Node when it is added.
type NodeOption func(*Node)

// WithStation sets the owning station key.
func WithStation(key string) NodeOption {
	return func(n *Node) { n.Station = key }
}

// WithPosition sets the node's planar location.
func WithPosition(p orb.Point) NodeOption {
	return func(n *Node) { n.Position = p }
}

// EdgeOption configures an Edge when it is added.
type EdgeOption func(*Edge)

// WithLine sets the line identifier of a LineSegment or Shunt edge.
func WithLine(line string) EdgeOption {
	return func(e *Edge) { e.Line = line }
}

// WithTimed marks the edge weight as coming from an observation.
func WithTimed() EdgeOption {
	return func(e *Edge) { e.Timed = true }
}

// Graph owns all Nodes and Edges of the network.
//
// muNode protects nodes; muEdgeAdj protects edges, byID and adjacency.
// Lock order is always muNode -> muEdgeAdj.
type Graph struct {
	muNode    sync.RWMutex // guards nodes
	muEdgeAdj sync.RWMutex // guards edges, byID and adjacency

	nextEdgeID uint64            // edge ID generator
	nodes      map[string]*Node  // node ID → Node
	edges      map[edgeKey]*Edge // (pair, kind) → Edge
	byID       map[string]*Edge  // Edge.ID → Edge

	// adjacency[nodeID] is the set of incident edge keys.
	adjacency map[string]map[edgeKey]struct{}
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:     make(map[string]*Node),
		edges:     make(map[edgeKey]*Edge),
		byID:      make(map[string]*Edge),
		adjacency: make(map[string]map[edgeKey]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a read-only snapshot of graph sizes, split by edge kind.
type GraphStats struct {
	NodeCount     int
	EdgeCount     int
	LineSegments  int
	Transfers     int
	Shunts        int
	UntimedLines  int // LineSegment edges that never received an observation
	IsolatedNodes int // nodes with no incident edge
}
