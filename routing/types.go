// File: types.go
// Role: result types, sentinel errors and typed errors of the routing engine.

package routing

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/registry"
)

// Sentinel errors.
var (
	// ErrNoPathFound: both names resolved but no alias pair is connected.
	// Returned wrapped in *NoPathError.
	ErrNoPathFound = errors.New("routing: no path found")

	// ErrInvalidK: the requested number of paths is below 1.
	ErrInvalidK = errors.New("routing: k must be at least 1")

	// ErrNilGraph: NewEngine was given a nil graph.
	ErrNilGraph = errors.New("routing: graph is nil")

	// ErrNilRegistry: NewEngine was given a nil registry.
	ErrNilRegistry = errors.New("routing: registry is nil")

	// ErrUnknownStation is the registry's sentinel, re-exported so callers
	// of this package need only one import to classify errors.
	ErrUnknownStation = registry.ErrUnknownStation
)

// NoPathError reports a query whose names are valid but unconnected.
// Truncated is set when at least one alias pair hit the expansion cap, so
// the absence of a path is not proven.
type NoPathError struct {
	Origin      string
	Destination string
	Truncated   bool
}

func (e *NoPathError) Error() string {
	if e.Truncated {
		return fmt.Sprintf("routing: no path found from %q to %q (search truncated)", e.Origin, e.Destination)
	}

	return fmt.Sprintf("routing: no path found from %q to %q", e.Origin, e.Destination)
}

// Is makes errors.Is(err, ErrNoPathFound) hold.
func (e *NoPathError) Is(target error) bool { return target == ErrNoPathFound }

// Leg is one traversed edge of a path.
type Leg struct {
	From   string        `json:"from"`
	To     string        `json:"to"`
	Kind   core.EdgeKind `json:"kind"`
	Line   string        `json:"line,omitempty"`
	Weight int64         `json:"weight"`
}

// PathResult is one ranked path.
//
// Nodes holds no repeated node. Cumulative[i] is the weight accumulated on
// arrival at Nodes[i], so Cumulative[0] == 0 and the last entry equals Total.
// Incomplete is set when a LineSegment leg was never timed by an
// observation and therefore contributes 0 to Total.
type PathResult struct {
	Nodes      []string `json:"nodes"`
	Cumulative []int64  `json:"cumulative"`
	Total      int64    `json:"total"`
	Legs       []Leg    `json:"legs"`
	Incomplete bool     `json:"incomplete"`
}

// Transfers counts the Transfer legs of the path.
func (p PathResult) Transfers() int {
	n := 0
	for _, l := range p.Legs {
		if l.Kind == core.Transfer {
			n++
		}
	}

	return n
}

// Lines lists the lines ridden, in order, with consecutive repeats collapsed.
func (p PathResult) Lines() []string {
	var out []string
	for _, l := range p.Legs {
		if l.Line == "" {
			continue
		}
		if len(out) == 0 || out[len(out)-1] != l.Line {
			out = append(out, l.Line)
		}
	}

	return out
}
