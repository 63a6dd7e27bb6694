// Package registry maps human station names to the node identifiers that
// share them, and node identifiers back to their station.
//
// Names are compared after trimming surrounding whitespace and case folding;
// the first display form seen for a station is kept for output. Lookups are
// exact on the normalized key: the registry never guesses at misspellings.
//
// A Registry is append-only while it is being loaded and read-only afterwards,
// so concurrent lookups need no locking.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/metroroute/records"
)

// Sentinel errors returned by the registry.
var (
	// ErrUnknownStation indicates a name that matches no station after normalization.
	ErrUnknownStation = errors.New("registry: unknown station")

	// ErrNodeConflict indicates a node ID registered under two different stations.
	ErrNodeConflict = errors.New("registry: node already belongs to another station")

	// ErrEmptyName indicates a blank station name or node ID.
	ErrEmptyName = errors.New("registry: empty station name or node ID")
)

// StationError carries the name that failed to resolve.
type StationError struct {
	Name string
}

func (e *StationError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnknownStation, e.Name)
}

// Is makes errors.Is(err, ErrUnknownStation) hold for *StationError.
func (e *StationError) Is(target error) bool { return target == ErrUnknownStation }

// Station is a named place with one or more aliased nodes.
type Station struct {
	// Key is the normalized name used for lookup.
	Key string

	// Name is the first display form registered.
	Name string

	// Nodes lists the aliased node IDs in registration order.
	Nodes []string
}

// nodeEntry is the per-node half of the registry.
type nodeEntry struct {
	station  *Station
	position orb.Point
}

// Registry is the station/alias table.
type Registry struct {
	stations map[string]*Station
	nodes    map[string]nodeEntry
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		stations: make(map[string]*Station),
		nodes:    make(map[string]nodeEntry),
	}
}

// Normalize returns the lookup key for a station name.
func Normalize(name string) string {
	return strings.ToUpper(strings.Join(strings.Fields(name), " "))
}

// Register adds nodeID to the station called name, creating the station when
// absent. Registering the same node under the same station again is a no-op.
func (r *Registry) Register(name, nodeID string, pos orb.Point) error {
	key := Normalize(name)
	nodeID = records.NormalizeCode(nodeID)
	if key == "" || nodeID == "" {
		return ErrEmptyName
	}

	if prev, ok := r.nodes[nodeID]; ok {
		if prev.station.Key == key {
			return nil
		}
		return fmt.Errorf("%w: %s in %q and %q", ErrNodeConflict, nodeID, prev.station.Name, strings.TrimSpace(name))
	}

	st, ok := r.stations[key]
	if !ok {
		st = &Station{Key: key, Name: strings.TrimSpace(name)}
		r.stations[key] = st
	}
	st.Nodes = append(st.Nodes, nodeID)
	r.nodes[nodeID] = nodeEntry{station: st, position: pos}

	return nil
}

// Resolve returns the alias set of the named station, sorted ascending.
// It fails with a *StationError (errors.Is ErrUnknownStation) when nothing
// matches.
func (r *Registry) Resolve(name string) ([]string, error) {
	st, ok := r.stations[Normalize(name)]
	if !ok {
		return nil, &StationError{Name: name}
	}
	out := append([]string(nil), st.Nodes...)
	sort.Strings(out)

	return out, nil
}

// Station returns the station called name.
func (r *Registry) Station(name string) (*Station, bool) {
	st, ok := r.stations[Normalize(name)]

	return st, ok
}

// StationOf returns the station owning nodeID.
func (r *Registry) StationOf(nodeID string) (*Station, bool) {
	e, ok := r.nodes[records.NormalizeCode(nodeID)]
	if !ok {
		return nil, false
	}

	return e.station, true
}

// Position returns the stored location of nodeID.
func (r *Registry) Position(nodeID string) (orb.Point, bool) {
	e, ok := r.nodes[records.NormalizeCode(nodeID)]

	return e.position, ok
}

// HasNode reports whether nodeID has been registered.
func (r *Registry) HasNode(nodeID string) bool {
	_, ok := r.nodes[records.NormalizeCode(nodeID)]

	return ok
}

// Stations returns every station sorted by key.
func (r *Registry) Stations() []*Station {
	out := make([]*Station, 0, len(r.stations))
	for _, st := range r.stations {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })

	return out
}

// Nodes returns every registered node ID sorted ascending.
func (r *Registry) Nodes() []string {
	out := make([]string, 0, len(r.nodes))
	for id := range r.nodes {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Len returns the number of stations.
func (r *Registry) Len() int { return len(r.stations) }

// BuildRegistry validates station records and registers each of them.
// The first invalid record aborts the load with a *records.IngestError.
func BuildRegistry(stations []records.Station) (*Registry, error) {
	if err := records.ValidateStations(stations); err != nil {
		return nil, err
	}
	r := New()
	for i, s := range stations {
		if err := r.Register(s.Name, s.NodeID, s.Position()); err != nil {
			return nil, &records.IngestError{Kind: "station", Index: i, Record: s, Err: err}
		}
	}

	return r, nil
}
