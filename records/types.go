// Package records defines the rows the network is built from: station
// records, itinerary segment records and travel-time observations, plus
// their validation and a YAML dataset decoder.
//
// Producing these rows from geographic or timetable sources is the job of an
// ingestion step outside this module; records only checks them.
package records

import (
	"errors"
	"fmt"
	"strings"

	"github.com/paulmach/orb"
)

// MaxDurationSeconds is the longest travel time a single observation may
// carry: one day.
const MaxDurationSeconds = 24 * 60 * 60

// Sentinel errors for record handling.
var (
	// ErrInvalidRecord indicates that a record failed field validation.
	ErrInvalidRecord = errors.New("records: invalid record")

	// ErrBadDuration indicates a duration string that is not HH:MM:SS, MM:SS or seconds.
	ErrBadDuration = errors.New("records: malformed duration")
)

// Station is one node of the network with its human-facing name.
type Station struct {
	NodeID string  `yaml:"node_id" json:"node_id" validate:"required"`
	Name   string  `yaml:"name" json:"name" validate:"required"`
	Lon    float64 `yaml:"lon" json:"lon" validate:"gte=-180,lte=180"`
	Lat    float64 `yaml:"lat" json:"lat" validate:"gte=-90,lte=90"`
}

// Position returns the station's location as an orb.Point (lon, lat).
func (s Station) Position() orb.Point { return orb.Point{s.Lon, s.Lat} }

// Segment places one node at a position of an itinerary.
type Segment struct {
	ItineraryID string `yaml:"itinerary_id" json:"itinerary_id"`
	NodeID      string `yaml:"node_id" json:"node_id"`
	Sequence    int    `yaml:"sequence" json:"sequence"`
	LineID      string `yaml:"line_id" json:"line_id"`
}

// Observation is one measured travel time between two adjacent nodes.
// Duration is kept in its source form and parsed by the builder, so a bad
// value only affects its own row.
type Observation struct {
	From     string `yaml:"from" json:"from"`
	To       string `yaml:"to" json:"to"`
	Duration string `yaml:"duration" json:"duration"`
}

// String renders the observation for warnings.
func (o Observation) String() string {
	return fmt.Sprintf("%s->%s (%s)", o.From, o.To, o.Duration)
}

// Stop is one entry of an ordered itinerary.
type Stop struct {
	NodeID   string
	LineID   string
	Sequence int
}

// Itinerary is the ordered stop list of one itinerary ID.
type Itinerary struct {
	ID    string
	Stops []Stop
}

// IngestError reports the first record that failed validation.
type IngestError struct {
	Kind   string // "station", "segment"
	Index  int
	Record any
	Err    error
}

func (e *IngestError) Error() string {
	return fmt.Sprintf("records: %s #%d %+v: %v", e.Kind, e.Index, e.Record, e.Err)
}

func (e *IngestError) Unwrap() error { return e.Err }

// NormalizeCode trims and upper-cases a node code, the form every package
// uses for node identity.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
