package records

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Dataset is the on-disk bundle read by the command line tool.
type Dataset struct {
	Stations    []Station     `yaml:"stations"`
	Segments    []Segment     `yaml:"segments"`
	TravelTimes []Observation `yaml:"travel_times"`
}

// Decode reads a YAML dataset and validates its station records.
// Segments and observations are passed through untouched: the builder
// reports their problems as warnings instead of failing the whole load.
func Decode(r io.Reader) (*Dataset, error) {
	var ds Dataset
	if err := yaml.NewDecoder(r).Decode(&ds); err != nil && err != io.EOF {
		return nil, fmt.Errorf("records: decode dataset: %w", err)
	}
	if err := ValidateStations(ds.Stations); err != nil {
		return nil, err
	}

	return &ds, nil
}

// ValidateStations checks every station record and returns an *IngestError
// for the first invalid one.
func ValidateStations(stations []Station) error {
	for i, s := range stations {
		if err := validate.Struct(s); err != nil {
			return &IngestError{Kind: "station", Index: i, Record: s, Err: fmt.Errorf("%w: %v", ErrInvalidRecord, err)}
		}
		if strings.TrimSpace(s.NodeID) == "" || strings.TrimSpace(s.Name) == "" {
			return &IngestError{Kind: "station", Index: i, Record: s, Err: fmt.Errorf("%w: blank node_id or name", ErrInvalidRecord)}
		}
	}

	return nil
}

// GroupSegments groups segment rows by itinerary ID and orders each group by
// sequence number. Rows sharing a sequence number keep their input order.
// Itineraries are returned sorted by ID.
func GroupSegments(segments []Segment) []Itinerary {
	byID := make(map[string][]Stop)
	for _, s := range segments {
		id := strings.TrimSpace(s.ItineraryID)
		byID[id] = append(byID[id], Stop{
			NodeID:   NormalizeCode(s.NodeID),
			LineID:   strings.TrimSpace(s.LineID),
			Sequence: s.Sequence,
		})
	}

	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]Itinerary, 0, len(ids))
	for _, id := range ids {
		stops := byID[id]
		sort.SliceStable(stops, func(i, j int) bool { return stops[i].Sequence < stops[j].Sequence })
		out = append(out, Itinerary{ID: id, Stops: stops})
	}

	return out
}

// ParseDuration converts "HH:MM:SS", "MM:SS" or a plain integer number of
// seconds into seconds. Negative values, out-of-range minute or second
// fields and totals above MaxDurationSeconds are rejected with ErrBadDuration.
func ParseDuration(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrBadDuration)
	}
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrBadDuration, s)
	}

	var total int64
	for i, p := range parts {
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: %q", ErrBadDuration, s)
		}
		// Every field but the leading one is a base-60 digit.
		if i > 0 && n >= 60 {
			return 0, fmt.Errorf("%w: %q", ErrBadDuration, s)
		}
		// total and n stay ≤ MaxDurationSeconds, so total*60+n cannot overflow.
		if n > MaxDurationSeconds {
			return 0, fmt.Errorf("%w: %q exceeds %d s", ErrBadDuration, s, MaxDurationSeconds)
		}
		total = total*60 + n
		if total > MaxDurationSeconds {
			return 0, fmt.Errorf("%w: %q exceeds %d s", ErrBadDuration, s, MaxDurationSeconds)
		}
	}

	return total, nil
}
