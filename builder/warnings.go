package builder

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// WarningKind classifies a skipped or adjusted record.
type WarningKind string

// Warning kinds raised while building.
const (
	WarnUnknownNode    WarningKind = "unknown_node"    // segment or observation names a node not in the registry
	WarnSelfLoop       WarningKind = "self_loop"       // consecutive itinerary rows repeat a node
	WarnBadDuration    WarningKind = "bad_duration"    // observation duration could not be parsed
	WarnNoSegment      WarningKind = "no_segment"      // observation for a pair without a LineSegment
	WarnWeightConflict WarningKind = "weight_conflict" // observation overwrote a different, already merged weight
	WarnUnknownStation WarningKind = "unknown_station" // manual transfer or shunt names an unknown station
	WarnNoShuntPairs   WarningKind = "no_shunt_pairs"  // shunt found no node pair without service edges
)

// maxExamples caps the examples kept per kind in a Summary.
const maxExamples = 3

// Warning is one non-fatal problem found while building.
type Warning struct {
	Kind   WarningKind
	Reason string
	Record string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s [%s]", w.Kind, w.Reason, w.Record)
}

// KindSummary aggregates the warnings of one kind.
type KindSummary struct {
	Kind     WarningKind
	Count    int
	Examples []string
}

// Warnings collects warnings in the order they were raised.
type Warnings struct {
	list   []Warning
	counts map[WarningKind]int
}

func newWarnings() *Warnings {
	return &Warnings{counts: make(map[WarningKind]int)}
}

// Add records a warning.
func (w *Warnings) Add(kind WarningKind, record, format string, args ...any) {
	w.list = append(w.list, Warning{Kind: kind, Reason: fmt.Sprintf(format, args...), Record: record})
	w.counts[kind]++
}

// List returns a copy of all warnings in order.
func (w *Warnings) List() []Warning {
	return append([]Warning(nil), w.list...)
}

// Len returns the number of warnings.
func (w *Warnings) Len() int { return len(w.list) }

// Count returns how many warnings of kind were raised.
func (w *Warnings) Count(kind WarningKind) int { return w.counts[kind] }

// Summary groups warnings by kind (sorted by kind), keeping the first few
// records of each as examples.
func (w *Warnings) Summary() []KindSummary {
	byKind := make(map[WarningKind]*KindSummary, len(w.counts))
	for _, wr := range w.list {
		s, ok := byKind[wr.Kind]
		if !ok {
			s = &KindSummary{Kind: wr.Kind}
			byKind[wr.Kind] = s
		}
		s.Count++
		if len(s.Examples) < maxExamples {
			s.Examples = append(s.Examples, wr.Record)
		}
	}
	out := make([]KindSummary, 0, len(byKind))
	for _, s := range byKind {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })

	return out
}

// LogAll writes one consolidated line per warning kind.
func (w *Warnings) LogAll(logger *slog.Logger) {
	for _, s := range w.Summary() {
		logger.Warn("build warning",
			"kind", string(s.Kind),
			"count", s.Count,
			"examples", strings.Join(s.Examples, ", "),
		)
	}
}
