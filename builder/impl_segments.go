// SPDX-License-Identifier: MIT
// Package: metroroute/builder
//
// impl_segments.go - line segments and travel-time merging.

package builder

import (
	"errors"

	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/records"
)

// AddLineSegments joins consecutive stops of every itinerary with a
// LineSegment edge carrying the earlier stop's line ID. Itineraries are
// processed independently and in the order given; records.GroupSegments
// produces them sorted.
//
// A stop whose node is not registered is skipped with WarnUnknownNode and
// breaks the chain: its neighbours are not joined to each other, since the
// data gives no evidence they are adjacent. Pairs already joined keep their
// first edge. Returns the number of new edges.
//
// Complexity: O(total stops).
func (b *Builder) AddLineSegments(its []records.Itinerary) int {
	added := 0
	for _, it := range its {
		for i := 0; i+1 < len(it.Stops); i++ {
			from, to := it.Stops[i], it.Stops[i+1]
			if !b.g.HasNode(from.NodeID) {
				// Reported when it is the "to" side, or here for the very first stop.
				if i == 0 {
					b.warnings.Add(WarnUnknownNode, it.ID+"/"+from.NodeID, "itinerary %s references unknown node", it.ID)
				}
				continue
			}
			if !b.g.HasNode(to.NodeID) {
				b.warnings.Add(WarnUnknownNode, it.ID+"/"+to.NodeID, "itinerary %s references unknown node", it.ID)
				continue
			}
			if from.NodeID == to.NodeID {
				b.warnings.Add(WarnSelfLoop, it.ID+"/"+from.NodeID, "itinerary %s repeats a stop", it.ID)
				continue
			}
			_, err := b.g.AddEdge(from.NodeID, to.NodeID, core.LineSegment, 0, core.WithLine(lineLabel(from.LineID)))
			switch {
			case err == nil:
				added++
			case errors.Is(err, core.ErrEdgeExists):
				// Both directions of a line share one edge.
			default:
				b.warnings.Add(WarnUnknownNode, it.ID, "segment rejected: %v", err)
			}
		}
	}
	b.cfg.logger.Debug("line segments added", "itineraries", len(its), "edges", added)

	return added
}

// MergeTravelTimes writes each observation's duration into the LineSegment
// joining its two nodes. Observations never create edges: one naming a pair
// without a LineSegment is discarded with WarnNoSegment. A malformed
// duration skips that observation only (WarnBadDuration). When an
// observation overwrites a different weight merged earlier, the later value
// wins and WarnWeightConflict is raised. Returns the number of edges updated.
func (b *Builder) MergeTravelTimes(obs []records.Observation) int {
	merged := 0
	for _, o := range obs {
		from, to := records.NormalizeCode(o.From), records.NormalizeCode(o.To)
		rec := o.String()

		seconds, err := records.ParseDuration(o.Duration)
		if err != nil {
			b.warnings.Add(WarnBadDuration, rec, "%v", err)
			continue
		}
		if !b.g.HasNode(from) || !b.g.HasNode(to) {
			b.warnings.Add(WarnUnknownNode, rec, "observation references unknown node")
			continue
		}
		e, ok := b.g.EdgeBetween(from, to, core.LineSegment)
		if !ok {
			b.warnings.Add(WarnNoSegment, rec, "no line segment between %s and %s", from, to)
			continue
		}
		prev, wasTimed, err := b.g.SetWeight(e.ID, seconds)
		if err != nil {
			b.warnings.Add(WarnBadDuration, rec, "%v", err)
			continue
		}
		if wasTimed && prev != seconds {
			b.warnings.Add(WarnWeightConflict, rec, "weight %d overwritten by %d", prev, seconds)
		}
		merged++
	}
	b.cfg.logger.Debug("travel times merged", "observations", len(obs), "merged", merged)

	return merged
}

// lineLabel prefixes bare numeric line numbers with "L" ("1" → "L1"), the
// form used across the network data; other IDs pass through.
func lineLabel(id string) string {
	if id == "" {
		return ""
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return id
		}
	}

	return "L" + id
}
