// Package builder assembles the network core.Graph from a station registry,
// itinerary segments and travel-time observations.
//
// Construction is deterministic and sequential. The canonical order used by
// Build is:
//
//  1. AddLineSegments   – consecutive stops of each itinerary become
//     LineSegment edges (weight 0 until timed).
//  2. MergeTravelTimes  – observed durations overwrite LineSegment weights;
//     observations never create topology.
//  3. AddTransfers      – every alias pair of a multi-node station gets a
//     Transfer edge weighted by the transfer penalty, unless a
//     LineSegment already joins it.
//  4. AddManualTransfer – the same across two differently named stations.
//  5. AddShunt          – Shunt edges between alias nodes that have no
//     LineSegment/Shunt edges of their own.
//
// Every step is idempotent with respect to the final graph: edge identity is
// the unordered node pair plus kind, so replaying a step adds nothing.
//
// Problems with individual records (unknown nodes, unparsable durations,
// observations for pairs that are not adjacent) are collected as Warnings
// and returned alongside the graph; they never abort a build.
//
// Options:
//
//	WithTransferPenalty(seconds)  default 240
//	WithShuntWeight(seconds)      default 120
//	WithShuntLine(id)             default "R"
//	WithManualTransfer(a, b)      applied by Build
//	WithShunt(a, b)               applied by Build
//	WithLogger(*slog.Logger)      default discard
package builder
