// Package metroroute answers "what are the K fastest ways from station A to
// station B" over a rail network built from station, itinerary and
// travel-time records.
//
// 🚇 What is inside?
//
//	records/  - station, segment and observation rows, YAML dataset decoding
//	registry/ - station names ↔ aliased platform nodes
//	core/     - thread-safe Graph with typed edges (line, transfer, shunt)
//	builder/  - canonical graph assembly with a warnings ledger
//	dijkstra/ - multi-source shortest distances (routing lower bounds)
//	bfs/      - multi-start hop counts (hop-cap lower bounds)
//	routing/  - K-best simple paths across all alias pairs, in parallel
//	config/   - YAML + env configuration with validation
//	httpapi/  - JSON API over gorilla/mux
//	cmd/metroroute - CLI, interactive prompt and HTTP server
//
// Quick example (station B has two platforms, each on its own line):
//
//	     ┌──L1 300── B1
//	  A1 ┤            ┆  ┆ = transfer (240)
//	     └──L2 100── B2
//
// Route(ctx, "A", "B", 3) returns A1>B2 (100), A1>B1 (300), A1>B2>B1 (340).
//
// The bundled examples/ directory holds a central Madrid excerpt:
//
//	go run ./examples
//	go run ./cmd/metroroute -config examples/config.yml -from Noviciado -to Sol
package metroroute
