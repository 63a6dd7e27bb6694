// Package httpapi is a thin JSON adapter over the routing engine.
//
//	GET /api/routes?from=Sol&to=Opera&k=3   ranked paths
//	    &avoid=shunt,transfer               optional excluded edge kinds
//	GET /api/stations                      all stations with their platforms
//	GET /api/stations/{name}               one station
//	GET /healthz                           graph size
//
// Unknown station names answer 404, unconnected stations 422, a bad k or
// avoid value 400
// and an expired query deadline 504. Every response carries X-Request-ID,
// echoed from the request when the client sent one.
package httpapi
