// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
package dijkstra_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/dijkstra"
)

// ExampleDijkstra shows a shortest path across a transfer.
//
//	L1:  SOL_1 ──90── OPERA_1
//	       │240
//	L2:  SOL_2 ──70── GRAN_VIA
func ExampleDijkstra() {
	g := core.NewGraph()
	for _, id := range []string{"SOL_1", "SOL_2", "OPERA_1", "GRAN_VIA"} {
		_ = g.AddNode(id)
	}
	_, _ = g.AddEdge("SOL_1", "OPERA_1", core.LineSegment, 90, core.WithLine("L1"))
	_, _ = g.AddEdge("SOL_2", "GRAN_VIA", core.LineSegment, 70, core.WithLine("L2"))
	_, _ = g.AddEdge("SOL_1", "SOL_2", core.Transfer, 240)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("OPERA_1"), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dist["GRAN_VIA"], strings.Join(dijkstra.PathTo(dist, prev, "GRAN_VIA"), " > "))
	// Output: 400 OPERA_1 > SOL_1 > SOL_2 > GRAN_VIA
}

// ExampleSources seeds the search with both aliases of a station, giving the
// distance from every node to the nearest of them.
func ExampleSources() {
	g := core.NewGraph()
	for _, id := range []string{"A1", "A2", "B", "C"} {
		_ = g.AddNode(id)
	}
	_, _ = g.AddEdge("A1", "B", core.LineSegment, 50)
	_, _ = g.AddEdge("B", "C", core.LineSegment, 50)
	_, _ = g.AddEdge("A2", "C", core.LineSegment, 30)

	dist, _, _ := dijkstra.Dijkstra(g, dijkstra.Sources("A1", "A2"))
	fmt.Printf("B=%d C=%d\n", dist["B"], dist["C"])
	// Output: B=50 C=30
}
