package routing_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/metroroute/builder"
	"github.com/katalvlaran/metroroute/records"
	"github.com/katalvlaran/metroroute/registry"
	"github.com/katalvlaran/metroroute/routing"
)

// ExampleEngine_Route ranks the two ways from A to a two-platform station B.
func ExampleEngine_Route() {
	reg := registry.New()
	_ = reg.Register("A", "A1", orb.Point{})
	_ = reg.Register("B", "B1", orb.Point{})
	_ = reg.Register("B", "B2", orb.Point{})

	its := []records.Itinerary{
		{ID: "1", Stops: []records.Stop{{NodeID: "A1", LineID: "1"}, {NodeID: "B1", LineID: "1"}}},
		{ID: "2", Stops: []records.Stop{{NodeID: "A1", LineID: "2"}, {NodeID: "B2", LineID: "2"}}},
	}
	obs := []records.Observation{
		{From: "A1", To: "B1", Duration: "00:05:00"},
		{From: "A1", To: "B2", Duration: "00:01:40"},
	}
	g, _, err := builder.Build(reg, its, obs)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	eng, _ := routing.NewEngine(g, reg)
	paths, err := eng.Route(context.Background(), "a", "b", 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range paths {
		fmt.Println(p.Total, strings.Join(p.Nodes, " > "), p.Lines())
	}
	// Output:
	// 100 A1 > B2 [L2]
	// 300 A1 > B1 [L1]
	// 340 A1 > B2 > B1 [L2]
}
