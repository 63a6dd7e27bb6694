package routing_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/metroroute/routing"
)

// gridNet builds an n×n grid of two-platform stations: rows run on one line,
// columns on another, and every station has a transfer between its platforms.
func gridNet(n int) ([]station, []hop) {
	var sts []station
	var hops []hop
	name := func(r, c int) string { return fmt.Sprintf("S%02d%02d", r, c) }
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			id := name(r, c)
			sts = append(sts, station{id, []string{id + "H", id + "V"}})
			if c+1 < n {
				hops = append(hops, hop{id + "H", name(r, c+1) + "H", fmt.Sprint(100 + r), int64(60 + (r*7+c)%30)})
			}
			if r+1 < n {
				hops = append(hops, hop{id + "V", name(r+1, c) + "V", fmt.Sprint(200 + c), int64(60 + (c*5+r)%40)})
			}
		}
	}

	return sts, hops
}

func BenchmarkRoute_Grid(b *testing.B) {
	for _, k := range []int{1, 5} {
		b.Run(fmt.Sprintf("k=%d", k), func(b *testing.B) {
			sts, hops := gridNet(8)
			g, reg := buildNet(b, sts, hops)
			eng, err := routing.NewEngine(g, reg)
			if err != nil {
				b.Fatal(err)
			}
			ctx := context.Background()

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := eng.Route(ctx, "S0000", "S0707", k); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
