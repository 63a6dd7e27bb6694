package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/metroroute/httpapi"
	"github.com/katalvlaran/metroroute/registry"
	"github.com/katalvlaran/metroroute/routing"
)

// printPaths writes each path with its per-leg and accumulated time.
func printPaths(w io.Writer, reg *registry.Registry, origin, dest string, paths []routing.PathResult) {
	fmt.Fprintf(w, "%d path(s) from %s to %s\n", len(paths), origin, dest)
	for i, p := range paths {
		fmt.Fprintf(w, "\nPath %d (total %s", i+1, httpapi.FormatSeconds(p.Total))
		if p.Incomplete {
			fmt.Fprint(w, ", some legs untimed")
		}
		fmt.Fprintln(w, "):")
		for j, id := range p.Nodes {
			name := "???"
			if st, ok := reg.StationOf(id); ok {
				name = st.Name
			}
			fmt.Fprintf(w, " - %s: %s\n", id, name)
			if j < len(p.Legs) {
				leg := p.Legs[j]
				label := leg.Kind.String()
				if leg.Line != "" {
					label += " " + leg.Line
				}
				fmt.Fprintf(w, "   +%d s (%s) -> %d s\n", leg.Weight, label, p.Cumulative[j+1])
			}
		}
	}
}
