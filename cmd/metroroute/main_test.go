package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metroroute/config"
	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/registry"
	"github.com/katalvlaran/metroroute/routing"
)

func TestPrintPaths(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Register("Sol", "S1", orb.Point{}))
	require.NoError(t, reg.Register("Opera", "O1", orb.Point{}))

	var buf bytes.Buffer
	printPaths(&buf, reg, "Sol", "Opera", []routing.PathResult{{
		Nodes:      []string{"S1", "O1"},
		Cumulative: []int64{0, 95},
		Total:      95,
		Legs:       []routing.Leg{{From: "S1", To: "O1", Kind: core.LineSegment, Line: "L2", Weight: 95}},
	}})

	want := "1 path(s) from Sol to Opera\n" +
		"\nPath 1 (total 1 min 35 s):\n" +
		" - S1: Sol\n" +
		"   +95 s (line L2) -> 95 s\n" +
		" - O1: Opera\n"
	assert.Equal(t, want, buf.String())
}

func sampleConfig(t *testing.T) config.AppConfig {
	t.Helper()
	cfg, err := config.Load("../../examples/config.yml")
	require.NoError(t, err)
	cfg.Data.Path = "../../examples/network.yml"

	return cfg
}

func TestLoadSampleNetwork(t *testing.T) {
	cfg := sampleConfig(t)
	g, reg, err := loadNetwork(cfg, slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})))
	require.NoError(t, err)

	st := g.Stats()
	assert.Equal(t, 22, st.NodeCount)
	assert.Equal(t, 1, st.UntimedLines)
	assert.Equal(t, 1, st.Shunts, "OPERA_R <-> PPIO_R")
	assert.Equal(t, 13, reg.Len())

	eng, err := routing.NewEngine(g, reg, cfg.RoutingOptions(nil)...)
	require.NoError(t, err)

	paths, err := eng.Route(context.Background(), "Noviciado", "Sol", 3)
	require.NoError(t, err)
	require.Len(t, paths, 3)
	assert.Equal(t, []string{"NOVICIADO_2", "SDOMINGO_2", "OPERA_2", "SOL_2"}, paths[0].Nodes)
	assert.Equal(t, []int64{225, 390, 465}, []int64{paths[0].Total, paths[1].Total, paths[2].Total})
	assert.Equal(t, core.Transfer, paths[1].Legs[0].Kind, "walk to Plaza de España first")

	paths, err = eng.Route(context.Background(), "Príncipe Pío", "Chueca", 2)
	require.NoError(t, err)
	for _, p := range paths {
		assert.True(t, p.Incomplete, "Chueca is only reachable over an untimed segment")
	}
}

func TestQueryReportsUserErrors(t *testing.T) {
	cfg := sampleConfig(t)
	g, reg, err := loadNetwork(cfg, slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})))
	require.NoError(t, err)
	eng, err := routing.NewEngine(g, reg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, query(context.Background(), cfg, eng, reg, &buf, "Atlantis", "Sol", 3))
	assert.Contains(t, buf.String(), "Atlantis")

	buf.Reset()
	require.NoError(t, query(context.Background(), cfg, eng, reg, &buf, "Noviciado", "Sol", 1))
	assert.Contains(t, buf.String(), "1 path(s) from Noviciado to Sol")
	assert.Contains(t, buf.String(), "total 3 min 45 s")
}

func TestPromptStopsOnExit(t *testing.T) {
	cfg := sampleConfig(t)
	g, reg, err := loadNetwork(cfg, slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})))
	require.NoError(t, err)
	eng, err := routing.NewEngine(g, reg)
	require.NoError(t, err)

	in := strings.NewReader("Sol\nCallao\nexit\nnever read\n")
	var out bytes.Buffer
	require.NoError(t, prompt(context.Background(), cfg, eng, reg, in, &out))
	assert.Contains(t, out.String(), "from Sol to Callao")
	assert.Equal(t, 2, strings.Count(out.String(), "Origin: "))
}
