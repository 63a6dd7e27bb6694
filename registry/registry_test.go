package registry_test

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metroroute/records"
	"github.com/katalvlaran/metroroute/registry"
)

func TestResolveIsCaseAndSpaceInsensitive(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.Register("Noviciado", "n1", orb.Point{}))
	require.NoError(t, r.Register("NOVICIADO", "n2", orb.Point{}))

	a, err := r.Resolve("  noviciado ")
	require.NoError(t, err)
	b, err := r.Resolve("NOVICIADO")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, []string{"N1", "N2"}, a)

	st, ok := r.Station("noviciado")
	require.True(t, ok)
	assert.Equal(t, "Noviciado", st.Name, "first display form is kept")
}

func TestResolveUnknownStation(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.Register("Sol", "s1", orb.Point{}))

	_, err := r.Resolve("Sool")
	require.Error(t, err)
	assert.True(t, errors.Is(err, registry.ErrUnknownStation))

	var se *registry.StationError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "Sool", se.Name)
}

func TestNormalizeCollapsesInnerWhitespace(t *testing.T) {
	assert.Equal(t, "PLAZA DE ESPAÑA", registry.Normalize("  plaza   de\tespaña "))
}

func TestRegisterConflictsAndDuplicates(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.Register("Sol", "s1", orb.Point{1, 2}))
	require.NoError(t, r.Register("sol", " S1 ", orb.Point{9, 9}), "same node, same station")

	st, _ := r.Station("Sol")
	assert.Equal(t, []string{"S1"}, st.Nodes)
	pos, ok := r.Position("s1")
	require.True(t, ok)
	assert.Equal(t, orb.Point{1, 2}, pos)

	err := r.Register("Opera", "s1", orb.Point{})
	assert.ErrorIs(t, err, registry.ErrNodeConflict)

	assert.ErrorIs(t, r.Register(" ", "x", orb.Point{}), registry.ErrEmptyName)
	assert.ErrorIs(t, r.Register("X", "", orb.Point{}), registry.ErrEmptyName)
}

func TestStationOfAndListings(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.Register("Opera", "o2", orb.Point{}))
	require.NoError(t, r.Register("Opera", "o1", orb.Point{}))
	require.NoError(t, r.Register("Callao", "c1", orb.Point{}))

	st, ok := r.StationOf("o1")
	require.True(t, ok)
	assert.Equal(t, "OPERA", st.Key)
	_, ok = r.StationOf("zz")
	assert.False(t, ok)

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"C1", "O1", "O2"}, r.Nodes())
	stations := r.Stations()
	require.Len(t, stations, 2)
	assert.Equal(t, "CALLAO", stations[0].Key)
	assert.True(t, r.HasNode("O2"))
}

func TestBuildRegistry(t *testing.T) {
	r, err := registry.BuildRegistry([]records.Station{
		{NodeID: "a1", Name: "A", Lon: -3.7, Lat: 40.4},
		{NodeID: "b1", Name: "B"},
		{NodeID: "b2", Name: "b"},
	})
	require.NoError(t, err)
	nodes, err := r.Resolve("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"B1", "B2"}, nodes)

	_, err = registry.BuildRegistry([]records.Station{
		{NodeID: "a1", Name: "A"},
		{NodeID: "a1", Name: "Other"},
	})
	var ie *records.IngestError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, 1, ie.Index)
	assert.ErrorIs(t, err, registry.ErrNodeConflict)

	_, err = registry.BuildRegistry([]records.Station{{NodeID: "", Name: "A"}})
	assert.ErrorIs(t, err, records.ErrInvalidRecord)
}
