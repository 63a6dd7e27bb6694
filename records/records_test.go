package records_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metroroute/records"
)

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		bad  bool
	}{
		{in: "00:01:30", want: 90},
		{in: "1:00:00", want: 3600},
		{in: "02:05", want: 125},
		{in: "75", want: 75},
		{in: " 00:00:45 ", want: 45},
		{in: "", bad: true},
		{in: "abc", bad: true},
		{in: "00:61:00", bad: true},
		{in: "-5", bad: true},
		{in: "1:2:3:4", bad: true},
		{in: "0 days 00:01:30", bad: true},
		{in: "24:00:00", want: 86400},
		{in: "24:00:01", bad: true},
		{in: "86401", bad: true},
		{in: "307445734561825861:00", bad: true},
		{in: "9223372036854775807:00", bad: true},
		{in: "99999999999999999999", bad: true},
	}
	for _, tc := range cases {
		got, err := records.ParseDuration(tc.in)
		if tc.bad {
			assert.ErrorIs(t, err, records.ErrBadDuration, "input %q", tc.in)
			continue
		}
		assert.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestGroupSegments(t *testing.T) {
	segs := []records.Segment{
		{ItineraryID: "2", NodeID: "c", Sequence: 2, LineID: "L2"},
		{ItineraryID: "1", NodeID: " b ", Sequence: 2, LineID: "L1"},
		{ItineraryID: "1", NodeID: "a", Sequence: 1, LineID: "L1"},
		{ItineraryID: "2", NodeID: "d", Sequence: 1, LineID: "L2"},
		{ItineraryID: "1", NodeID: "x", Sequence: 2, LineID: "L1"},
	}
	got := records.GroupSegments(segs)
	require.Len(t, got, 2)

	assert.Equal(t, "1", got[0].ID)
	var ids []string
	for _, s := range got[0].Stops {
		ids = append(ids, s.NodeID)
	}
	assert.Equal(t, []string{"A", "B", "X"}, ids, "sorted by sequence, ties keep input order")

	assert.Equal(t, "2", got[1].ID)
	assert.Equal(t, "D", got[1].Stops[0].NodeID)
	assert.Equal(t, "C", got[1].Stops[1].NodeID)
}

func TestDecode(t *testing.T) {
	doc := `
stations:
  - {node_id: "a1", name: "Sol", lon: -3.70, lat: 40.41}
  - {node_id: "a2", name: "SOL", lon: -3.70, lat: 40.41}
segments:
  - {itinerary_id: "it1", node_id: "a1", sequence: 1, line_id: "L1"}
travel_times:
  - {from: "a1", to: "b1", duration: "00:01:10"}
`
	ds, err := records.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, ds.Stations, 2)
	require.Len(t, ds.Segments, 1)
	require.Len(t, ds.TravelTimes, 1)
	assert.Equal(t, "00:01:10", ds.TravelTimes[0].Duration)
	assert.InDelta(t, -3.70, ds.Stations[0].Position().Lon(), 1e-9)
}

func TestDecodeRejectsInvalidStation(t *testing.T) {
	doc := `
stations:
  - {node_id: "a1", name: "Sol"}
  - {node_id: "a2", name: "", lon: 500}
`
	_, err := records.Decode(strings.NewReader(doc))
	require.Error(t, err)

	var ie *records.IngestError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, 1, ie.Index)
	assert.Equal(t, "station", ie.Kind)
	assert.ErrorIs(t, err, records.ErrInvalidRecord)
}

func TestDecodeEmptyInput(t *testing.T) {
	ds, err := records.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, ds.Stations)
}
