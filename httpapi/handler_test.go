package httpapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metroroute/builder"
	"github.com/katalvlaran/metroroute/httpapi"
	"github.com/katalvlaran/metroroute/records"
	"github.com/katalvlaran/metroroute/registry"
	"github.com/katalvlaran/metroroute/routing"
)

// newServer: Sol{S1,S2} ─L1 95s─ Opera{O1}; Tribunal{T1} is isolated.
func newServer(t *testing.T, opts ...httpapi.Option) http.Handler {
	t.Helper()
	reg := registry.New()
	require.NoError(t, reg.Register("Sol", "S1", orb.Point{-3.7035, 40.4169}))
	require.NoError(t, reg.Register("Sol", "S2", orb.Point{-3.7036, 40.4170}))
	require.NoError(t, reg.Register("Opera", "O1", orb.Point{-3.7098, 40.4180}))
	require.NoError(t, reg.Register("Tribunal", "T1", orb.Point{}))

	its := []records.Itinerary{{ID: "2", Stops: []records.Stop{{NodeID: "S1", LineID: "2"}, {NodeID: "O1", LineID: "2"}}}}
	obs := []records.Observation{{From: "S1", To: "O1", Duration: "00:01:35"}}
	g, _, err := builder.Build(reg, its, obs)
	require.NoError(t, err)
	eng, err := routing.NewEngine(g, reg)
	require.NoError(t, err)

	return httpapi.NewHandler(g, reg, eng, append([]httpapi.Option{httpapi.WithK(2, 5)}, opts...)...).Router()
}

func get(t *testing.T, h http.Handler, target string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestRoutes(t *testing.T) {
	h := newServer(t)
	rec := get(t, h, "/api/routes?from=opera&to=SOL")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get(httpapi.HeaderRequestID))

	var body httpapi.RoutesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.K)
	require.Equal(t, 2, body.Count)
	assert.Equal(t, []string{"O1", "S1"}, body.Paths[0].Nodes)
	assert.Equal(t, "1 min 35 s", body.Paths[0].Duration)
	assert.Equal(t, []string{"Opera", "Sol"}, body.Paths[0].Stations)
	assert.Equal(t, []string{"O1", "S1", "S2"}, body.Paths[1].Nodes)
	assert.Equal(t, int64(95+builder.DefaultTransferPenalty), body.Paths[1].Total)
	assert.Empty(t, body.Avoid)

	rec = get(t, h, "/api/routes?from=opera&to=SOL&avoid=transfer")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body = httpapi.RoutesResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"transfer"}, body.Avoid)
	require.Equal(t, 1, body.Count)
	assert.Equal(t, []string{"O1", "S1"}, body.Paths[0].Nodes)
}

func TestRoutesErrors(t *testing.T) {
	h := newServer(t)
	cases := []struct {
		query  url.Values
		status int
	}{
		{url.Values{"from": {"Sol"}}, http.StatusBadRequest},
		{url.Values{"from": {"Sol"}, "to": {"Opera"}, "k": {"0"}}, http.StatusBadRequest},
		{url.Values{"from": {"Sol"}, "to": {"Opera"}, "k": {"6"}}, http.StatusBadRequest},
		{url.Values{"from": {"Sol"}, "to": {"Opera"}, "k": {"x"}}, http.StatusBadRequest},
		{url.Values{"from": {"Atocha"}, "to": {"Opera"}}, http.StatusNotFound},
		{url.Values{"from": {"Sol"}, "to": {"Tribunal"}}, http.StatusUnprocessableEntity},
		{url.Values{"from": {"Sol"}, "to": {"Opera"}, "avoid": {"shunt,tram"}}, http.StatusBadRequest},
		{url.Values{"from": {"Sol"}, "to": {"Opera"}, "avoid": {"line"}}, http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		rec := get(t, h, "/api/routes?"+tc.query.Encode(), httpapi.HeaderRequestID, "req-42")
		assert.Equal(t, tc.status, rec.Code, tc.query.Encode())

		var body httpapi.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body.Error)
		assert.Equal(t, "req-42", body.RequestID)
		assert.Equal(t, "req-42", rec.Header().Get(httpapi.HeaderRequestID))
	}
}

func TestRoutesDeadline(t *testing.T) {
	h := newServer(t, httpapi.WithTimeout(time.Minute))

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/api/routes?from=Sol&to=Opera", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code, rec.Body.String())
	var body httpapi.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Error, context.DeadlineExceeded.Error())
	assert.NotEmpty(t, body.RequestID)
}

func TestWithKRaisesMaxToDefault(t *testing.T) {
	h := newServer(t, httpapi.WithK(4, 2))

	rec := get(t, h, "/api/routes?from=Sol&to=Opera")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body httpapi.RoutesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 4, body.K)

	assert.Equal(t, http.StatusOK, get(t, h, "/api/routes?from=Sol&to=Opera&k=4").Code)
	rec = get(t, h, "/api/routes?from=Sol&to=Opera&k=5")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "between 1 and 4")
}

func TestStations(t *testing.T) {
	h := newServer(t)
	rec := get(t, h, "/api/stations")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Stations []httpapi.StationView `json:"stations"`
		Count    int                   `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Count)
	assert.Equal(t, "OPERA", body.Stations[0].Key)

	rec = get(t, h, "/api/stations/sol")
	require.Equal(t, http.StatusOK, rec.Code)
	var st httpapi.StationView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.Equal(t, "Sol", st.Name)
	require.Len(t, st.Nodes, 2)
	assert.Equal(t, []string{"L2"}, st.Nodes[0].Lines)
	assert.InDelta(t, 40.4169, st.Nodes[0].Lat, 1e-9)

	rec = get(t, h, "/api/stations/atocha")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = get(t, h, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "0 min 00 s", httpapi.FormatSeconds(0))
	assert.Equal(t, "12 min 05 s", httpapi.FormatSeconds(725))
}
