package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/registry"
	"github.com/katalvlaran/metroroute/routing"
)

// HeaderRequestID carries the request ID in both directions.
const HeaderRequestID = "X-Request-ID"

type ctxKey struct{}

// RequestID returns the ID assigned to the request carrying ctx.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)

	return id
}

// Handler serves route queries and station listings as JSON.
type Handler struct {
	g        *core.Graph
	reg      *registry.Registry
	eng      *routing.Engine
	defaultK int
	maxK     int
	timeout  time.Duration
	logger   *slog.Logger
}

// Option customizes a Handler.
type Option func(*Handler)

// WithK sets the k used when the query omits it and the largest k accepted.
// Non-positive values keep the current setting; a maxK below defaultK is
// raised to defaultK.
func WithK(defaultK, maxK int) Option {
	return func(h *Handler) {
		if defaultK > 0 {
			h.defaultK = defaultK
		}
		if maxK > 0 {
			h.maxK = maxK
		}
		if h.maxK < h.defaultK {
			h.maxK = h.defaultK
		}
	}
}

// WithTimeout bounds each route query; zero leaves only the client's deadline.
func WithTimeout(d time.Duration) Option {
	return func(h *Handler) { h.timeout = d }
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// NewHandler wires the query engine and its graph and registry.
func NewHandler(g *core.Graph, reg *registry.Registry, eng *routing.Engine, opts ...Option) *Handler {
	h := &Handler{
		g:        g,
		reg:      reg,
		eng:      eng,
		defaultK: 3,
		maxK:     10,
		logger:   slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
	}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// RegisterRoutes mounts the API on router.
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.Use(h.requestID)
	router.HandleFunc("/api/routes", h.Routes).Methods(http.MethodGet)
	router.HandleFunc("/api/stations", h.Stations).Methods(http.MethodGet)
	router.HandleFunc("/api/stations/{name}", h.Station).Methods(http.MethodGet)
	router.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)
}

// Router returns a new router with the API mounted.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	h.RegisterRoutes(r)

	return r
}

// Routes answers GET /api/routes?from=&to=&k=&avoid=.
// avoid is a comma-separated list of edge kinds (line, transfer, shunt).
func (h *Handler) Routes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := strings.TrimSpace(q.Get("from")), strings.TrimSpace(q.Get("to"))
	if from == "" || to == "" {
		h.fail(w, r, http.StatusBadRequest, errors.New("from and to are required"))
		return
	}
	k := h.defaultK
	if raw := q.Get("k"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > h.maxK {
			h.fail(w, r, http.StatusBadRequest, fmt.Errorf("k must be an integer between 1 and %d", h.maxK))
			return
		}
		k = n
	}
	eng := h.eng
	var avoid []string
	if raw := strings.TrimSpace(q.Get("avoid")); raw != "" {
		kinds := make([]core.EdgeKind, 0, 3)
		for _, name := range strings.Split(raw, ",") {
			kind, err := core.ParseEdgeKind(name)
			if err != nil {
				h.fail(w, r, http.StatusBadRequest, err)
				return
			}
			kinds = append(kinds, kind)
			avoid = append(avoid, kind.String())
		}
		eng = eng.With(routing.WithAvoid(kinds...))
	}

	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}
	paths, err := eng.Route(ctx, from, to, k)
	if err != nil {
		h.fail(w, r, statusOf(err), err)
		return
	}

	views := make([]PathView, len(paths))
	for i, p := range paths {
		views[i] = h.view(p)
	}
	writeJSON(w, http.StatusOK, RoutesResponse{
		Origin:      from,
		Destination: to,
		K:           k,
		Avoid:       avoid,
		Count:       len(views),
		Paths:       views,
	})
}

// Stations answers GET /api/stations.
func (h *Handler) Stations(w http.ResponseWriter, r *http.Request) {
	sts := h.reg.Stations()
	out := make([]StationView, 0, len(sts))
	for _, st := range sts {
		out = append(out, h.station(st))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"stations": out,
		"count":    len(out),
	})
}

// Station answers GET /api/stations/{name}.
func (h *Handler) Station(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	st, ok := h.reg.Station(name)
	if !ok {
		h.fail(w, r, http.StatusNotFound, &registry.StationError{Name: name})
		return
	}
	writeJSON(w, http.StatusOK, h.station(st))
}

// Health answers GET /healthz with the graph size.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	st := h.g.Stats()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"nodes":    st.NodeCount,
		"edges":    st.EdgeCount,
		"stations": h.reg.Len(),
	})
}

func (h *Handler) station(st *registry.Station) StationView {
	v := StationView{Name: st.Name, Key: st.Key}
	for _, id := range st.Nodes {
		nv := NodeView{ID: id}
		if p, ok := h.reg.Position(id); ok {
			nv.Lon, nv.Lat = p.Lon(), p.Lat()
		}
		nv.Lines, _ = h.g.NodeLines(id)
		v.Nodes = append(v.Nodes, nv)
	}

	return v
}

func (h *Handler) view(p routing.PathResult) PathView {
	v := PathView{PathResult: p, Duration: FormatSeconds(p.Total)}
	v.Stations = make([]string, len(p.Nodes))
	for i, id := range p.Nodes {
		if st, ok := h.reg.StationOf(id); ok {
			v.Stations[i] = st.Name
		}
	}

	return v
}

// requestID assigns a request ID, honoring one sent by the client.
func (h *Handler) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(HeaderRequestID))
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, id)
		started := time.Now()
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
		h.logger.Debug("request", "id", id, "method", r.Method, "path", r.URL.Path, "elapsed", time.Since(started))
	})
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	id := RequestID(r.Context())
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", "id", id, "err", err)
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error(), RequestID: id})
}

// statusOf maps engine errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, routing.ErrUnknownStation):
		return http.StatusNotFound
	case errors.Is(err, routing.ErrNoPathFound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, routing.ErrInvalidK):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
