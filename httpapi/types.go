package httpapi

import (
	"fmt"

	"github.com/katalvlaran/metroroute/routing"
)

// RoutesResponse is the body of GET /api/routes.
type RoutesResponse struct {
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	K           int        `json:"k"`
	Avoid       []string   `json:"avoid,omitempty"`
	Count       int        `json:"count"`
	Paths       []PathView `json:"paths"`
}

// PathView is a PathResult plus display fields.
type PathView struct {
	routing.PathResult
	Duration string   `json:"duration"`
	Stations []string `json:"stations"`
}

// StationView lists one station and its platforms.
type StationView struct {
	Name  string     `json:"name"`
	Key   string     `json:"key"`
	Nodes []NodeView `json:"nodes"`
}

// NodeView is one platform.
type NodeView struct {
	ID    string   `json:"id"`
	Lon   float64  `json:"lon"`
	Lat   float64  `json:"lat"`
	Lines []string `json:"lines"`
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

// FormatSeconds renders a weight as "12 min 05 s".
func FormatSeconds(s int64) string {
	return fmt.Sprintf("%d min %02d s", s/60, s%60)
}
