// SPDX-License-Identifier: MIT

// Package server exposes route planning over HTTP.
//
//	GET /health
//	GET /locations
//	GET /route?from=&to=
//	GET /nearest?x=&y=
//	GET /map.geojson[?from=&to=]
//	GET /map.png[?from=&to=]
//	GET /metrics              (when a metrics handler is configured)
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/paulmach/orb"

	"github.com/katalvlaran/haripath/astar"
	"github.com/katalvlaran/haripath/render"
	"github.com/katalvlaran/haripath/route"
)

// Server holds the handlers' dependencies.
type Server struct {
	Planner *route.Planner
	Metrics http.Handler // optional
	Logger  *slog.Logger
}

// NewHandler builds the chi router for s.
func NewHandler(s *Server) http.Handler {
	if s.Logger == nil {
		s.Logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLog)

	r.Get("/health", s.health)
	r.Get("/locations", s.locations)
	r.Get("/route", s.route)
	r.Get("/nearest", s.nearest)
	r.Get("/map.geojson", s.mapGeoJSON)
	r.Get("/map.png", s.mapPNG)
	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics)
	}

	return r
}

// requestLog logs one line per request at debug level.
func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		began := time.Now()
		next.ServeHTTP(ww, r)
		s.Logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"elapsed", time.Since(began),
		)
	})
}

type locationJSON struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) locations(w http.ResponseWriter, _ *http.Request) {
	m := s.Planner.Map
	coords := m.Coordinates()
	out := make([]locationJSON, 0, len(coords))
	for _, name := range m.Locations() {
		p := coords[name]
		out = append(out, locationJSON{Name: name, X: p.X(), Y: p.Y()})
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"map": m.Name(), "locations": out})
}

func (s *Server) route(w http.ResponseWriter, r *http.Request) {
	o := s.Planner.Plan(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	s.writeJSON(w, statusOf(o.Kind), render.NewOutcomeJSON(o))
}

func (s *Server) nearest(w http.ResponseWriter, r *http.Request) {
	x, errX := strconv.ParseFloat(r.URL.Query().Get("x"), 64)
	y, errY := strconv.ParseFloat(r.URL.Query().Get("y"), 64)
	if errX != nil || errY != nil {
		s.writeError(w, http.StatusBadRequest, "x and y must be numbers")
		return
	}

	name, ok := s.Planner.Map.Nearest(orb.Point{x, y})
	if !ok {
		s.writeError(w, http.StatusNotFound, "map has no locations")
		return
	}
	p, _ := s.Planner.Map.Coordinate(name)
	s.writeJSON(w, http.StatusOK, locationJSON{Name: name, X: p.X(), Y: p.Y()})
}

func (s *Server) mapGeoJSON(w http.ResponseWriter, r *http.Request) {
	path, ok := s.highlight(w, r)
	if !ok {
		return
	}
	raw, err := render.GeoJSON(s.Planner.Map, path).MarshalJSON()
	if err != nil {
		s.Logger.Error("geojson encode failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "encode failed")
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	_, _ = w.Write(raw)
}

func (s *Server) mapPNG(w http.ResponseWriter, r *http.Request) {
	path, ok := s.highlight(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if err := render.PNG(w, s.Planner.Map, path, render.DefaultPNGOptions()); err != nil {
		s.Logger.Error("png render failed", "error", err)
	}
}

// highlight resolves the optional from/to query into the route to draw.
// Without both parameters the plain map is drawn. A rejected query has
// already been answered when ok is false.
func (s *Server) highlight(w http.ResponseWriter, r *http.Request) (astar.Path, bool) {
	from, to := r.URL.Query().Get("from"), r.URL.Query().Get("to")
	if from == "" && to == "" {
		return astar.Path{}, true
	}

	o := s.Planner.Plan(from, to)
	switch o.Kind {
	case route.Found:
		return o.Path, true
	case route.NoPath:
		return astar.Path{}, true
	default:
		s.writeError(w, statusOf(o.Kind), o.Message)
		return astar.Path{}, false
	}
}

// statusOf maps an outcome to an HTTP status. NoPath is a normal answer.
func statusOf(k route.Kind) int {
	switch k {
	case route.Found, route.NoPath:
		return http.StatusOK
	case route.SameLocation, route.InvalidLocation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "error", err)
	}
}
