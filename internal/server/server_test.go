// SPDX-License-Identifier: MIT

package server_test

import (
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/haripath/internal/logging"
	"github.com/katalvlaran/haripath/internal/metrics"
	"github.com/katalvlaran/haripath/internal/server"
	"github.com/katalvlaran/haripath/route"
	"github.com/katalvlaran/haripath/townmap"
)

type ServerSuite struct {
	suite.Suite
	srv *httptest.Server
}

func (s *ServerSuite) SetupTest() {
	m := metrics.New()
	h := server.NewHandler(&server.Server{
		Planner: &route.Planner{Map: townmap.Haripur(), Observer: m},
		Metrics: m.Handler(),
		Logger:  logging.NewNop(),
	})
	s.srv = httptest.NewServer(h)
}

func (s *ServerSuite) TearDownTest() {
	s.srv.Close()
}

func (s *ServerSuite) get(path string, q url.Values) *http.Response {
	u := s.srv.URL + path
	if q != nil {
		u += "?" + q.Encode()
	}
	resp, err := http.Get(u)
	require.NoError(s.T(), err)
	s.T().Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func (s *ServerSuite) decode(resp *http.Response, v any) {
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(v))
}

func (s *ServerSuite) TestHealth() {
	resp := s.get("/health", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var body map[string]string
	s.decode(resp, &body)
	require.Equal(s.T(), "ok", body["status"])
}

func (s *ServerSuite) TestLocations() {
	resp := s.get("/locations", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var body struct {
		Map       string `json:"map"`
		Locations []struct {
			Name string  `json:"name"`
			X    float64 `json:"x"`
			Y    float64 `json:"y"`
		} `json:"locations"`
	}
	s.decode(resp, &body)
	require.Equal(s.T(), "Haripur", body.Map)
	require.Len(s.T(), body.Locations, 8)
	require.Equal(s.T(), "Main Bazar", body.Locations[0].Name)
}

func (s *ServerSuite) TestRoute() {
	resp := s.get("/route", url.Values{"from": {"Main Bazar"}, "to": {"Ghazi"}})
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var body struct {
		Outcome string   `json:"outcome"`
		Title   string   `json:"title"`
		Path    []string `json:"path"`
		Cost    float64  `json:"cost"`
	}
	s.decode(resp, &body)
	require.Equal(s.T(), "found", body.Outcome)
	require.Equal(s.T(), "Path Found", body.Title)
	require.Equal(s.T(), []string{"Main Bazar", "Haripur City", "TIP University", "Khalabat", "Ghazi"}, body.Path)
	require.Equal(s.T(), 32.0, body.Cost)
}

func (s *ServerSuite) TestRouteRejections() {
	cases := []struct {
		from, to string
		status   int
		outcome  string
	}{
		{"Hattar", "Ghazi", http.StatusOK, "no_path"},
		{"Ghazi", "Ghazi", http.StatusBadRequest, "same_location"},
		{"Islamabad", "Ghazi", http.StatusBadRequest, "invalid_location"},
	}
	for _, c := range cases {
		resp := s.get("/route", url.Values{"from": {c.from}, "to": {c.to}})
		require.Equal(s.T(), c.status, resp.StatusCode, c.outcome)

		var body map[string]any
		s.decode(resp, &body)
		require.Equal(s.T(), c.outcome, body["outcome"])
		require.NotContains(s.T(), body, "path")
	}
}

func (s *ServerSuite) TestNearest() {
	resp := s.get("/nearest", url.Values{"x": {"5.8"}, "y": {"2.1"}})
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var body map[string]any
	s.decode(resp, &body)
	require.Equal(s.T(), "Ghazi", body["name"])

	resp = s.get("/nearest", url.Values{"x": {"east"}, "y": {"1"}})
	require.Equal(s.T(), http.StatusBadRequest, resp.StatusCode)
}

func (s *ServerSuite) TestMapGeoJSON() {
	resp := s.get("/map.geojson", url.Values{"from": {"Haripur City"}, "to": {"Hattar"}})
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	require.Equal(s.T(), "application/geo+json", resp.Header.Get("Content-Type"))

	var fc geojson.FeatureCollection
	s.decode(resp, &fc)
	highlighted := 0
	for _, f := range fc.Features {
		if f.Properties["highlight"] == true {
			highlighted++
		}
	}
	require.Equal(s.T(), 1, highlighted)

	resp = s.get("/map.geojson", url.Values{"from": {"Ghazi"}, "to": {"Ghazi"}})
	require.Equal(s.T(), http.StatusBadRequest, resp.StatusCode)
}

func (s *ServerSuite) TestMapPNG() {
	resp := s.get("/map.png", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	require.Equal(s.T(), "image/png", resp.Header.Get("Content-Type"))

	img, err := png.Decode(resp.Body)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 800, img.Bounds().Dx())
}

func (s *ServerSuite) TestMetrics() {
	s.get("/route", url.Values{"from": {"Main Bazar"}, "to": {"Ghazi"}})

	resp := s.get("/metrics", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)
	require.Contains(s.T(), string(raw), `haripath_route_queries_total{outcome="found"} 1`)
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}
