// SPDX-License-Identifier: MIT

package townmap_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/haripath/geo"
	"github.com/katalvlaran/haripath/townmap"
)

func TestHaripur_Contents(t *testing.T) {
	m := townmap.Haripur()
	require.Equal(t, "Haripur", m.Name())
	require.Equal(t, []string{
		"Main Bazar", "Haripur City", "TIP University", "Chongi",
		"Kotnajibullah", "Hattar", "Khalabat", "Ghazi",
	}, m.Locations())
	require.Len(t, m.Roads(), 9)
	require.Equal(t, townmap.Road{From: "Main Bazar", To: "Haripur City", Cost: 2}, m.Roads()[0])

	p, err := m.Coordinate("Khalabat")
	require.NoError(t, err)
	require.Equal(t, orb.Point{4, 2}, p)

	_, err = m.Coordinate("Islamabad")
	require.ErrorIs(t, err, townmap.ErrUnknownLocation)

	require.Equal(t, orb.Bound{Min: orb.Point{-1, -2}, Max: orb.Point{6, 2}}, m.Bound())
	require.Same(t, m, townmap.Haripur())
}

func TestHaripur_IsImmutable(t *testing.T) {
	m := townmap.Haripur()

	g := m.Graph()
	_, err := g.AddEdge("Hattar", "Ghazi", 1)
	require.NoError(t, err)
	require.False(t, townmap.Haripur().Graph().HasEdge("Hattar", "Ghazi"))

	c := m.Coordinates()
	delete(c, "Ghazi")
	require.True(t, m.Has("Ghazi"))
	_, err = m.Coordinate("Ghazi")
	require.NoError(t, err)

	locs := m.Locations()
	locs[0] = "Nowhere"
	require.Equal(t, "Main Bazar", m.Locations()[0])
}

func TestMap_FindPath(t *testing.T) {
	m := townmap.Haripur()

	res, err := m.FindPath("Main Bazar", "Ghazi", geo.Euclidean)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, 32.0, res.Path.Cost)

	res, err = m.FindPath("Haripur City", "Hattar", geo.Euclidean)
	require.NoError(t, err)
	require.Equal(t, []string{"Haripur City", "Hattar"}, res.Path.Nodes)
	require.Equal(t, 15.0, res.Path.Cost)
}

func TestMap_NearestAndWithin(t *testing.T) {
	m := townmap.Haripur()

	name, ok := m.Nearest(orb.Point{3.9, -1.8})
	require.True(t, ok)
	require.Equal(t, "Hattar", name)

	require.Equal(t, []string{"Haripur City", "Main Bazar"},
		m.Within(orb.Bound{Min: orb.Point{-1, 0}, Max: orb.Point{0, 0}}))
}

func TestMap_Reachable(t *testing.T) {
	m := townmap.Haripur()

	got, err := m.Reachable("Haripur City")
	require.NoError(t, err)
	require.Equal(t, []string{
		"Chongi", "Ghazi", "Hattar", "Khalabat", "Kotnajibullah", "Main Bazar", "TIP University",
	}, got)

	got, err = m.Reachable("Hattar")
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = m.Reachable("Islamabad")
	require.ErrorIs(t, err, townmap.ErrUnknownLocation)
}

func TestLoad_Valid(t *testing.T) {
	m, err := townmap.Load(strings.NewReader(`
name: Tiny
locations:
  - name: A
    at: [0, 0]
    roads: [{to: B, cost: 1.5}]
  - name: B
    at: [1, 0]
`))
	require.NoError(t, err)
	require.Equal(t, "Tiny", m.Name())
	require.True(t, m.Graph().HasEdge("A", "B"))
	require.False(t, m.Graph().HasEdge("B", "A"))
}

func TestLoad_CollectsEveryProblem(t *testing.T) {
	_, err := townmap.Load(strings.NewReader(`
locations:
  - name: A
    at: [0, 0]
    roads:
      - {to: B, cost: -1}
      - {to: Z, cost: 1}
      - {to: A, cost: 1}
  - name: A
    at: [1, 1]
  - name: ""
    at: [2, 2]
  - name: B
  - name: C
    at: [3, 3]
    roads:
      - {to: A, cost: 1}
      - {to: A, cost: 2}
`))
	require.Error(t, err)

	var ve *townmap.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, townmap.Problems(err), 7)

	for _, want := range []error{
		townmap.ErrBadCost,
		townmap.ErrUndefinedTarget,
		townmap.ErrSelfRoad,
		townmap.ErrDuplicateLocation,
		townmap.ErrEmptyName,
		townmap.ErrBadCoordinate,
		townmap.ErrDuplicateRoad,
	} {
		require.ErrorIs(t, err, want)
	}
	require.Contains(t, err.Error(), "7 map problems")
}

func TestLoad_Rejects(t *testing.T) {
	_, err := townmap.Load(strings.NewReader(""))
	require.ErrorIs(t, err, townmap.ErrEmptyDocument)

	_, err = townmap.Load(strings.NewReader("name: Empty\n"))
	require.ErrorIs(t, err, townmap.ErrNoLocations)

	_, err = townmap.Load(strings.NewReader("name: X\nplaces: []\n"))
	require.Error(t, err, "unknown keys are rejected")

	require.Nil(t, townmap.Problems(err))

	// A road without a cost is not a free road.
	_, err = townmap.Load(strings.NewReader(`
locations:
  - name: A
    at: [0, 0]
    roads:
      - {to: B}
      - {to: C, cost: 0}
  - {name: B, at: [1, 0]}
  - {name: C, at: [0, 1]}
`))
	require.ErrorIs(t, err, townmap.ErrMissingCost)
	require.Len(t, townmap.Problems(err), 1, "an explicit zero cost is valid")
	require.Contains(t, err.Error(), `"A" → "B"`)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "town.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: T\nlocations:\n  - {name: A, at: [0, 0]}\n"), 0o600))

	m, err := townmap.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, m.Locations())

	_, err = townmap.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestAudit(t *testing.T) {
	m := townmap.Haripur()

	for _, h := range []geo.Heuristic{geo.Euclidean, geo.Manhattan, geo.Zero} {
		rep, err := m.Audit(h)
		require.NoError(t, err)
		require.True(t, rep.OK(), "%v", rep.Findings)
		require.Equal(t, 20, rep.Pairs)
	}

	rep, err := m.Audit(geo.Scaled(geo.Euclidean, 10))
	require.NoError(t, err)
	require.False(t, rep.OK())
	require.Contains(t, rep.Findings, townmap.Finding{
		Kind: townmap.Inadmissible, Node: "Haripur City", Goal: "Main Bazar", Estimate: 10, Limit: 2,
	})
	require.Equal(t, "inadmissible: h(Haripur City→Main Bazar)=10 > 2", rep.Findings[0].String())

	_, err = m.Audit(nil)
	require.Error(t, err)
}
