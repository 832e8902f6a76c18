// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/haripath/bfs"
	"github.com/katalvlaran/haripath/core"
)

// oneWay builds  A→B→C→D  plus  A→E  and a detached Z.
func oneWay(t *testing.T) *core.Graph {
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"A", "E"}} {
		_, err := g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("Z"))

	return g
}

func TestBFS_OrderDepthParent(t *testing.T) {
	res, err := bfs.BFS(oneWay(t), "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "E", "C", "D"}, res.Order)
	require.Equal(t, 3, res.Depth["D"])
	require.Equal(t, "C", res.Parent["D"])
	require.NotContains(t, res.Depth, "Z")

	path, err := res.PathTo("D")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D"}, path)

	_, err = res.PathTo("Z")
	require.Error(t, err)
}

func TestBFS_FollowsDirection(t *testing.T) {
	res, err := bfs.BFS(oneWay(t), "D")
	require.NoError(t, err)
	require.Equal(t, []string{"D"}, res.Order)
}

func TestBFS_Options(t *testing.T) {
	g := oneWay(t)

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "E"}, res.Order)

	res, err = bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(_, nbr string) bool { return nbr != "B" }))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "E"}, res.Order)

	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)

	stop := errors.New("stop")
	_, err = bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "C" {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, "A", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestBFS_InvalidInput(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	require.ErrorIs(t, err, bfs.ErrGraphNil)
	_, err = bfs.BFS(oneWay(t), "Q")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

func TestReachable(t *testing.T) {
	got, err := bfs.Reachable(oneWay(t), "B")
	require.NoError(t, err)
	require.Equal(t, []string{"C", "D"}, got)

	got, err = bfs.Reachable(oneWay(t), "Z")
	require.NoError(t, err)
	require.Empty(t, got)
}
