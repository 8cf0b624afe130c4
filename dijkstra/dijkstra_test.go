// Package dijkstra_test contains unit tests for the Dijkstra implementation
// over geomap.Map: validation, small hand-checked maps, MaxDistance and
// path reconstruction.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadgraph/dijkstra"
	"github.com/katalvlaran/roadgraph/geomap"
)

// line builds 0—1—2—3 along the X axis with unit spacing, plus an isolated node 4.
func line(t *testing.T) *geomap.Map {
	t.Helper()
	m, err := geomap.New(geomap.Description{
		Roads: [][]int{{1}, {0, 2}, {1, 3}, {2}, {}},
		Intersections: map[int]geomap.Point{
			0: {0, 0}, 1: {1, 0}, 2: {2, 0}, 3: {3, 0}, 4: {9, 9},
		},
	}, 0, 3)
	require.NoError(t, err)

	return m
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_NilMap(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, dijkstra.Source(0))
	assert.ErrorIs(t, err, dijkstra.ErrNilMap)
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	m := line(t)
	_, _, err := dijkstra.Dijkstra(m, dijkstra.Source(5))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	_, _, err = dijkstra.Dijkstra(m, dijkstra.Source(-1))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestWithMaxDistance_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
}

// ------------------------------------------------------------------------
// 2. Distances and paths
// ------------------------------------------------------------------------

func TestDijkstra_Line(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(line(t), dijkstra.Source(0))
	require.NoError(t, err)
	assert.Nil(t, prev, "prev must be nil without WithReturnPath")

	assert.Equal(t, 0.0, dist[0])
	assert.Equal(t, 1.0, dist[1])
	assert.Equal(t, 2.0, dist[2])
	assert.Equal(t, 3.0, dist[3])
	assert.True(t, math.IsInf(dist[4], 1), "isolated node must be unreachable")
}

func TestDijkstra_TriangleWithPath(t *testing.T) {
	// 0(0,0)—1(3,4) costs 5; 0—2(3,0) costs 3; 2—1 costs 4. Direct edge wins.
	m, err := geomap.New(geomap.Description{
		Roads: [][]int{{2, 1}, {0, 2}, {0, 1}},
		Intersections: map[int]geomap.Point{
			0: {0, 0}, 1: {3, 4}, 2: {3, 0},
		},
	}, 0, 1)
	require.NoError(t, err)

	dist, prev, err := dijkstra.Dijkstra(m, dijkstra.Source(0), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, 5.0, dist[1])
	assert.Equal(t, 3.0, dist[2])
	assert.Equal(t, 0, prev[1])
	assert.Equal(t, []int{0, 1}, dijkstra.PathTo(prev, 0, 1))
	assert.Equal(t, []int{0}, dijkstra.PathTo(prev, 0, 0))
}

func TestDijkstra_MaxDistance(t *testing.T) {
	dist, _, err := dijkstra.Dijkstra(line(t), dijkstra.Source(0), dijkstra.WithMaxDistance(1.5))
	require.NoError(t, err)
	assert.Equal(t, 1.0, dist[1])
	assert.True(t, math.IsInf(dist[2], 1))
	assert.True(t, math.IsInf(dist[3], 1))
}

func TestPathTo_Unreached(t *testing.T) {
	_, prev, err := dijkstra.Dijkstra(line(t), dijkstra.Source(0), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, dijkstra.PathTo(prev, 0, 3))
	assert.Nil(t, dijkstra.PathTo(prev, 0, 4))
}
