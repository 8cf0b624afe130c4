package pathsearch_test

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadgraph/dijkstra"
	"github.com/katalvlaran/roadgraph/geomap"
	"github.com/katalvlaran/roadgraph/internal/demomap"
	"github.com/katalvlaran/roadgraph/pathsearch"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNewEngine_NilMap verifies a nil map is rejected.
func TestNewEngine_NilMap(t *testing.T) {
	e, err := pathsearch.NewEngine(nil)
	assert.ErrorIs(t, err, pathsearch.ErrNilMap)
	assert.Nil(t, e)
}

// TestNew_ConstructionErrors verifies geomap errors surface unchanged.
func TestNew_ConstructionErrors(t *testing.T) {
	_, err := pathsearch.New(square(), 0, 9)
	assert.ErrorIs(t, err, geomap.ErrInvalidEndpoint)

	bad := square()
	bad.Roads[1] = append(bad.Roads[1], 12)
	_, err = pathsearch.ShortestPath(bad, 0, 2)
	assert.ErrorIs(t, err, geomap.ErrMalformedGraph)
}

// TestNewEngine_Seeding verifies the start is advanced and explored up front.
func TestNewEngine_Seeding(t *testing.T) {
	e, err := pathsearch.New(square(), 0, 2)
	require.NoError(t, err)

	assert.False(t, e.Done())
	assert.Equal(t, 1, e.Expanded())
	assert.Equal(t, 2, e.Paths())
	assert.Equal(t, []int{0}, e.Explored())
	assert.Equal(t, []int{1, 3}, e.Frontier())
	assert.Nil(t, e.Winner())
}

//----------------------------------------------------------------------------//
// Stepping
//----------------------------------------------------------------------------//

// TestStep_Square walks the axis-aligned cycle one step at a time.
// Nodes 1 and 3 tie on score; the earlier-enqueued node 1 is picked first.
func TestStep_Square(t *testing.T) {
	e, err := pathsearch.New(square(), 0, 2)
	require.NoError(t, err)

	done, err := e.Step()
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, []int{0, 1}, e.Explored())
	assert.Equal(t, []int{2, 3}, e.Frontier())
	assert.Equal(t, 3, e.Paths())

	done, err = e.Step()
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, []int{0, 1, 3}, e.Explored())
	assert.Equal(t, []int{2}, e.Frontier())

	done, err = e.Step()
	require.NoError(t, err)
	assert.True(t, done)
	require.NotNil(t, e.Winner())
	assert.Equal(t, []int{0, 1, 2}, e.Winner().Route())
	assert.Equal(t, 4.0, e.Winner().Cost())
	assert.Equal(t, 3, e.Expanded())

	// Further steps keep the outcome.
	done, err = e.Step()
	assert.True(t, done)
	assert.NoError(t, err)
	assert.Equal(t, 3, e.Expanded())
}

//----------------------------------------------------------------------------//
// Scenarios
//----------------------------------------------------------------------------//

// TestRun_SingleHop verifies a direct edge beats the detour.
func TestRun_SingleHop(t *testing.T) {
	d := geomap.Description{
		Roads: [][]int{{2, 1}, {0, 2}, {0, 1}},
		Intersections: map[int]geomap.Point{
			0: {0, 0},
			1: {3, 4},
			2: {0, 5},
		},
	}
	route, err := pathsearch.ShortestPath(d, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, route)
}

// TestRun_StartIsGoal verifies the zero-hop route.
func TestRun_StartIsGoal(t *testing.T) {
	e, err := pathsearch.New(square(), 3, 3)
	require.NoError(t, err)
	assert.True(t, e.Done())

	res, err := e.Run()
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []int{3}, res.Route)
	assert.Zero(t, res.Cost)
	assert.Zero(t, res.Expanded)
}

// TestRun_Unreachable verifies two components end in ErrNoPath instead of looping.
func TestRun_Unreachable(t *testing.T) {
	d := geomap.Description{
		Roads: [][]int{
			{1, 2}, {0, 2}, {0, 1}, // triangle
			{4}, {3}, // separate pair
		},
		Intersections: map[int]geomap.Point{
			0: {0, 0}, 1: {1, 0}, 2: {0, 1},
			3: {5, 5}, 4: {6, 5},
		},
	}
	e, err := pathsearch.New(d, 0, 4)
	require.NoError(t, err)

	res, err := e.Run()
	assert.ErrorIs(t, err, pathsearch.ErrNoPath)
	assert.False(t, res.Found)
	assert.Nil(t, res.Route)
	assert.Equal(t, []int{0}, e.Explored())
	assert.True(t, e.Done())
	assert.ErrorIs(t, e.Err(), pathsearch.ErrNoPath)

	_, err = pathsearch.ShortestPath(d, 4, 0)
	assert.ErrorIs(t, err, pathsearch.ErrNoPath)
}

// TestNew_ZeroCostRoad verifies maps with roads of zero length are refused
// up front; a path could otherwise circle on them at a constant score.
func TestNew_ZeroCostRoad(t *testing.T) {
	cases := []struct {
		name string
		desc geomap.Description
	}{
		{
			"SharedCoordinate",
			geomap.Description{
				Roads:         [][]int{{1, 3}, {0}, {3}, {2}},
				Intersections: map[int]geomap.Point{0: {0, 0}, 1: {0, 0}, 2: {10, 0}, 3: {5, 5}},
			},
		},
		{
			"SelfLoop",
			geomap.Description{
				Roads:         [][]int{{0, 1}, {0, 2}, {1}},
				Intersections: map[int]geomap.Point{0: {0, 0}, 1: {1, 0}, 2: {10, 0}},
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := pathsearch.New(tc.desc, 0, 2)
			assert.ErrorIs(t, err, geomap.ErrMalformedGraph)
			assert.Nil(t, e)

			_, err = pathsearch.ShortestPath(tc.desc, 0, 2)
			assert.ErrorIs(t, err, geomap.ErrMalformedGraph)
		})
	}
}

// TestRun_DeadEnd verifies a path stuck at a node without edges is retired
// and the search continues through another branch.
func TestRun_DeadEnd(t *testing.T) {
	d := geomap.Description{
		Roads: [][]int{{1, 2}, {}, {3}, {}},
		Intersections: map[int]geomap.Point{
			0: {0, 0},
			1: {1, 0}, // closest to the goal, but a dead end
			2: {0, 1},
			3: {2, 0},
		},
	}
	e, err := pathsearch.New(d, 0, 3)
	require.NoError(t, err)

	res, err := e.Run()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3}, res.Route)
	assert.InDelta(t, 1+math.Sqrt(5), res.Cost, 1e-12)
	assert.Contains(t, e.Explored(), 1)
}

// TestRun_DeadEndStart verifies a start without edges fails cleanly.
func TestRun_DeadEndStart(t *testing.T) {
	d := geomap.Description{
		Roads:         [][]int{{}, {0}},
		Intersections: map[int]geomap.Point{0: {0, 0}, 1: {1, 1}},
	}
	_, err := pathsearch.ShortestPath(d, 0, 1)
	assert.ErrorIs(t, err, pathsearch.ErrNoPath)
}

// TestRun_Demo checks the demonstration map end to end.
func TestRun_Demo(t *testing.T) {
	m := mustMap(t, demomap.Description(), demomap.Start, demomap.Goal)
	res, err := pathsearch.Search(m)
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, []int{5, 16, 37, 12, 34}, res.Route)
	assert.InDelta(t, 0.5987679064881427, res.Cost, 1e-12)
	assert.Equal(t, 4, res.Expanded)
}

// TestRun_Idempotent verifies repeated searches give identical results.
func TestRun_Idempotent(t *testing.T) {
	m := mustMap(t, demomap.Description(), 8, 24)
	first, err := pathsearch.Search(m)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := pathsearch.Search(m)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// TestRun_RouteProperties checks start/goal pairs of the demonstration map:
// the route runs start→goal over stored edges, its recorded cost equals the
// sum of those edges, and matches the Dijkstra distance.
// Without pruning a few distant pairs branch into many thousands of paths;
// those are cut off by the expansion limit and skipped.
func TestRun_RouteProperties(t *testing.T) {
	const limit = 500
	desc := demomap.Description()
	n := len(desc.Roads)
	checked := 0
	for start := 0; start < n; start++ {
		base := mustMap(t, desc, start, start)
		dist, _, err := dijkstra.Dijkstra(base, dijkstra.Source(start))
		require.NoError(t, err)

		for goal := 0; goal < n; goal++ {
			m := mustMap(t, desc, start, goal)
			res, err := pathsearch.Search(m, pathsearch.WithMaxExpansions(limit))
			if errors.Is(err, pathsearch.ErrExpansionLimit) {
				continue
			}
			require.NoError(t, err, "%d→%d", start, goal)
			checked++

			require.NotEmpty(t, res.Route)
			assert.Equal(t, start, res.Route[0])
			assert.Equal(t, goal, res.Route[len(res.Route)-1])

			cost, err := m.RouteCost(res.Route)
			require.NoError(t, err, "route %v uses a missing edge", res.Route)
			assert.Equal(t, cost, res.Cost, "%d→%d", start, goal)
			assert.InDelta(t, dist[goal], res.Cost, 1e-9, "%d→%d", start, goal)
		}
	}
	assert.GreaterOrEqual(t, checked, 1400)
}

//----------------------------------------------------------------------------//
// Options
//----------------------------------------------------------------------------//

// TestWithMaxExpansions verifies the expansion guard.
func TestWithMaxExpansions(t *testing.T) {
	m := mustMap(t, demomap.Description(), 8, 24)
	e, err := pathsearch.NewEngine(m, pathsearch.WithMaxExpansions(3))
	require.NoError(t, err)

	res, err := e.Run()
	assert.ErrorIs(t, err, pathsearch.ErrExpansionLimit)
	assert.False(t, res.Found)
	assert.Equal(t, 3, res.Expanded)

	// A generous limit does not interfere.
	res, err = pathsearch.Search(m, pathsearch.WithMaxExpansions(1000))
	require.NoError(t, err)
	assert.True(t, res.Found)

	assert.Panics(t, func() { pathsearch.WithMaxExpansions(-1) })
}

// TestWithLogger verifies steps are traced at debug level.
func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := pathsearch.ShortestPath(square(), 0, 2, pathsearch.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"advanced"`)
	assert.Contains(t, buf.String(), `"msg":"goal reached"`)
}
