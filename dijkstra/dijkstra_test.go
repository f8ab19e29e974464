package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphpad/core"
	"github.com/katalvlaran/graphpad/dijkstra"
)

// edge is a compact undirected weighted edge for test fixtures.
type edge struct {
	from, to string
	w        float64
}

func build(t *testing.T, ids []string, edges []edge) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range ids {
		require.NoError(t, g.AddNode(core.Node{ID: id}))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(core.Edge{From: e.from, To: e.to, Weight: e.w}))
	}

	return g
}

func TestShortestPath_PrefersCheapDetour(t *testing.T) {
	// A—B (2), B—C (3), A—C (10): the two-hop detour at cost 5 beats the
	// direct edge at cost 10.
	g := build(t,
		[]string{"A", "B", "C"},
		[]edge{{"A", "B", 2}, {"B", "C", 3}, {"A", "C", 10}},
	)

	res, err := dijkstra.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
	assert.Equal(t, 5.0, res.Distance)
}

func TestShortestPath_SameStartEnd(t *testing.T) {
	g := build(t, []string{"A", "B"}, []edge{{"A", "B", 7}})

	res, err := dijkstra.ShortestPath(g, "A", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Path)
	assert.Zero(t, res.Distance)
}

func TestShortestPath_Unreachable(t *testing.T) {
	g := build(t, []string{"A", "B", "Z"}, []edge{{"A", "B", 1}})

	_, err := dijkstra.ShortestPath(g, "A", "Z")
	assert.ErrorIs(t, err, core.ErrUnreachable)

	_, err = dijkstra.ShortestPath(g, "A", "ghost")
	assert.ErrorIs(t, err, core.ErrUnreachable)
	_, err = dijkstra.ShortestPath(g, "ghost", "A")
	assert.ErrorIs(t, err, core.ErrUnreachable)
}

func TestShortestPath_DirectedRespected(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"A", "B"} {
		require.NoError(t, g.AddNode(core.Node{ID: id}))
	}
	require.NoError(t, g.AddEdge(core.Edge{From: "A", To: "B", Weight: 4, Directed: true}))

	res, err := dijkstra.ShortestPath(g, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, 4.0, res.Distance)

	_, err = dijkstra.ShortestPath(g, "B", "A")
	assert.ErrorIs(t, err, core.ErrUnreachable)
}

func TestShortestPath_ZeroWeightEdges(t *testing.T) {
	g := build(t,
		[]string{"A", "B", "C"},
		[]edge{{"A", "B", 0}, {"B", "C", 0}},
	)

	res, err := dijkstra.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
	assert.Zero(t, res.Distance)
}

func TestDijkstra_EqualDistanceTieBreak(t *testing.T) {
	// Two cost-2 routes to D: through B (edge A—B inserted first) and
	// through C. The earliest-pushed heap entry wins, so the reported path
	// must run through B on every execution.
	g := build(t,
		[]string{"A", "B", "C", "D"},
		[]edge{{"A", "B", 1}, {"A", "C", 1}, {"B", "D", 1}, {"C", "D", 1}},
	)

	for i := 0; i < 50; i++ {
		res, err := dijkstra.ShortestPath(g, "A", "D")
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "D"}, res.Path)
		assert.Equal(t, 2.0, res.Distance)
	}
}

func TestDistances_FullSweep(t *testing.T) {
	g := build(t,
		[]string{"A", "B", "C", "D", "Z"},
		[]edge{{"A", "B", 2}, {"B", "C", 3}, {"A", "C", 10}, {"C", "D", 1}},
	)

	dist, parent := dijkstra.Distances(g, "A")
	assert.Equal(t, 0.0, dist["A"])
	assert.Equal(t, 2.0, dist["B"])
	assert.Equal(t, 5.0, dist["C"])
	assert.Equal(t, 6.0, dist["D"])
	assert.True(t, math.IsInf(dist["Z"], 1))

	assert.Equal(t, "A", parent["B"])
	assert.Equal(t, "B", parent["C"])
	assert.Equal(t, "C", parent["D"])
	_, ok := parent["Z"]
	assert.False(t, ok)
}
