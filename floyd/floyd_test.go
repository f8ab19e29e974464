package floyd_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphpad/core"
	"github.com/katalvlaran/graphpad/dijkstra"
	"github.com/katalvlaran/graphpad/floyd"
)

type edge struct {
	from, to string
	w        float64
	directed bool
}

func build(t *testing.T, ids []string, edges []edge) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range ids {
		require.NoError(t, g.AddNode(core.Node{ID: id}))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(core.Edge{From: e.from, To: e.to, Weight: e.w, Directed: e.directed}))
	}

	return g
}

func TestAllPairs_MatchesDijkstraOnEveryPair(t *testing.T) {
	// Weighted graph with a tempting expensive shortcut and a pendant node.
	g := build(t,
		[]string{"A", "B", "C", "D", "E"},
		[]edge{
			{"A", "B", 2, false},
			{"B", "C", 3, false},
			{"A", "C", 10, false},
			{"C", "D", 1, false},
			{"D", "E", 4, false},
		},
	)

	res, err := floyd.AllPairs(g)
	require.NoError(t, err)

	for _, from := range res.Order {
		dist, _ := dijkstra.Distances(g, from)
		for _, to := range res.Order {
			got, err := res.Distance(from, to)
			require.NoError(t, err)
			assert.Equal(t, dist[to], got, "pair %s→%s", from, to)
		}
	}
}

func TestAllPairs_PathReconstruction(t *testing.T) {
	g := build(t,
		[]string{"A", "B", "C"},
		[]edge{{"A", "B", 2, false}, {"B", "C", 3, false}, {"A", "C", 10, false}},
	)

	res, err := floyd.AllPairs(g)
	require.NoError(t, err)

	p, err := res.Path("A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, p.Path)
	assert.Equal(t, 5.0, p.Distance)

	// Undirected: the reverse pair mirrors the route.
	p, err = res.Path("C", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, p.Path)
	assert.Equal(t, 5.0, p.Distance)
}

func TestAllPairs_DisconnectedPairsStayInfinite(t *testing.T) {
	g := build(t,
		[]string{"A", "B", "P", "Q"},
		[]edge{{"A", "B", 1, false}, {"P", "Q", 1, false}},
	)

	res, err := floyd.AllPairs(g)
	require.NoError(t, err)

	d, err := res.Distance("A", "P")
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, 1))

	_, err = res.Path("A", "P")
	assert.ErrorIs(t, err, core.ErrUnreachable)

	// Pairs inside each component are unaffected.
	d, err = res.Distance("P", "Q")
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)
}

func TestAllPairs_DirectedAsymmetry(t *testing.T) {
	g := build(t,
		[]string{"A", "B", "C"},
		[]edge{{"A", "B", 1, true}, {"B", "C", 1, true}},
	)

	res, err := floyd.AllPairs(g)
	require.NoError(t, err)

	p, err := res.Path("A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, p.Path)
	assert.Equal(t, 2.0, p.Distance)

	_, err = res.Path("C", "A")
	assert.ErrorIs(t, err, core.ErrUnreachable)
}

func TestAllPairs_SameStartEnd(t *testing.T) {
	g := build(t, []string{"A", "B"}, []edge{{"A", "B", 5, false}})

	res, err := floyd.AllPairs(g)
	require.NoError(t, err)

	p, err := res.Path("A", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, p.Path)
	assert.Zero(t, p.Distance)
}

func TestAllPairs_UnknownIDs(t *testing.T) {
	g := build(t, []string{"A"}, nil)

	res, err := floyd.AllPairs(g)
	require.NoError(t, err)

	_, err = res.Path("A", "ghost")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = res.Distance("ghost", "A")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestAllPairs_SnapshotIgnoresLaterMutation(t *testing.T) {
	g := build(t, []string{"A", "B"}, []edge{{"A", "B", 3, false}})

	res, err := floyd.AllPairs(g)
	require.NoError(t, err)

	require.NoError(t, g.AddNode(core.Node{ID: "C"}))
	require.NoError(t, g.AddEdge(core.Edge{From: "A", To: "B", Weight: 1, Directed: true}))

	d, err := res.Distance("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 3.0, d)
	_, err = res.Distance("A", "C")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}
