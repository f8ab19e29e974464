// Package floyd implements the Floyd–Warshall all-pairs shortest-path
// algorithm with next-hop path reconstruction.
//
// AllPairs snapshots the graph into a dense distance matrix (+Inf marks "no
// path") and runs the classic triple loop, intermediate node outermost. A
// parallel next-hop matrix records, for every ordered pair (i, j), the first
// node after i on a shortest i→j path, so any concrete route can be rebuilt
// in O(path length) without re-running the algorithm.
//
// Complexity: O(V³) time, O(V²) space. Intended for dense or small graphs;
// for a single source prefer package dijkstra.
package floyd

import (
	"math"

	"github.com/katalvlaran/graphpad/adjacency"
	"github.com/katalvlaran/graphpad/core"
	"github.com/katalvlaran/graphpad/matrix"
)

// noHop marks a pair with no known path in the next-hop matrix.
const noHop = -1

// Result holds the distance and next-hop matrices of one AllPairs run,
// indexed by the node-insertion order frozen at snapshot time.
type Result struct {
	// Dist[i][j] is the shortest distance from Order[i] to Order[j],
	// +Inf when no path exists.
	Dist *matrix.Dense

	// Next[i][j] is the row index of the node following Order[i] on a
	// shortest path to Order[j], or noHop when unreachable.
	Next [][]int

	// Order lists node IDs in the row/column order of both matrices.
	Order []string

	index map[string]int
}

// AllPairs computes shortest distances between every ordered pair of nodes
// in g. The result is a self-contained snapshot: later mutations of g do
// not affect it.
func AllPairs(g *core.Graph) (*Result, error) {
	adj, err := adjacency.BuildMatrix(g)
	if err != nil {
		return nil, err
	}

	n := len(adj.Order)
	dist := adj.Data // BuildMatrix returns a fresh matrix, safe to mutate in place

	next := make([][]int, n)
	for i := 0; i < n; i++ {
		next[i] = make([]int, n)
		for j := 0; j < n; j++ {
			switch {
			case i == j:
				next[i][j] = i
			case !math.IsInf(mustAt(dist, i, j), 1):
				next[i][j] = j
			default:
				next[i][j] = noHop
			}
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			dik := mustAt(dist, i, k)
			if math.IsInf(dik, 1) {
				continue // nothing routed through k can improve row i
			}
			for j := 0; j < n; j++ {
				dkj := mustAt(dist, k, j)
				if math.IsInf(dkj, 1) {
					continue
				}
				if cand := dik + dkj; cand < mustAt(dist, i, j) {
					_ = dist.Set(i, j, cand)
					next[i][j] = next[i][k]
				}
			}
		}
	}

	return &Result{Dist: dist, Next: next, Order: adj.Order, index: adj.Index}, nil
}

// Distance returns the shortest distance from startID to endID, +Inf when
// no path exists. Unknown IDs report core.ErrNodeNotFound.
func (r *Result) Distance(startID, endID string) (float64, error) {
	i, j, err := r.pair(startID, endID)
	if err != nil {
		return 0, err
	}

	return mustAt(r.Dist, i, j), nil
}

// Path reconstructs a shortest path from startID to endID by following the
// next-hop matrix. startID == endID yields the trivial path at distance 0;
// an unreachable pair reports core.ErrUnreachable.
func (r *Result) Path(startID, endID string) (*core.PathResult, error) {
	i, j, err := r.pair(startID, endID)
	if err != nil {
		return nil, err
	}

	if i == j {
		return &core.PathResult{Path: []string{startID}, Distance: 0}, nil
	}
	if r.Next[i][j] == noHop {
		return nil, core.ErrUnreachable
	}

	path := []string{r.Order[i]}
	for cur := i; cur != j; {
		cur = r.Next[cur][j]
		path = append(path, r.Order[cur])
	}

	return &core.PathResult{Path: path, Distance: mustAt(r.Dist, i, j)}, nil
}

// pair resolves both IDs to matrix indices.
func (r *Result) pair(startID, endID string) (int, int, error) {
	i, ok := r.index[startID]
	if !ok {
		return 0, 0, core.ErrNodeNotFound
	}
	j, ok := r.index[endID]
	if !ok {
		return 0, 0, core.ErrNodeNotFound
	}

	return i, j, nil
}

// mustAt reads a cell whose indices are known to be in range.
func mustAt(d *matrix.Dense, i, j int) float64 {
	v, err := d.At(i, j)
	if err != nil {
		panic(err) // indices come from the snapshot's own order
	}

	return v
}
