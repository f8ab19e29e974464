// Package adjacency derives adjacency-list and adjacency-matrix views from a
// core.Graph snapshot. Views are built on demand and never cached: each
// algorithmic query rebuilds its view from the current graph state, so a view
// is always a pure function of the graph at call time.
//
// Ordering is the load-bearing contract of this package:
//
//   - BuildList appends neighbor entries in edge-insertion order, which fixes
//     traversal and relaxation order downstream;
//   - BuildMatrix fixes its row/column ordering to node-insertion order and
//     reports that ordering back so callers can map indices to IDs.
package adjacency

import (
	"math"

	"github.com/katalvlaran/graphpad/core"
	"github.com/katalvlaran/graphpad/matrix"
)

// Neighbor is one (neighbor ID, edge weight) entry of an adjacency list.
type Neighbor struct {
	// ID is the neighboring node's ID.
	ID string

	// Weight is the weight of the connecting edge.
	Weight float64
}

// BuildList builds the adjacency-list view of g: a map from each node ID to
// the ordered sequence of its neighbors. Every node owns an entry, isolated
// nodes an empty one. For each edge the forward pair (To, Weight) is appended
// to From's list; undirected edges also append the reverse pair to To's list.
// Complexity: O(V + E).
func BuildList(g *core.Graph) map[string][]Neighbor {
	nodes := g.Nodes()
	list := make(map[string][]Neighbor, len(nodes))
	for _, n := range nodes {
		list[n.ID] = nil
	}

	for _, e := range g.Edges() {
		list[e.From] = append(list[e.From], Neighbor{ID: e.To, Weight: e.Weight})
		if !e.Directed {
			list[e.To] = append(list[e.To], Neighbor{ID: e.From, Weight: e.Weight})
		}
	}

	return list
}

// Matrix is the adjacency-matrix view of a graph snapshot: an n×n distance
// table plus the fixed node ordering that maps indices back to IDs.
//
// Data[i][j] holds the weight of the direct edge i→j, +Inf when no direct
// edge exists, and 0 on the diagonal.
type Matrix struct {
	// Order lists node IDs in node-insertion order; Order[i] names row/col i.
	Order []string

	// Index maps node ID → row/column index in Data (inverse of Order).
	Index map[string]int

	// Data is the n×n weight table.
	Data *matrix.Dense
}

// BuildMatrix builds the adjacency-matrix view of g over its node-insertion
// ordering. Off-diagonal cells start at +Inf, the diagonal at 0; each edge
// sets its cell (and the symmetric cell when undirected). The store rejects
// duplicate edges, so no min-merge is needed: a written cell is final.
// Complexity: O(V² + E).
func BuildMatrix(g *core.Graph) (*Matrix, error) {
	nodes := g.Nodes()
	n := len(nodes)

	order := make([]string, n)
	index := make(map[string]int, n)
	for i, node := range nodes {
		order[i] = node.ID
		index[node.ID] = i
	}

	data, err := matrix.NewFilled(n, n, math.Inf(1))
	if err != nil {
		return nil, err
	}
	var i int
	for i = 0; i < n; i++ {
		if err = data.Set(i, i, 0); err != nil {
			return nil, err
		}
	}

	for _, e := range g.Edges() {
		fi, ti := index[e.From], index[e.To]
		if err = data.Set(fi, ti, e.Weight); err != nil {
			return nil, err
		}
		if !e.Directed {
			if err = data.Set(ti, fi, e.Weight); err != nil {
				return nil, err
			}
		}
	}

	return &Matrix{Order: order, Index: index, Data: data}, nil
}
