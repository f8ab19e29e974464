// Package bfs provides breadth-first traversal over a core.Graph and the
// unweighted (hop-count) shortest path built on top of it.
//
// Both entry points rebuild the adjacency-list view from the current graph
// state at call time; neighbor order within a level follows edge-insertion
// order, making every visit sequence deterministic.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/graphpad/adjacency"
	"github.com/katalvlaran/graphpad/core"
)

// BFS runs breadth-first traversal on g starting from startID and returns
// the visit sequence in level order, each reachable node exactly once.
//
// A startID absent from the graph is not an error: it has no neighbors, so
// the result is the singleton [startID] at depth 0. This keeps the traversal
// total over any input, which the editing front ends rely on.
// Complexity: O(V + E).
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	list := adjacency.BuildList(g)
	n := len(list)

	res := &Result{
		Order:  make([]string, 0, n),
		Depth:  make(map[string]int, n),
		Parent: make(map[string]string, n),
	}

	visited := make(map[string]bool, n)
	visited[startID] = true
	res.Depth[startID] = 0
	queue := []string{startID}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		res.Order = append(res.Order, cur)
		if err := o.OnVisit(cur, res.Depth[cur]); err != nil {
			return nil, fmt.Errorf("bfs: OnVisit at %q: %w", cur, err)
		}

		for _, nb := range list[cur] {
			if visited[nb.ID] {
				continue
			}
			visited[nb.ID] = true
			res.Depth[nb.ID] = res.Depth[cur] + 1
			res.Parent[nb.ID] = cur
			queue = append(queue, nb.ID)
		}
	}

	return res, nil
}

// ShortestPath finds the path with the fewest edges from startID to endID,
// ignoring edge weights. Distance is the hop count: len(path) - 1.
//
// startID == endID short-circuits to the trivial path [startID] at distance
// 0. The search stops as soon as endID is dequeued; if endID is never
// reached (including when either ID is absent from the graph), the result is
// core.ErrUnreachable.
// Complexity: O(V + E).
func ShortestPath(g *core.Graph, startID, endID string) (*core.PathResult, error) {
	if startID == endID {
		return &core.PathResult{Path: []string{startID}, Distance: 0}, nil
	}

	list := adjacency.BuildList(g)

	parent := make(map[string]string, len(list))
	visited := make(map[string]bool, len(list))
	visited[startID] = true
	queue := []string{startID}

	found := false
	for len(queue) > 0 && !found {
		cur := queue[0]
		queue = queue[1:]
		if cur == endID {
			found = true

			break
		}
		for _, nb := range list[cur] {
			if visited[nb.ID] {
				continue
			}
			visited[nb.ID] = true
			parent[nb.ID] = cur
			queue = append(queue, nb.ID)
		}
	}
	if !found {
		return nil, core.ErrUnreachable
	}

	// Walk the parent chain back from endID, then reverse.
	path := []string{endID}
	for cur := endID; cur != startID; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return &core.PathResult{Path: path, Distance: float64(len(path) - 1)}, nil
}
