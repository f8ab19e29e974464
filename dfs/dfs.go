// Package dfs provides depth-first traversal over a core.Graph.
//
// The walk is iterative with an explicit stack, so its depth is bounded by
// the heap rather than goroutine stack growth. It reproduces recursive
// pre-order exactly: neighbors are pushed in reverse adjacency-list order so
// the first-inserted neighbor is explored first.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphpad/adjacency"
	"github.com/katalvlaran/graphpad/core"
)

// frame is one pending visit on the explicit DFS stack.
type frame struct {
	id     string
	parent string // empty for the root
}

// DFS runs depth-first traversal on g starting from startID and returns the
// visit sequence in pre-order, each reachable node exactly once.
//
// A startID absent from the graph is not an error: it is visited first like
// any root, has no neighbors, and the result is the singleton [startID].
// Complexity: O(V + E).
func DFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	list := adjacency.BuildList(g)
	n := len(list)

	res := &Result{
		Order:   make([]string, 0, n),
		Parent:  make(map[string]string, n),
		Visited: make(map[string]bool, n),
	}

	stack := []frame{{id: startID}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// A node may sit on the stack more than once when several neighbors
		// point at it; only the first pop visits it.
		if res.Visited[top.id] {
			continue
		}
		res.Visited[top.id] = true
		if top.parent != "" {
			res.Parent[top.id] = top.parent
		}
		res.Order = append(res.Order, top.id)
		if err := o.OnVisit(top.id); err != nil {
			return nil, fmt.Errorf("dfs: OnVisit at %q: %w", top.id, err)
		}

		// Reverse push keeps adjacency-list (edge-insertion) order on pop.
		nbs := list[top.id]
		for i := len(nbs) - 1; i >= 0; i-- {
			if !res.Visited[nbs[i].ID] {
				stack = append(stack, frame{id: nbs[i].ID, parent: top.id})
			}
		}
	}

	return res, nil
}
