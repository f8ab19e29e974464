// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// core.Graph with non-negative edge weights.
//
// The implementation uses a min-heap with the "lazy decrease-key" strategy:
// relaxing a node pushes a fresh (distance, id) entry instead of rewriting
// the old one, and stale entries are skipped when popped because the node is
// already finalized. Ties between equal tentative distances are broken by
// heap insertion sequence — the entry pushed earliest wins — which makes the
// extraction order fully deterministic for a given graph snapshot.
//
// Precondition: edge weights must be non-negative. Negative weights are
// neither validated nor corrected; behavior is undefined, matching the
// documented contract of the engine.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/graphpad/adjacency"
	"github.com/katalvlaran/graphpad/core"
)

// ShortestPath computes the minimum-cost path from startID to endID.
//
// startID == endID yields the trivial path [startID] at distance 0.
// The main loop terminates early once endID is finalized. When endID is
// never reached — including when either ID is absent from the graph — the
// result is core.ErrUnreachable.
func ShortestPath(g *core.Graph, startID, endID string) (*core.PathResult, error) {
	r := newRunner(g, startID)
	r.run(endID)

	d, ok := r.dist[endID]
	if !ok || math.IsInf(d, 1) {
		return nil, core.ErrUnreachable
	}

	return &core.PathResult{Path: r.pathTo(startID, endID), Distance: d}, nil
}

// Distances computes shortest distances from source to every node of the
// graph snapshot. The returned dist map holds +Inf for unreachable nodes;
// parent maps each reached node (except source) to its predecessor on the
// shortest path.
func Distances(g *core.Graph, source string) (dist map[string]float64, parent map[string]string) {
	r := newRunner(g, source)
	r.run("") // no target: exhaust the heap

	return r.dist, r.parent
}

// runner holds the mutable state of a single execution.
type runner struct {
	list   map[string][]adjacency.Neighbor
	dist   map[string]float64
	parent map[string]string
	done   map[string]bool
	pq     nodePQ
	seq    uint64 // monotonic push counter, the deterministic tie-break
}

// newRunner snapshots the adjacency view, initializes every node's distance
// to +Inf except source = 0, and seeds the heap with the source.
func newRunner(g *core.Graph, source string) *runner {
	list := adjacency.BuildList(g)
	n := len(list)

	r := &runner{
		list:   list,
		dist:   make(map[string]float64, n),
		parent: make(map[string]string, n),
		done:   make(map[string]bool, n),
		pq:     make(nodePQ, 0, n),
	}
	for id := range list {
		r.dist[id] = math.Inf(1)
	}
	r.dist[source] = 0

	heap.Init(&r.pq)
	r.push(source, 0)

	return r
}

// run processes the heap until empty, stopping early once target (when
// non-empty) is finalized.
func (r *runner) run(target string) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.done[item.id] {
			continue // stale lazy-decrease-key entry
		}
		r.done[item.id] = true

		if target != "" && item.id == target {
			return
		}
		r.relax(item.id)
	}
}

// relax attempts to improve the distance of each neighbor of u, walking the
// adjacency list in edge-insertion order.
func (r *runner) relax(u string) {
	du := r.dist[u]
	for _, nb := range r.list[u] {
		if r.done[nb.ID] {
			continue
		}
		cand := du + nb.Weight
		if cand < r.dist[nb.ID] {
			r.dist[nb.ID] = cand
			r.parent[nb.ID] = u
			r.push(nb.ID, cand)
		}
	}
}

// push adds a heap entry stamped with the next tie-break sequence number.
func (r *runner) push(id string, d float64) {
	r.seq++
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.seq})
}

// pathTo reconstructs start→end from the parent chain.
func (r *runner) pathTo(start, end string) []string {
	path := []string{end}
	for cur := end; cur != start; {
		cur = r.parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem is one heap entry: a node ID with its tentative distance and the
// sequence number of its push.
type nodeItem struct {
	id   string
	dist float64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by distance, then by push
// sequence for equal distances (earliest push wins).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
