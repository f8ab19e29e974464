// Package core: Graph store implementation.
//
// The store keeps nodes and edges in insertion-ordered slices with index
// maps for O(1) lookup. Mutations rebuild the affected index map when a
// removal shifts slice positions; graphs are small and human-edited, so the
// O(n) reindex is irrelevant next to the determinism it buys.

package core

// Graph is the in-memory node/edge store the front ends mutate and the
// algorithm packages snapshot.
type Graph struct {
	nodes     []Node
	nodeIndex map[string]int // node ID → position in nodes

	edges     []Edge
	edgeIndex map[edgeKey]int // canonical key → position in edges
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodeIndex: make(map[string]int),
		edgeIndex: make(map[edgeKey]int),
	}
}

// AddNode inserts n into the graph.
// Returns ErrEmptyNodeID for an empty ID and ErrDuplicateNode when a node
// with the same ID already exists; the graph is unchanged on failure.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrEmptyNodeID
	}
	if _, exists := g.nodeIndex[n.ID]; exists {
		return ErrDuplicateNode
	}
	g.nodeIndex[n.ID] = len(g.nodes)
	g.nodes = append(g.nodes, n)

	return nil
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodeIndex[id]

	return ok
}

// NodeByID returns a copy of the node with the given ID,
// or ErrNodeNotFound if absent.
// Complexity: O(1).
func (g *Graph) NodeByID(id string) (Node, error) {
	i, ok := g.nodeIndex[id]
	if !ok {
		return Node{}, ErrNodeNotFound
	}

	return g.nodes[i], nil
}

// MoveNode updates the display coordinates of the node with the given ID.
// Coordinates are opaque to the engine; this exists for the editing front end.
// Returns ErrNodeNotFound if the node is absent.
// Complexity: O(1).
func (g *Graph) MoveNode(id string, x, y float64) error {
	i, ok := g.nodeIndex[id]
	if !ok {
		return ErrNodeNotFound
	}
	g.nodes[i].X = x
	g.nodes[i].Y = y

	return nil
}

// RemoveNode deletes the node with the given ID and, first, every edge with
// that ID as either endpoint, so no dangling edge ever exists.
// Returns ErrNodeNotFound if the node is absent.
// Complexity: O(V + E).
func (g *Graph) RemoveNode(id string) error {
	i, ok := g.nodeIndex[id]
	if !ok {
		return ErrNodeNotFound
	}

	// Cascade: drop incident edges before the node itself, preserving the
	// insertion order of the survivors.
	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.From == id || e.To == id {
			continue
		}
		kept = append(kept, e)
	}
	g.edges = kept
	g.reindexEdges()

	g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)
	g.reindexNodes()

	return nil
}

// AddEdge inserts e into the graph.
// Fails with ErrEmptyNodeID if either endpoint ID is empty, with
// ErrEndpointNotFound if either endpoint is absent from the node set, and
// with ErrDuplicateEdge if an equal edge already exists — for undirected
// edges, in either endpoint order. The graph is unchanged on failure.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(e Edge) error {
	if e.From == "" || e.To == "" {
		return ErrEmptyNodeID
	}
	if !g.HasNode(e.From) || !g.HasNode(e.To) {
		return ErrEndpointNotFound
	}
	k := e.key()
	if _, exists := g.edgeIndex[k]; exists {
		return ErrDuplicateEdge
	}
	g.edgeIndex[k] = len(g.edges)
	g.edges = append(g.edges, e)

	return nil
}

// HasEdge reports whether an edge between startID and endID exists:
// a directed edge stored exactly as startID→endID, or an undirected edge
// between the two in either order.
// Complexity: O(1).
func (g *Graph) HasEdge(startID, endID string) bool {
	_, _, ok := g.lookupEdge(startID, endID)

	return ok
}

// RemoveEdge deletes the edge between startID and endID.
// Resolution goes through the same canonical keys as AddEdge: a directed
// startID→endID edge matches first, otherwise an undirected edge between the
// two endpoints matches in either insertion order. Returns ErrEdgeNotFound
// when neither exists.
// Complexity: O(E) due to reindexing.
func (g *Graph) RemoveEdge(startID, endID string) error {
	_, i, ok := g.lookupEdge(startID, endID)
	if !ok {
		return ErrEdgeNotFound
	}
	g.edges = append(g.edges[:i], g.edges[i+1:]...)
	g.reindexEdges()

	return nil
}

// Nodes returns the nodes as a value-copied slice in insertion order.
// Mutating the result never affects the graph.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Edges returns the edges as a value-copied slice in insertion order.
// Mutating the result never affects the graph.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// NodeCount returns the number of nodes. O(1).
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges. O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Clone returns an independent deep copy of the graph.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := NewGraph()
	c.nodes = g.Nodes()
	c.edges = g.Edges()
	c.reindexNodes()
	c.reindexEdges()

	return c
}

// lookupEdge resolves (startID, endID) to a stored edge: directed exact
// match first, then the undirected canonical key.
func (g *Graph) lookupEdge(startID, endID string) (Edge, int, bool) {
	if i, ok := g.edgeIndex[Edge{From: startID, To: endID, Directed: true}.key()]; ok {
		return g.edges[i], i, true
	}
	if i, ok := g.edgeIndex[Edge{From: startID, To: endID}.key()]; ok {
		return g.edges[i], i, true
	}

	return Edge{}, 0, false
}

// reindexNodes rebuilds nodeIndex from the nodes slice.
func (g *Graph) reindexNodes() {
	g.nodeIndex = make(map[string]int, len(g.nodes))
	for i, n := range g.nodes {
		g.nodeIndex[n.ID] = i
	}
}

// reindexEdges rebuilds edgeIndex from the edges slice.
func (g *Graph) reindexEdges() {
	g.edgeIndex = make(map[edgeKey]int, len(g.edges))
	for i, e := range g.edges {
		g.edgeIndex[e.key()] = i
	}
}
