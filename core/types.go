// Package core: type and sentinel declarations for the graph store.
//
// This file declares Node, Edge, the canonical edge key, PathResult,
// and the sentinel errors shared across the engine.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that a node or endpoint ID is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates AddNode was rejected because a node with the
	// same ID already exists.
	ErrDuplicateNode = errors.New("core: node already exists")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrDuplicateEdge indicates AddEdge was rejected because an equal edge
	// (same endpoints in either order when undirected) already exists.
	ErrDuplicateEdge = errors.New("core: edge already exists")

	// ErrEndpointNotFound indicates AddEdge referenced an endpoint ID absent
	// from the node set.
	ErrEndpointNotFound = errors.New("core: edge endpoint not found")

	// ErrEdgeNotFound indicates RemoveEdge referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrUnreachable indicates a shortest-path query found no connecting path.
	// It is an expected outcome, not a failure of the query itself.
	ErrUnreachable = errors.New("core: no connecting path")
)

// Node represents a vertex in the graph.
//
// ID uniquely identifies the Node within its Graph. X and Y are presentation
// coordinates owned by the rendering front end; the algorithms never read them.
type Node struct {
	// ID is the unique identifier for this Node.
	ID string

	// X is the horizontal display coordinate (opaque to the engine).
	X float64

	// Y is the vertical display coordinate (opaque to the engine).
	Y float64
}

// Edge represents a weighted connection between two node IDs.
//
// Edges store endpoint IDs, never node handles, so node removal is a pure
// id-based filter. Directed controls both identity (see key) and how the
// adjacency builders mirror the edge.
type Edge struct {
	// From is the start node ID.
	From string

	// To is the end node ID.
	To string

	// Weight is the cost of the edge.
	Weight float64

	// Directed marks the edge one-way (true) or bidirectional (false).
	Directed bool
}

// edgeKey is the canonical value identity of an Edge.
// Undirected edges sort their endpoints lexicographically so that (a,b) and
// (b,a) collide; directed edges keep endpoint order and never collide with
// undirected edges because the directed flag is part of the key.
type edgeKey struct {
	a, b     string
	directed bool
}

// key returns the canonical identity key of e.
func (e Edge) key() edgeKey {
	if e.Directed {
		return edgeKey{a: e.From, b: e.To, directed: true}
	}
	if e.To < e.From {
		return edgeKey{a: e.To, b: e.From}
	}

	return edgeKey{a: e.From, b: e.To}
}

// PathResult is the uniform result shape shared by every shortest-path entry
// point (bfs.ShortestPath, dijkstra.ShortestPath, floyd.Result.Path).
//
// Path holds the ordered node IDs from start to end inclusive; Distance is
// the total path cost (hop count for the unweighted BFS variant). A query
// either yields a complete PathResult or an explicit error — never a partial
// or ambiguous result.
type PathResult struct {
	Path     []string
	Distance float64
}
