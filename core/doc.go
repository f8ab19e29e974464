// Package core defines the central Node, Edge, and Graph types of the
// graphpad engine and the mutation primitives every front end drives.
//
// The Graph is an insertion-ordered store: nodes and edges are kept in the
// order they were added, because that order fixes the node ordering of the
// adjacency matrix and the neighbor ordering of the adjacency list, which in
// turn pins traversal and relaxation order downstream. Identity rules:
//
//   - two nodes are equal iff their IDs are equal;
//   - a directed edge is identified by (from, to, directed);
//   - an undirected edge is identified by its endpoint set — (a,b) and (b,a)
//     collide on a canonical lexicographically-sorted key.
//
// Referential integrity is absolute: an edge is only accepted while both
// endpoints exist, and removing a node removes every incident edge before the
// node itself, so dangling edges cannot exist at any point.
//
// The store is single-threaded by contract. It takes no locks; callers must
// not mutate the graph concurrently with an in-flight algorithmic query.
// Algorithm packages read value snapshots (Nodes, Edges) and never hold
// references into the live collections.
//
// Errors:
//
//	ErrEmptyNodeID      - node ID is the empty string.
//	ErrDuplicateNode    - a node with the same ID already exists.
//	ErrNodeNotFound     - requested node does not exist.
//	ErrDuplicateEdge    - an equal edge (per the identity rules) already exists.
//	ErrEndpointNotFound - an edge endpoint is absent from the node set.
//	ErrEdgeNotFound     - requested edge does not exist.
//	ErrUnreachable      - a shortest-path query found no connecting path;
//	                      a normal outcome, distinct from ErrNodeNotFound.
package core
