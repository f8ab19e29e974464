// Package graphpad is the core engine of an interactive graph editor:
// a mutable node/edge store plus the traversal and shortest-path
// algorithms that an editing front end queries against.
//
// What lives here:
//
//	core/      — Node, Edge, Graph store with identity & referential-integrity invariants
//	adjacency/ — adjacency-list and adjacency-matrix snapshots, rebuilt per query
//	matrix/    — dense float64 matrix backing the adjacency-matrix view
//	bfs/       — breadth-first traversal + unweighted (hop-count) shortest path
//	dfs/       — depth-first traversal (iterative, explicit stack)
//	dijkstra/  — single-pair and single-source shortest paths, non-negative weights
//	floyd/     — Floyd–Warshall all-pairs distances with next-hop path rebuild
//	cmd/       — graphpad, a line-oriented console front end over the core API
//
// Design in one paragraph: front ends mutate the core.Graph through its add,
// remove and move operations; every algorithmic query rebuilds its adjacency
// view from the current graph state, runs to completion, and returns ordered
// id sequences, distances and paths. No component caches state across calls,
// so a query is a pure function of the graph snapshot and its arguments.
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	four nodes, four undirected edges; bfs.ShortestPath(g, "A", "D")
//	yields path [A B D] with distance 2.
package graphpad
