// Package bfs: options and result types for breadth-first traversal.

package bfs

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// OnVisit is called when a vertex is dequeued and recorded, with its
	// hop depth from the start. If it returns an error, BFS aborts and
	// propagates that error.
	OnVisit func(id string, depth int) error
}

// DefaultOptions returns Options with a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(string, int) error { return nil },
	}
}

// WithOnVisit registers a callback to run on each visit; returning an error
// from the callback stops the traversal.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices visited, in level order.
//   - Depth: map from node ID to its hop distance from the start.
//   - Parent: map from node ID to its predecessor in the BFS tree
//     (the start node has no entry).
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}
