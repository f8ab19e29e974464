// Package dfs: options and result types for depth-first traversal.

package dfs

// Option configures DFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize DFS execution.
type Options struct {
	// OnVisit, if set, is invoked when a vertex is first discovered
	// (pre-order). Returning an error aborts the traversal.
	OnVisit func(id string) error
}

// DefaultOptions returns Options with a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(string) error { return nil },
	}
}

// WithOnVisit registers fn as the pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records vertices in DFS pre-order, each exactly once.
	Order []string

	// Parent maps each node ID to the node from which it was discovered.
	// The start node has no entry.
	Parent map[string]string

	// Visited flags which node IDs were reached.
	Visited map[string]bool
}
