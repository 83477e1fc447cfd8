package tree

import "fmt"

// ReduceFunc folds a selected node into the accumulator and returns the new
// accumulator value.
type ReduceFunc func(acc any, n, parent Node, depth int) any

// Reduce folds fn over every node selected under opts, in result order,
// starting from initial. Traversal and filter semantics are identical to
// Find.
func Reduce(root Node, fn ReduceFunc, initial any, opts *Options) (any, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: reduce function", ErrMissingOption)
	}
	o := opts.resolved()
	root, err := o.input(root)
	if err != nil {
		return nil, err
	}
	entries, err := selectEntries(root, o)
	if err != nil {
		return nil, err
	}
	acc := initial
	for _, e := range entries {
		acc = fn(acc, e.node, e.parent, e.depth)
	}
	return acc, nil
}
