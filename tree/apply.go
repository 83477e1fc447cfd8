package tree

import "fmt"

// Apply invokes fn once on every node selected under opts and returns the
// root it operated on (the caller's tree with InPlace, a clone otherwise).
//
// The filter decides who fn touches: under Descendants the matched node
// itself is never visited, only its subtree; under Ancestors the match is
// likewise excluded. fn mutates the node's attributes in place and must not
// replace the node reference.
func Apply(root Node, fn ApplyFunc, opts *Options) (Node, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: apply function", ErrMissingOption)
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
	for _, e := range entries {
		fn(e.node, e.parent, e.depth)
	}
	return root, nil
}
