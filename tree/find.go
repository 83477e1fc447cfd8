package tree

import "fmt"

// Find returns every node selected under opts. With default options (match
// everything, Matches filter) the result is the flattened pre-order listing
// of the whole tree. In copy mode the returned nodes belong to an independent
// clone; pass InPlace to get the caller's own nodes back.
func Find(root Node, opts *Options) ([]Node, error) {
	o := opts.resolved()
	root, err := o.input(root)
	if err != nil {
		return nil, err
	}
	entries, err := selectEntries(root, o)
	if err != nil {
		return nil, err
	}
	nodes := make([]Node, len(entries))
	for i, e := range entries {
		nodes[i] = e.node
	}
	return nodes, nil
}

// FindFirst returns the first node selected under opts in result order, or
// nil if nothing is selected.
func FindFirst(root Node, opts *Options) (Node, error) {
	o := opts.resolved()
	o.FirstOnly = true
	nodes, err := Find(root, o)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, nil
	}
	return nodes[0], nil
}

// FindValues passes every selected node through get and collects the derived
// values. Traversal and filter semantics are identical to Find.
func FindValues(root Node, get GetFunc, opts *Options) ([]any, error) {
	if get == nil {
		return nil, fmt.Errorf("%w: get function", ErrMissingOption)
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
	vals := make([]any, len(entries))
	for i, e := range entries {
		vals[i] = get(e.node, e.parent, e.depth)
	}
	return vals, nil
}

// FindParent returns the immediate parent of the first node matching the
// predicate. A match on the root returns (nil, nil): the root has no parent.
// No match at all returns ErrNotFound, so the two cases are distinguishable
// with errors.Is.
func FindParent(root Node, opts *Options) (Node, error) {
	o := opts.resolved()
	o.Filter = Matches
	o.FirstOnly = true
	root, err := o.input(root)
	if err != nil {
		return nil, err
	}
	entries, err := selectEntries(root, o)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("find parent: %w", ErrNotFound)
	}
	return entries[0].parent, nil
}

// FindPath returns the ordered nodes from the root down to the first match,
// both ends inclusive. No match yields an empty path and no error.
func FindPath(root Node, opts *Options) ([]Node, error) {
	o := opts.resolved()
	o.Filter = InclusiveAncestors
	o.FirstOnly = true
	return Find(root, o)
}

// FindSubtree returns the first matching node with its subtree structurally
// intact, or nil if nothing matches.
func FindSubtree(root Node, opts *Options) (Node, error) {
	o := opts.resolved()
	o.Filter = Matches
	return FindFirst(root, o)
}

// Contains reports whether at least one match exists anywhere in the tree.
func Contains(root Node, opts *Options) (bool, error) {
	o := opts.resolved()
	o.Filter = Matches
	o.FirstOnly = true
	// Selection only; there is nothing to protect with a clone.
	o.InPlace = true
	if root == nil {
		return false, fmt.Errorf("%w: root", ErrNilNode)
	}
	entries, err := selectEntries(root, o)
	if err != nil {
		return false, err
	}
	return len(entries) > 0, nil
}
