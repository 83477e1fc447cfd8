package tree

import "fmt"

// Insert places newNode relative to the first node matching the predicate and
// returns the root: Below appends it as the trailing child of the match
// (creating the children field if the match was a leaf), Before and After
// splice it into the parent's child list as the adjacent sibling. Before and
// After on a match that is the root fail with ErrRootSibling; no match fails
// with ErrNotFound. In copy mode newNode is cloned too, so the returned tree
// shares nothing with the caller's values.
func Insert(root, newNode Node, dir Direction, opts *Options) (Node, error) {
	if newNode == nil {
		return nil, fmt.Errorf("%w: node to insert", ErrNilNode)
	}
	o := opts.resolved()
	o.Filter = Matches
	o.FirstOnly = true

	root, err := o.input(root)
	if err != nil {
		return nil, err
	}
	if !o.InPlace {
		if newNode, err = cloneTree(newNode); err != nil {
			return nil, fmt.Errorf("clone node to insert: %w", err)
		}
	}

	entries, err := selectEntries(root, o)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("insert target: %w", ErrNotFound)
	}
	e := entries[0]

	switch dir {
	case Below:
		kids, err := childList(e.node, o.ChildrenKey)
		if err != nil {
			return nil, err
		}
		setChildList(e.node, o.ChildrenKey, append(kids, newNode))

	case Before, After:
		if e.parent == nil {
			return nil, fmt.Errorf("insert %s: %w", dir, ErrRootSibling)
		}
		kids, err := childList(e.parent, o.ChildrenKey)
		if err != nil {
			return nil, err
		}
		at := siblingIndex(kids, e.node)
		if at < 0 {
			// The match was reached through this parent, so it must be here.
			return nil, fmt.Errorf("insert %s: match not in parent child list", dir)
		}
		if dir == After {
			at++
		}
		spliced := make([]Node, 0, len(kids)+1)
		spliced = append(spliced, kids[:at]...)
		spliced = append(spliced, newNode)
		spliced = append(spliced, kids[at:]...)
		setChildList(e.parent, o.ChildrenKey, spliced)

	default:
		return nil, fmt.Errorf("%w: direction %d", ErrMissingOption, int(dir))
	}
	return root, nil
}

// siblingIndex locates child in kids by node identity. Maps are not
// comparable, so this goes through nodeID.
func siblingIndex(kids []Node, child Node) int {
	id := nodeID(child)
	for i, k := range kids {
		if nodeID(k) == id {
			return i
		}
	}
	return -1
}
