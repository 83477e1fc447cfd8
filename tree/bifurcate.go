package tree

import "fmt"

// Bifurcate splits the tree at the first node matching the predicate into two
// independent results: the extracted subtree rooted at the match, and the
// remainder with that one subtree excised from its parent's child list.
//
// A match on the root yields (nil, whole tree): nothing remains. No match at
// all yields (tree, nil) with the tree unchanged (still cloned unless
// InPlace).
func Bifurcate(root Node, opts *Options) (remainder, extracted Node, err error) {
	o := opts.resolved()
	o.Filter = Matches
	o.FirstOnly = true

	root, err = o.input(root)
	if err != nil {
		return nil, nil, err
	}
	entries, err := selectEntries(root, o)
	if err != nil {
		return nil, nil, err
	}
	if len(entries) == 0 {
		return root, nil, nil
	}
	e := entries[0]
	if e.parent == nil {
		return nil, e.node, nil
	}

	kids, err := childList(e.parent, o.ChildrenKey)
	if err != nil {
		return nil, nil, err
	}
	at := siblingIndex(kids, e.node)
	if at < 0 {
		// The match was reached through this parent, so it must be here.
		return nil, nil, fmt.Errorf("bifurcate: match not in parent child list")
	}
	kept := make([]Node, 0, len(kids)-1)
	kept = append(kept, kids[:at]...)
	kept = append(kept, kids[at+1:]...)
	setChildList(e.parent, o.ChildrenKey, kept)
	return root, e.node, nil
}
