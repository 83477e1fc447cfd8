package tree

// Prune removes every subtree whose root the predicate matches; removing a
// node removes everything under it. A match on the tree root removes the
// whole tree and Prune returns nil. Child lists are rebuilt bottom-up by
// filtering, so several matched siblings are all removed in one pass. With
// FirstOnly, removal stops after the first pre-order match.
func Prune(root Node, opts *Options) (Node, error) {
	o := opts.resolved()
	root, err := o.input(root)
	if err != nil {
		return nil, err
	}
	w := newWalker(o.ChildrenKey)
	keep, _, err := w.prune(root, nil, 0, o)
	if err != nil {
		return nil, err
	}
	if !keep {
		return nil, nil
	}
	return root, nil
}

// prune reports whether n survives and whether FirstOnly is satisfied. A
// matched node is not descended into; its subtree goes with it.
func (w *walker) prune(n, parent Node, depth int, o *Options) (keep, done bool, err error) {
	if err := w.enter(n); err != nil {
		return false, false, err
	}
	defer w.exit(n)

	if o.Test(n, parent, depth) {
		return false, o.FirstOnly, nil
	}

	kids, err := w.children(n)
	if err != nil {
		return false, false, err
	}
	if len(kids) == 0 {
		return true, false, nil
	}

	kept := make([]Node, 0, len(kids))
	changed := false
	for i, k := range kids {
		if done {
			// First match already removed; the rest ride along untouched.
			kept = append(kept, kids[i:]...)
			break
		}
		var childKeep bool
		childKeep, done, err = w.prune(k, n, depth+1, o)
		if err != nil {
			return false, false, err
		}
		if childKeep {
			kept = append(kept, k)
		} else {
			changed = true
		}
	}
	if changed {
		setChildList(n, w.key, kept)
	}
	return true, done, nil
}
