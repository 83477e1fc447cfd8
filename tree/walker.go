package tree

import "fmt"

// entry is one selected node together with its path context. Parent and depth
// are re-derived on every traversal and never stored in the node itself; a
// shared node may be selected via different parents.
type entry struct {
	node   Node
	parent Node
	depth  int
}

// walker carries per-call traversal state: the children key and the set of
// node identities currently open on the active root-to-node path. The set is
// path-scoped (add on entry, remove on exit), which is what lets a subtree
// shared by two parents be visited twice without tripping cycle detection,
// while a true cycle is caught the instant a node is re-entered.
type walker struct {
	key  string
	open map[uintptr]struct{}
}

func newWalker(key string) *walker {
	return &walker{key: key, open: make(map[uintptr]struct{})}
}

func (w *walker) enter(n Node) error {
	id := nodeID(n)
	if _, ok := w.open[id]; ok {
		return fmt.Errorf("%w: node revisited on its own path", ErrCircularReference)
	}
	w.open[id] = struct{}{}
	return nil
}

func (w *walker) exit(n Node) {
	delete(w.open, nodeID(n))
}

func (w *walker) children(n Node) ([]Node, error) {
	return childList(n, w.key)
}

// selectEntries runs the filtered depth-first pre-order traversal and returns
// the selected nodes with their path context. Result order is pre-order for
// Matches and the descendant filters, root-first chains for the ancestor
// filters.
func selectEntries(root Node, o *Options) ([]entry, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: root", ErrNilNode)
	}
	if o.Filter < Matches || o.Filter > InclusiveDescendants {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFilter, int(o.Filter))
	}
	w := newWalker(o.ChildrenKey)
	var out []entry
	var err error
	switch o.Filter {
	case Ancestors, InclusiveAncestors:
		_, err = w.selectAncestors(root, nil, 0, o, &out)
	default:
		_, err = w.selectDown(root, nil, 0, o, false, &out)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// selectDown handles the Matches, Descendants, and InclusiveDescendants
// filters as a two-state machine: searching until the predicate matches, then
// (for the descendant filters) including the whole subtree without consulting
// the predicate again. includeAll is the second state. The returned bool
// reports that FirstOnly is satisfied and enumeration stops.
func (w *walker) selectDown(n, parent Node, depth int, o *Options, includeAll bool, out *[]entry) (bool, error) {
	if err := w.enter(n); err != nil {
		return false, err
	}
	defer w.exit(n)

	if includeAll {
		*out = append(*out, entry{n, parent, depth})
		kids, err := w.children(n)
		if err != nil {
			return false, err
		}
		for _, k := range kids {
			if _, err := w.selectDown(k, n, depth+1, o, true, out); err != nil {
				return false, err
			}
		}
		return false, nil
	}

	if o.Test(n, parent, depth) {
		switch o.Filter {
		case Matches:
			*out = append(*out, entry{n, parent, depth})
			if o.FirstOnly {
				return true, nil
			}
			// Matched nodes stay on the search path: matches nested below
			// another match are still reported.
		case Descendants, InclusiveDescendants:
			if o.Filter == InclusiveDescendants {
				*out = append(*out, entry{n, parent, depth})
			}
			kids, err := w.children(n)
			if err != nil {
				return false, err
			}
			for _, k := range kids {
				if _, err := w.selectDown(k, n, depth+1, o, true, out); err != nil {
					return false, err
				}
			}
			return o.FirstOnly, nil
		}
	}

	kids, err := w.children(n)
	if err != nil {
		return false, err
	}
	for _, k := range kids {
		done, err := w.selectDown(k, n, depth+1, o, false, out)
		if err != nil {
			return false, err
		}
		if done {
			return true, nil
		}
	}
	return false, nil
}

// selectAncestors handles the Ancestors and InclusiveAncestors filters. The
// result is built bottom-up: a node is prepended to its children's successful
// results when it matched (inclusive variant only) or when some descendant
// matched. The returned bool reports a match at or below n. With FirstOnly
// the chain leads to the first pre-order match specifically.
func (w *walker) selectAncestors(n, parent Node, depth int, o *Options, out *[]entry) (bool, error) {
	if err := w.enter(n); err != nil {
		return false, err
	}
	defer w.exit(n)

	self := o.Test(n, parent, depth)
	if self && o.FirstOnly {
		if o.Filter == InclusiveAncestors {
			*out = append(*out, entry{n, parent, depth})
		}
		return true, nil
	}

	kids, err := w.children(n)
	if err != nil {
		return false, err
	}
	below := false
	var sub []entry
	for _, k := range kids {
		found, err := w.selectAncestors(k, n, depth+1, o, &sub)
		if err != nil {
			return false, err
		}
		if found {
			below = true
			if o.FirstOnly {
				break
			}
		}
	}

	if below || (self && o.Filter == InclusiveAncestors) {
		*out = append(*out, entry{n, parent, depth})
	}
	*out = append(*out, sub...)
	return self || below, nil
}
