package tree

import "fmt"

// cloneTree deep-copies a tree, payload attributes included. Clones are
// memoized by node identity, so a subtree shared by several parents stays a
// single shared value in the copy; the original's shape is preserved exactly.
// A map revisited while still open on the current path is a true cycle and
// fails with ErrCircularReference.
func cloneTree(root Node) (Node, error) {
	c := &cloner{
		seen: make(map[uintptr]Node),
		open: make(map[uintptr]struct{}),
	}
	return c.node(root)
}

type cloner struct {
	seen map[uintptr]Node
	open map[uintptr]struct{}
}

func (c *cloner) node(n Node) (Node, error) {
	id := nodeID(n)
	if _, ok := c.open[id]; ok {
		return nil, fmt.Errorf("%w: node revisited on its own path", ErrCircularReference)
	}
	if dup, ok := c.seen[id]; ok {
		return dup, nil
	}
	c.open[id] = struct{}{}
	defer delete(c.open, id)

	dup := make(Node, len(n))
	c.seen[id] = dup
	for k, v := range n {
		cv, err := c.value(v)
		if err != nil {
			return nil, err
		}
		dup[k] = cv
	}
	return dup, nil
}

// value clones maps and slices recursively; scalars and other values are
// copied by assignment.
func (c *cloner) value(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		return c.node(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			ce, err := c.value(e)
			if err != nil {
				return nil, err
			}
			out[i] = ce
		}
		return out, nil
	case []map[string]any:
		out := make([]map[string]any, len(t))
		for i, e := range t {
			ce, err := c.node(e)
			if err != nil {
				return nil, err
			}
			out[i] = ce
		}
		return out, nil
	default:
		return v, nil
	}
}
