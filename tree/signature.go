package tree

import (
	"fmt"
	"strings"
)

// Signature renders the tree's ids and shape as one canonical string, e.g.
// "1[2,3]": a node's id followed, when it has children, by the delimited
// child signatures in sibling order. Leaves render as their id alone; a node
// missing the id attribute renders an empty id but still encodes its shape.
//
// Two trees with the same ids, shape, and sibling order always produce equal
// signatures; that is this package's definition of structural equality.
func Signature(root Node, opts *SignatureOptions) (string, error) {
	o := opts.resolved()
	if root == nil {
		return "", fmt.Errorf("%w: root", ErrNilNode)
	}
	w := newWalker(o.ChildrenKey)
	var sb strings.Builder
	if err := w.signature(root, o, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (w *walker) signature(n Node, o *SignatureOptions, sb *strings.Builder) error {
	if err := w.enter(n); err != nil {
		return err
	}
	defer w.exit(n)

	if id, ok := n[o.IDKey]; ok {
		fmt.Fprintf(sb, "%v", id)
	}
	kids, err := w.children(n)
	if err != nil {
		return err
	}
	if len(kids) == 0 {
		return nil
	}
	sb.WriteString(o.Open)
	for i, k := range kids {
		if i > 0 {
			sb.WriteString(o.Separator)
		}
		if err := w.signature(k, o, sb); err != nil {
			return err
		}
	}
	sb.WriteString(o.Close)
	return nil
}
