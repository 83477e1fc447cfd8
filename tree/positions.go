package tree

import (
	"fmt"

	"github.com/RoaringBitmap/roaring"
)

// MatchPositions returns the pre-order positions (root = 0) of every node the
// predicate matches, as a bitmap. Positions agree with the rank a node holds
// in Find's default full listing, so bitmaps from different predicates over
// the same tree compose with And/Or for overlap analysis. The filter modes do
// not apply here; a node is either at a matched position or not. With
// FirstOnly the walk stops at the first match.
func MatchPositions(root Node, opts *Options) (*roaring.Bitmap, error) {
	o := opts.resolved()
	if root == nil {
		return nil, fmt.Errorf("%w: root", ErrNilNode)
	}
	w := newWalker(o.ChildrenKey)
	bm := roaring.New()
	next := uint32(0)
	if _, err := w.positions(root, nil, 0, o, &next, bm); err != nil {
		return nil, err
	}
	return bm, nil
}

func (w *walker) positions(n, parent Node, depth int, o *Options, next *uint32, bm *roaring.Bitmap) (bool, error) {
	if err := w.enter(n); err != nil {
		return false, err
	}
	defer w.exit(n)

	pos := *next
	*next++
	if o.Test(n, parent, depth) {
		bm.Add(pos)
		if o.FirstOnly {
			return true, nil
		}
	}
	kids, err := w.children(n)
	if err != nil {
		return false, err
	}
	for _, k := range kids {
		done, err := w.positions(k, n, depth+1, o, next, bm)
		if err != nil {
			return false, err
		}
		if done {
			return true, nil
		}
	}
	return false, nil
}
