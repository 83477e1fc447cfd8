package tree

import "fmt"

// DefaultChildrenKey is the children field used when none is configured.
const DefaultChildrenKey = "children"

// Filter selects which nodes relative to a match end up in a result.
type Filter int

const (
	// Matches selects the matched node only.
	Matches Filter = iota
	// Ancestors selects every node on the path from the root to a match,
	// excluding the match itself.
	Ancestors
	// Descendants selects every node in a match's subtree, excluding the
	// match itself.
	Descendants
	// InclusiveAncestors selects the root-to-match path including the match.
	InclusiveAncestors
	// InclusiveDescendants selects a match together with its whole subtree.
	InclusiveDescendants
)

var filterNames = map[Filter]string{
	Matches:              "matches",
	Ancestors:            "ancestors",
	Descendants:          "descendants",
	InclusiveAncestors:   "inclusive-ancestors",
	InclusiveDescendants: "inclusive-descendants",
}

func (f Filter) String() string {
	if s, ok := filterNames[f]; ok {
		return s
	}
	return fmt.Sprintf("filter(%d)", int(f))
}

// ParseFilter resolves a filter name as used on the command line.
func ParseFilter(s string) (Filter, error) {
	for f, name := range filterNames {
		if s == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFilter, s)
}

// Direction places a node inserted by Insert relative to the match.
type Direction int

const (
	// Below appends the new node as the trailing child of the match.
	Below Direction = iota
	// Before makes the new node the immediately preceding sibling.
	Before
	// After makes the new node the immediately following sibling.
	After
)

var directionNames = map[Direction]string{
	Below:  "below",
	Before: "before",
	After:  "after",
}

func (d Direction) String() string {
	if s, ok := directionNames[d]; ok {
		return s
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// ParseDirection resolves a direction name as used on the command line.
func ParseDirection(s string) (Direction, error) {
	for d, name := range directionNames {
		if s == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: direction %q", ErrMissingOption, s)
}

// Options is the single configuration record every traversal-based operation
// takes. The zero value (and nil) is usable: children under "children", a
// predicate matching every node, Matches filter, copy-on-write.
type Options struct {
	// ChildrenKey names the field holding the ordered child list.
	ChildrenKey string

	// Test selects matches. Nil matches every node.
	Test TestFunc

	// Filter interprets a match: the node itself, its ancestors, its
	// descendants, or the inclusive combinations.
	Filter Filter

	// FirstOnly stops enumerating once the first pre-order match is resolved.
	FirstOnly bool

	// InPlace operates directly on the caller's nodes. By default every
	// operation deep-clones the input first, so the original tree is never
	// observably mutated.
	InPlace bool
}

// matchAll is the default predicate.
func matchAll(Node, Node, int) bool { return true }

// resolved returns a defaults-filled copy; opts itself is never written to.
func (o *Options) resolved() *Options {
	r := &Options{ChildrenKey: DefaultChildrenKey, Test: matchAll}
	if o == nil {
		return r
	}
	if o.ChildrenKey != "" {
		r.ChildrenKey = o.ChildrenKey
	}
	if o.Test != nil {
		r.Test = o.Test
	}
	r.Filter = o.Filter
	r.FirstOnly = o.FirstOnly
	r.InPlace = o.InPlace
	return r
}

// input returns the tree an operation will work on: the caller's own nodes in
// in-place mode, an independent deep clone otherwise. The clone happens once,
// up front, so mutation logic is identical in both modes.
func (o *Options) input(root Node) (Node, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: root", ErrNilNode)
	}
	if o.InPlace {
		return root, nil
	}
	return cloneTree(root)
}

// SignatureOptions controls canonical signature rendering.
type SignatureOptions struct {
	// ChildrenKey names the field holding the ordered child list.
	ChildrenKey string
	// IDKey names the attribute rendered for each node (default "id").
	IDKey string
	// Open, Close, and Separator delimit a node's child list
	// (defaults "[", "]", ",").
	Open      string
	Close     string
	Separator string
}

func (o *SignatureOptions) resolved() *SignatureOptions {
	r := &SignatureOptions{
		ChildrenKey: DefaultChildrenKey,
		IDKey:       "id",
		Open:        "[",
		Close:       "]",
		Separator:   ",",
	}
	if o == nil {
		return r
	}
	if o.ChildrenKey != "" {
		r.ChildrenKey = o.ChildrenKey
	}
	if o.IDKey != "" {
		r.IDKey = o.IDKey
	}
	if o.Open != "" {
		r.Open = o.Open
	}
	if o.Close != "" {
		r.Close = o.Close
	}
	if o.Separator != "" {
		r.Separator = o.Separator
	}
	return r
}
