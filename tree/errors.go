package tree

import "errors"

var (
	// ErrCircularReference reports a node revisited while still open on the
	// current root-to-node path, i.e. a node that is its own ancestor.
	ErrCircularReference = errors.New("circular reference")

	// ErrNotFound reports that an operation requiring a match found none.
	ErrNotFound = errors.New("no node matched")

	// ErrInvalidChildren reports a children field that is present but not an
	// ordered list of objects.
	ErrInvalidChildren = errors.New("invalid children field")

	// ErrNilNode reports a nil root or a nil node argument.
	ErrNilNode = errors.New("nil node")

	// ErrMissingOption reports a required function or option left unset.
	ErrMissingOption = errors.New("required option missing")

	// ErrInvalidFilter reports a Filter value outside the known modes.
	ErrInvalidFilter = errors.New("unknown filter")

	// ErrRootSibling reports an attempt to insert a sibling of the root; the
	// root has no sibling position.
	ErrRootSibling = errors.New("cannot insert a sibling of the root")
)
