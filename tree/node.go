// Package tree implements search, mutation, and canonical-signature operations
// over rooted ordered trees whose nodes are open records: arbitrary named
// attributes plus an ordered list of child nodes under one configurable key.
//
// Nodes are plain map[string]any values, so JSON data parsed with ojg (or
// encoding/json) is a valid tree with no conversion step. The engine treats
// every attribute except the children key as opaque payload.
//
// A subtree may legitimately be shared by more than one parent (the tree is
// then a DAG); a node that is its own ancestor is a cycle and every operation
// rejects it with ErrCircularReference.
package tree

import (
	"fmt"
	"reflect"
)

// Node is an open record. The alias (rather than a defined type) is deliberate:
// children parsed from JSON arrive as map[string]any and must assert cleanly.
type Node = map[string]any

// TestFunc decides whether a node is a match. parent is nil for the root;
// depth is 0 at the root and grows downward.
type TestFunc func(n, parent Node, depth int) bool

// ApplyFunc mutates a selected node's attributes in place. It must not replace
// the node reference itself.
type ApplyFunc func(n, parent Node, depth int)

// GetFunc derives a value from a selected node.
type GetFunc func(n, parent Node, depth int) any

// nodeID is the identity used for cycle detection and splice location: the
// map's own pointer. Two visits of the same map are the same node, however it
// was reached.
func nodeID(n Node) uintptr {
	return reflect.ValueOf(n).Pointer()
}

// childList extracts the ordered children of n under key. Both []any (what
// JSON parsing produces) and []map[string]any are accepted; each element must
// be an object. An absent or nil field means n is a leaf. Any other shape is
// ErrInvalidChildren.
func childList(n Node, key string) ([]Node, error) {
	raw, ok := n[key]
	if !ok || raw == nil {
		return nil, nil
	}
	switch kids := raw.(type) {
	case []map[string]any:
		return kids, nil
	case []any:
		out := make([]Node, len(kids))
		for i, k := range kids {
			m, ok := k.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: %q[%d] is %T, want object", ErrInvalidChildren, key, i, k)
			}
			out[i] = m
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q is %T, want a list", ErrInvalidChildren, key, raw)
	}
}

// setChildList writes kids back under key, preserving the container kind the
// node already had so an in-place rebuild is not observable as a type change.
func setChildList(n Node, key string, kids []Node) {
	if raw, ok := n[key]; ok {
		if _, isAny := raw.([]any); isAny {
			out := make([]any, len(kids))
			for i, k := range kids {
				out[i] = k
			}
			n[key] = out
			return
		}
	}
	n[key] = kids
}
