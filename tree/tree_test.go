package tree

import "testing"

// tn builds a test node with an id and optional children, stored as []any the
// way JSON parsing would produce them.
func tn(id any, kids ...Node) Node {
	n := Node{"id": id}
	if len(kids) > 0 {
		list := make([]any, len(kids))
		for i, k := range kids {
			list[i] = k
		}
		n["children"] = list
	}
	return n
}

// byID matches nodes whose id attribute equals want.
func byID(want any) TestFunc {
	return func(n, _ Node, _ int) bool { return n["id"] == want }
}

// matchNothing never matches.
func matchNothing(Node, Node, int) bool { return false }

// ids flattens a node list to its id attributes.
func ids(nodes []Node) []any {
	out := make([]any, len(nodes))
	for i, n := range nodes {
		out[i] = n["id"]
	}
	return out
}

// fixture builds the shared test tree:
//
//	1
//	├── 2
//	│   ├── 4
//	│   └── 5
//	└── 3
//	    └── 6
func fixture() Node {
	return tn(1, tn(2, tn(4), tn(5)), tn(3, tn(6)))
}

func mustSig(t *testing.T, n Node) string {
	t.Helper()
	s, err := Signature(n, nil)
	if err != nil {
		t.Fatalf("signature: %v", err)
	}
	return s
}
