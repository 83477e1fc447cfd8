package tests

import (
	"context"
	"testing"

	"github.com/agentic-research/arbor/internal/ingest"
	"github.com/agentic-research/arbor/tree"
	"github.com/ohler55/ojg/oj"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orgChart = `{
  "id": "ceo",
  "children": [
    {"id": "eng", "children": [
      {"id": "backend", "children": []},
      {"id": "frontend", "children": []}
    ]},
    {"id": "sales", "children": [
      {"id": "emea", "children": []}
    ]}
  ]
}`

// TestJSONRoundTrip drives the whole pipeline the CLI uses: parse JSON with
// ojg, run search and mutation operations, compare results by signature.
func TestJSONRoundTrip(t *testing.T) {
	v, err := oj.ParseString(orgChart)
	require.NoError(t, err)
	root, ok := v.(map[string]any)
	require.True(t, ok)

	sig, err := tree.Signature(root, nil)
	require.NoError(t, err)
	assert.Equal(t, "ceo[eng[backend,frontend],sales[emea]]", sig)

	// Locate the parent of a deep node.
	parent, err := tree.FindParent(root, &tree.Options{
		Test: func(n, _ tree.Node, _ int) bool { return n["id"] == "emea" },
	})
	require.NoError(t, err)
	assert.Equal(t, "sales", parent["id"])

	// Split off a department and graft it elsewhere.
	remainder, extracted, err := tree.Bifurcate(root, &tree.Options{
		Test: func(n, _ tree.Node, _ int) bool { return n["id"] == "sales" },
	})
	require.NoError(t, err)
	restored, err := tree.Insert(remainder, extracted, tree.Below, &tree.Options{
		Test:    func(n, _ tree.Node, _ int) bool { return n["id"] == "eng" },
		InPlace: true,
	})
	require.NoError(t, err)
	sig, err = tree.Signature(restored, nil)
	require.NoError(t, err)
	assert.Equal(t, "ceo[eng[backend,frontend,sales[emea]]]", sig)

	// The input tree never noticed any of it.
	sig, err = tree.Signature(root, nil)
	require.NoError(t, err)
	assert.Equal(t, "ceo[eng[backend,frontend],sales[emea]]", sig)
}

const goSource = `package main

import "fmt"

const Version = "1.0"

func HelloWorld() {
	fmt.Println("hello")
}
`

// TestCodeTreePipeline ingests Go source with tree-sitter and runs the same
// generic operations on the resulting tree.
func TestCodeTreePipeline(t *testing.T) {
	root, err := ingest.Parse(context.Background(), []byte(goSource), golang.GetLanguage())
	require.NoError(t, err)
	require.Equal(t, "source_file", root["id"])

	isFunc := func(n, _ tree.Node, _ int) bool { return n["id"] == "function_declaration" }

	// The function body is reachable as descendants of the match.
	body, err := tree.Find(root, &tree.Options{Test: isFunc, Filter: tree.Descendants})
	require.NoError(t, err)
	assert.NotEmpty(t, body)

	// Prune all functions; the declaration disappears from the signature.
	pruned, err := tree.Prune(root, &tree.Options{Test: isFunc})
	require.NoError(t, err)
	ok, err := tree.Contains(pruned, &tree.Options{Test: isFunc})
	require.NoError(t, err)
	assert.False(t, ok)

	before, err := tree.Signature(root, nil)
	require.NoError(t, err)
	after, err := tree.Signature(pruned, nil)
	require.NoError(t, err)
	assert.NotEqual(t, before, after)

	// Position sets over the same tree compose.
	funcs, err := tree.MatchPositions(root, &tree.Options{Test: isFunc})
	require.NoError(t, err)
	all, err := tree.MatchPositions(root, nil)
	require.NoError(t, err)
	assert.True(t, funcs.GetCardinality() > 0)
	assert.True(t, funcs.AndCardinality(all) == funcs.GetCardinality())
}
