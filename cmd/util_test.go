package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/agentic-research/arbor/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhereTest_TypedComparison(t *testing.T) {
	// JSON-parsed trees hold int64 for numbers; key=3 must compare typed.
	test, err := whereTest("id=3")
	require.NoError(t, err)
	assert.True(t, test(tree.Node{"id": int64(3)}, nil, 0))
	assert.False(t, test(tree.Node{"id": int64(4)}, nil, 0))
	assert.False(t, test(tree.Node{"id": "3"}, nil, 0))

	test, err = whereTest("name=leaf")
	require.NoError(t, err)
	assert.True(t, test(tree.Node{"name": "leaf"}, nil, 0))

	_, err = whereTest("no-equals-sign")
	assert.Error(t, err)
}

func TestMatchTest_JSONPathExistence(t *testing.T) {
	test, err := matchTest("$.name")
	require.NoError(t, err)
	assert.True(t, test(tree.Node{"name": "x"}, nil, 0))
	assert.False(t, test(tree.Node{"id": 1}, nil, 0))

	_, err = matchTest("$[")
	assert.Error(t, err)
}

func TestSelector_Composition(t *testing.T) {
	t.Cleanup(func() { whereExpr, matchExpr = "", "" })

	whereExpr, matchExpr = "", ""
	test, err := selector(false)
	require.NoError(t, err)
	assert.Nil(t, test, "no selector means match everything")

	_, err = selector(true)
	assert.Error(t, err, "mutating commands require a selector")

	// Both set: both must hold.
	whereExpr, matchExpr = "kind=dir", "$.name"
	test, err = selector(false)
	require.NoError(t, err)
	assert.True(t, test(tree.Node{"kind": "dir", "name": "x"}, nil, 0))
	assert.False(t, test(tree.Node{"kind": "dir"}, nil, 0))
	assert.False(t, test(tree.Node{"kind": "file", "name": "x"}, nil, 0))
}

func TestLoadTree(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tree.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"id":1,"children":[{"id":2}]}`), 0o644))

	root, err := loadTree(path)
	require.NoError(t, err)
	assert.Equal(t, int64(1), root["id"])

	s, err := tree.Signature(root, nil)
	require.NoError(t, err)
	assert.Equal(t, "1[2]", s)
}

func TestLoadTree_RejectsNonObjectRoot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.json")
	require.NoError(t, os.WriteFile(path, []byte(`[1,2,3]`), 0o644))

	_, err := loadTree(path)
	assert.Error(t, err)
}
