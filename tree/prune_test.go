package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrune_RemovesSubtree(t *testing.T) {
	// Concrete scenario: pruning id==3 from {1,[2,3]} leaves {1,[2]}.
	root, err := Prune(tn(1, tn(2), tn(3)), &Options{Test: byID(3)})
	require.NoError(t, err)
	assert.Equal(t, "1[2]", mustSig(t, root))

	// Removing a node removes everything under it.
	root, err = Prune(fixture(), &Options{Test: byID(2)})
	require.NoError(t, err)
	assert.Equal(t, "1[3[6]]", mustSig(t, root))
}

func TestPrune_NothingMatched(t *testing.T) {
	orig := fixture()
	root, err := Prune(orig, &Options{Test: matchNothing})
	require.NoError(t, err)
	assert.Equal(t, mustSig(t, orig), mustSig(t, root))
}

func TestPrune_RootMatched(t *testing.T) {
	root, err := Prune(fixture(), &Options{Test: byID(1)})
	require.NoError(t, err)
	assert.Nil(t, root, "pruning the root leaves no tree")
}

func TestPrune_SeveralMatchedSiblings(t *testing.T) {
	// Forward iterate-and-filter must not skip a sibling after a removal.
	root := tn(1, tn(2), tn(3), tn(4), tn(5))
	pred := func(n, _ Node, _ int) bool { return n["id"] == 2 || n["id"] == 3 }
	root, err := Prune(root, &Options{Test: pred})
	require.NoError(t, err)
	assert.Equal(t, "1[4,5]", mustSig(t, root))
}

func TestPrune_FirstOnly(t *testing.T) {
	root := tn(1, tn(2), tn(3), tn(2))
	root, err := Prune(root, &Options{Test: byID(2), FirstOnly: true})
	require.NoError(t, err)
	assert.Equal(t, "1[3,2]", mustSig(t, root))
}

func TestPrune_CopyVsInPlace(t *testing.T) {
	orig := tn(1, tn(2), tn(3))

	_, err := Prune(orig, &Options{Test: byID(3)})
	require.NoError(t, err)
	assert.Equal(t, "1[2,3]", mustSig(t, orig), "copy mode must not touch the input")

	_, err = Prune(orig, &Options{Test: byID(3), InPlace: true})
	require.NoError(t, err)
	assert.Equal(t, "1[2]", mustSig(t, orig))
}
