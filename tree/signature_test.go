package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignature_Rendering(t *testing.T) {
	s, err := Signature(tn(1, tn(2), tn(3)), nil)
	require.NoError(t, err)
	assert.Equal(t, "1[2,3]", s)

	s, err = Signature(fixture(), nil)
	require.NoError(t, err)
	assert.Equal(t, "1[2[4,5],3[6]]", s)

	// A leaf renders as its id alone.
	s, err = Signature(tn("root"), nil)
	require.NoError(t, err)
	assert.Equal(t, "root", s)
}

func TestSignature_StructuralEquality(t *testing.T) {
	// Same ids, shape, and order: equal signatures regardless of payload.
	a := tn(1, tn(2), tn(3))
	b := tn(1, tn(2), tn(3))
	b["label"] = "payload is not part of the shape"
	assert.Equal(t, mustSig(t, a), mustSig(t, b))

	// Changing sibling order changes the signature.
	c := tn(1, tn(3), tn(2))
	assert.NotEqual(t, mustSig(t, a), mustSig(t, c))
}

func TestSignature_CustomDelimiters(t *testing.T) {
	s, err := Signature(fixture(), &SignatureOptions{Open: "(", Close: ")", Separator: "|"})
	require.NoError(t, err)
	assert.Equal(t, "1(2(4|5)|3(6))", s)
}

func TestSignature_CustomIDKey(t *testing.T) {
	root := Node{"name": "a", "children": []any{Node{"name": "b"}}}
	s, err := Signature(root, &SignatureOptions{IDKey: "name"})
	require.NoError(t, err)
	assert.Equal(t, "a[b]", s)
}

func TestSignature_MissingID(t *testing.T) {
	// A node without the id attribute renders an empty id; shape survives.
	root := Node{"children": []any{Node{"id": 2}, Node{"id": 3}}}
	s, err := Signature(root, nil)
	require.NoError(t, err)
	assert.Equal(t, "[2,3]", s)
}

func TestSignature_EmptyChildList(t *testing.T) {
	// An empty list is a leaf, same as an absent field.
	root := Node{"id": 1, "children": []any{}}
	s, err := Signature(root, nil)
	require.NoError(t, err)
	assert.Equal(t, "1", s)
}

func TestSignature_SharedSubtree(t *testing.T) {
	shared := tn("s")
	root := tn("r", tn("a"), tn("b"))
	kids, err := childList(root, DefaultChildrenKey)
	require.NoError(t, err)
	kids[0]["children"] = []any{shared}
	kids[1]["children"] = []any{shared}

	s, err := Signature(root, nil)
	require.NoError(t, err)
	assert.Equal(t, "r[a[s],b[s]]", s)
}
