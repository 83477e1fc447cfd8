// Package ingest converts parsed source code into generic attribute trees so
// every tree operation applies to code ASTs the same way it applies to JSON
// data.
package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentic-research/arbor/tree"
	sitter "github.com/smacker/go-tree-sitter"
)

// fieldValueCap bounds the source text stored for a field attribute.
const fieldValueCap = 80

// reserved attribute names; grammar field names that collide are skipped.
var reserved = map[string]bool{
	"id":       true,
	"start":    true,
	"end":      true,
	"children": true,
}

// ParseFile parses path with the grammar matching its extension and returns
// the generic tree plus the detected language name.
func ParseFile(ctx context.Context, path string) (tree.Node, string, error) {
	name, lang, ok := DetectLanguage(filepath.Ext(path))
	if !ok {
		return nil, "", fmt.Errorf("unsupported source type %q", filepath.Ext(path))
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read source: %w", err)
	}
	root, err := Parse(ctx, src, lang)
	if err != nil {
		return nil, "", err
	}
	return root, name, nil
}

// Parse parses src with the given grammar and converts the AST.
func Parse(ctx context.Context, src []byte, lang *sitter.Language) (tree.Node, error) {
	p := sitter.NewParser()
	p.SetLanguage(lang)
	t, err := p.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse source: %w", err)
	}
	return BuildTree(t.RootNode(), src), nil
}

// BuildTree converts a tree-sitter AST into a generic attribute tree. Every
// named node becomes a record: its grammar type under "id" (so signatures
// encode the syntactic shape), its byte range under "start"/"end", one
// attribute per grammar field name, and its named children in order under
// "children".
func BuildTree(n *sitter.Node, src []byte) tree.Node {
	rec := tree.Node{
		"id":    n.Type(),
		"start": int(n.StartByte()),
		"end":   int(n.EndByte()),
	}

	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		field := n.FieldNameForChild(i)
		if field == "" || reserved[field] {
			continue
		}
		rec[field] = fieldValue(child, src)
	}

	named := int(n.NamedChildCount())
	if named > 0 {
		kids := make([]any, 0, named)
		for i := 0; i < named; i++ {
			c := n.NamedChild(i)
			if c == nil {
				continue
			}
			kids = append(kids, map[string]any(BuildTree(c, src)))
		}
		rec["children"] = kids
	}
	return rec
}

// fieldValue renders a grammar field: short token-like nodes keep their
// source text, anything larger keeps just its grammar type.
func fieldValue(n *sitter.Node, src []byte) string {
	if n.NamedChildCount() == 0 && int(n.EndByte())-int(n.StartByte()) <= fieldValueCap {
		return n.Content(src)
	}
	return n.Type()
}
