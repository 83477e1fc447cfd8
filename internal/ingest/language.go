package ingest

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/hcl"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/yaml"
)

type grammar struct {
	name string
	lang *sitter.Language
}

// grammars maps file extensions to tree-sitter grammars.
var grammars = map[string]grammar{
	".go":   {"go", golang.GetLanguage()},
	".py":   {"python", python.GetLanguage()},
	".js":   {"javascript", javascript.GetLanguage()},
	".tf":   {"terraform", hcl.GetLanguage()},
	".hcl":  {"hcl", hcl.GetLanguage()},
	".yaml": {"yaml", yaml.GetLanguage()},
	".yml":  {"yaml", yaml.GetLanguage()},
}

// DetectLanguage returns the language name and grammar for a file extension.
// ok is false for unsupported extensions.
func DetectLanguage(ext string) (string, *sitter.Language, bool) {
	g, ok := grammars[ext]
	if !ok {
		return "", nil, false
	}
	return g.name, g.lang, true
}
