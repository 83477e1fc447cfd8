package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agentic-research/arbor/tree"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"
)

// Selector flags shared by the commands that locate nodes. Only one command
// runs per invocation, so a single set is enough.
var (
	matchExpr  string
	whereExpr  string
	filterName string
	firstOnly  bool
)

func addSelectorFlags(c *cobra.Command, withFilter bool) {
	c.Flags().StringVarP(&matchExpr, "match", "m", "", "JSONPath; a node matches when the path yields a result against it")
	c.Flags().StringVarP(&whereExpr, "where", "w", "", "attribute equality selector, key=value")
	if withFilter {
		c.Flags().StringVarP(&filterName, "filter", "f", "matches", "matches | ancestors | descendants | inclusive-ancestors | inclusive-descendants")
		c.Flags().BoolVar(&firstOnly, "first", false, "stop after the first pre-order match")
	}
}

// selector builds the predicate from --where and --match; both set means both
// must hold. Returns nil (match everything) when neither is set, or an error
// when required is true.
func selector(required bool) (tree.TestFunc, error) {
	var tests []tree.TestFunc
	if whereExpr != "" {
		t, err := whereTest(whereExpr)
		if err != nil {
			return nil, err
		}
		tests = append(tests, t)
	}
	if matchExpr != "" {
		t, err := matchTest(matchExpr)
		if err != nil {
			return nil, err
		}
		tests = append(tests, t)
	}
	switch len(tests) {
	case 0:
		if required {
			return nil, fmt.Errorf("a --where or --match selector is required")
		}
		return nil, nil
	case 1:
		return tests[0], nil
	default:
		return func(n, parent tree.Node, depth int) bool {
			for _, t := range tests {
				if !t(n, parent, depth) {
					return false
				}
			}
			return true
		}, nil
	}
}

// whereTest compiles key=value into an attribute equality predicate. The
// value is parsed as JSON so numbers and booleans compare typed; anything
// unparsable compares as a string.
func whereTest(expr string) (tree.TestFunc, error) {
	key, val, ok := strings.Cut(expr, "=")
	if !ok || key == "" {
		return nil, fmt.Errorf("invalid --where %q, want key=value", expr)
	}
	var want any = val
	if v, err := oj.ParseString(val); err == nil {
		want = v
	}
	return func(n, _ tree.Node, _ int) bool { return n[key] == want }, nil
}

// matchTest compiles a JSONPath expression into an existence predicate, the
// same node-level matching the JsonWalker pattern uses.
func matchTest(expr string) (tree.TestFunc, error) {
	x, err := jp.ParseString(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath %q: %w", expr, err)
	}
	return func(n, _ tree.Node, _ int) bool { return len(x.Get(n)) > 0 }, nil
}

// loadTree reads a JSON tree from path, or stdin when path is "-".
func loadTree(path string) (tree.Node, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read tree: %w", err)
	}
	v, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse tree %s: %w", path, err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("tree root must be an object, got %T", v)
	}
	return m, nil
}

func printJSON(v any) {
	fmt.Println(oj.JSON(v, 2))
}
