package cmd

import (
	"github.com/agentic-research/arbor/tree"
	"github.com/spf13/cobra"
)

var findValueKey string

var findCmd = &cobra.Command{
	Use:   "find [tree.json]",
	Short: "List the nodes a selector matches, under a filter mode",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		root, err := loadTree(args[0])
		if err != nil {
			return err
		}
		test, err := selector(false)
		if err != nil {
			return err
		}
		filter, err := tree.ParseFilter(filterName)
		if err != nil {
			return err
		}
		opts := &tree.Options{
			ChildrenKey: childrenKey,
			Test:        test,
			Filter:      filter,
			FirstOnly:   firstOnly,
			InPlace:     true, // the tree was loaded for this call only
		}
		if findValueKey != "" {
			vals, err := tree.FindValues(root, func(n, _ tree.Node, _ int) any {
				return n[findValueKey]
			}, opts)
			if err != nil {
				return err
			}
			printJSON(vals)
			return nil
		}
		nodes, err := tree.Find(root, opts)
		if err != nil {
			return err
		}
		printJSON(nodes)
		return nil
	},
}

func init() {
	addSelectorFlags(findCmd, true)
	findCmd.Flags().StringVar(&findValueKey, "value", "", "print this attribute of each selected node instead of the node")
	rootCmd.AddCommand(findCmd)
}
