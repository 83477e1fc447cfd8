package cmd

import (
	"github.com/agentic-research/arbor/tree"
	"github.com/spf13/cobra"
)

var bifurcateCmd = &cobra.Command{
	Use:   "bifurcate [tree.json]",
	Short: "Split the tree at the first match into remainder and extracted subtree",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		root, err := loadTree(args[0])
		if err != nil {
			return err
		}
		test, err := selector(true)
		if err != nil {
			return err
		}
		remainder, extracted, err := tree.Bifurcate(root, &tree.Options{
			ChildrenKey: childrenKey,
			Test:        test,
			InPlace:     true,
		})
		if err != nil {
			return err
		}
		printJSON(map[string]any{
			"remainder": remainder,
			"extracted": extracted,
		})
		return nil
	},
}

func init() {
	addSelectorFlags(bifurcateCmd, false)
	rootCmd.AddCommand(bifurcateCmd)
}
