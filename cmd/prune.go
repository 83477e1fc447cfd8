package cmd

import (
	"github.com/agentic-research/arbor/tree"
	"github.com/spf13/cobra"
)

var pruneCmd = &cobra.Command{
	Use:   "prune [tree.json]",
	Short: "Remove every matched subtree and print the remaining tree",
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
		out, err := tree.Prune(root, &tree.Options{
			ChildrenKey: childrenKey,
			Test:        test,
			FirstOnly:   firstOnly,
			InPlace:     true,
		})
		if err != nil {
			return err
		}
		printJSON(out)
		return nil
	},
}

func init() {
	addSelectorFlags(pruneCmd, false)
	pruneCmd.Flags().BoolVar(&firstOnly, "first", false, "remove only the first pre-order match")
	rootCmd.AddCommand(pruneCmd)
}
