package cmd

import (
	"github.com/agentic-research/arbor/tree"
	"github.com/spf13/cobra"
)

var positionsCmd = &cobra.Command{
	Use:   "positions [tree.json]",
	Short: "Print the pre-order positions of matched nodes",
	Long: `Print the pre-order positions (root = 0) of the nodes a selector matches.
Position sets from different selectors over the same tree can be intersected
or unioned for overlap analysis.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		root, err := loadTree(args[0])
		if err != nil {
			return err
		}
		test, err := selector(false)
		if err != nil {
			return err
		}
		bm, err := tree.MatchPositions(root, &tree.Options{
			ChildrenKey: childrenKey,
			Test:        test,
			FirstOnly:   firstOnly,
		})
		if err != nil {
			return err
		}
		out := make([]any, 0, bm.GetCardinality())
		it := bm.Iterator()
		for it.HasNext() {
			out = append(out, int(it.Next()))
		}
		printJSON(out)
		return nil
	},
}

func init() {
	addSelectorFlags(positionsCmd, false)
	positionsCmd.Flags().BoolVar(&firstOnly, "first", false, "stop at the first pre-order match")
	rootCmd.AddCommand(positionsCmd)
}
