package cmd

import (
	"github.com/agentic-research/arbor/tree"
	"github.com/spf13/cobra"
)

var insertDirection string

var insertCmd = &cobra.Command{
	Use:   "insert [tree.json] [node.json]",
	Short: "Insert a node below, before, or after the first match",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		root, err := loadTree(args[0])
		if err != nil {
			return err
		}
		newNode, err := loadTree(args[1])
		if err != nil {
			return err
		}
		test, err := selector(true)
		if err != nil {
			return err
		}
		dir, err := tree.ParseDirection(insertDirection)
		if err != nil {
			return err
		}
		out, err := tree.Insert(root, newNode, dir, &tree.Options{
			ChildrenKey: childrenKey,
			Test:        test,
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
	addSelectorFlags(insertCmd, false)
	insertCmd.Flags().StringVarP(&insertDirection, "direction", "d", "below", "below | before | after")
	rootCmd.AddCommand(insertCmd)
}
