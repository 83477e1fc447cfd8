package cmd

import (
	"fmt"

	"github.com/agentic-research/arbor/tree"
	"github.com/spf13/cobra"
)

var (
	sigOpen  string
	sigClose string
	sigSep   string
)

var sigCmd = &cobra.Command{
	Use:   "sig [tree.json]",
	Short: "Print the tree's canonical id-and-shape signature",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		root, err := loadTree(args[0])
		if err != nil {
			return err
		}
		s, err := tree.Signature(root, signatureOptions())
		if err != nil {
			return err
		}
		fmt.Println(s)
		return nil
	},
}

func signatureOptions() *tree.SignatureOptions {
	return &tree.SignatureOptions{
		ChildrenKey: childrenKey,
		IDKey:       idKey,
		Open:        sigOpen,
		Close:       sigClose,
		Separator:   sigSep,
	}
}

func init() {
	sigCmd.Flags().StringVar(&sigOpen, "open", "[", "child list opening delimiter")
	sigCmd.Flags().StringVar(&sigClose, "close", "]", "child list closing delimiter")
	sigCmd.Flags().StringVar(&sigSep, "sep", ",", "sibling separator")
	rootCmd.AddCommand(sigCmd)
}
