package cmd

import (
	"fmt"

	"github.com/agentic-research/arbor/internal/ingest"
	"github.com/agentic-research/arbor/tree"
	"github.com/spf13/cobra"
)

var parseSig bool

var parseCmd = &cobra.Command{
	Use:   "parse [source-file]",
	Short: "Parse a source file into a generic tree",
	Long: `Parse a source file with the tree-sitter grammar matching its extension and
print the resulting generic tree as JSON, ready for every other command. With
--sig, print the tree's syntactic-shape signature instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, lang, err := ingest.ParseFile(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if parseSig {
			s, err := tree.Signature(root, signatureOptions())
			if err != nil {
				return err
			}
			fmt.Println(s)
			return nil
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "parsed %s as %s\n", args[0], lang)
		printJSON(root)
		return nil
	},
}

func init() {
	parseCmd.Flags().BoolVar(&parseSig, "sig", false, "print the signature instead of the tree")
	rootCmd.AddCommand(parseCmd)
}
