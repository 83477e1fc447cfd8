package cmd

import (
	"github.com/agentic-research/arbor/tree"
	"github.com/spf13/cobra"
)

var (
	childrenKey string
	idKey       string
)

var rootCmd = &cobra.Command{
	Use:          "arbor",
	Short:        "Arbor: search, transform, and fingerprint generic attribute trees",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return applyFileConfig(cmd)
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&childrenKey, "children-key", tree.DefaultChildrenKey, "field holding the ordered child list")
	rootCmd.PersistentFlags().StringVar(&idKey, "id-key", "id", "field rendered in signatures")
}
