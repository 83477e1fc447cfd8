package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/cobra"
)

// fileConfig is the optional defaults file ~/.agentic-research/arbor.hcl:
//
//	children_key = "items"
//	id_key       = "name"
//	open         = "("
//	close        = ")"
//	separator    = "|"
type fileConfig struct {
	ChildrenKey string `hcl:"children_key,optional"`
	IDKey       string `hcl:"id_key,optional"`
	Open        string `hcl:"open,optional"`
	Close       string `hcl:"close,optional"`
	Separator   string `hcl:"separator,optional"`
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".agentic-research", "arbor.hcl"), nil
}

func decodeFileConfig(path string) (*fileConfig, error) {
	var c fileConfig
	if err := hclsimple.DecodeFile(path, nil, &c); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return &c, nil
}

// applyFileConfig fills in flag values the user did not set explicitly from
// the defaults file. A missing file is fine; a malformed one is an error
// before any traversal happens.
func applyFileConfig(cmd *cobra.Command) error {
	path, err := configPath()
	if err != nil {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	c, err := decodeFileConfig(path)
	if err != nil {
		return err
	}

	persistent := cmd.Root().PersistentFlags()
	if c.ChildrenKey != "" && !persistent.Changed("children-key") {
		childrenKey = c.ChildrenKey
	}
	if c.IDKey != "" && !persistent.Changed("id-key") {
		idKey = c.IDKey
	}
	local := cmd.Flags()
	if c.Open != "" && !local.Changed("open") {
		sigOpen = c.Open
	}
	if c.Close != "" && !local.Changed("close") {
		sigClose = c.Close
	}
	if c.Separator != "" && !local.Changed("sep") {
		sigSep = c.Separator
	}
	return nil
}
