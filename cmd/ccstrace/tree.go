package main

import (
	"github.com/aretw0/ccstrace/internal/cli"
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree [file]",
	Short: "Print the syntax tree of a CCS process",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := runOptions(cmd, args)
		if err != nil {
			return err
		}
		return cli.Tree(opts)
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
