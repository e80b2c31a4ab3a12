package main

import (
	"github.com/aretw0/ccstrace"
	"github.com/aretw0/ccstrace/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of ccstrace",
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintBanner(cmd.OutOrStdout(), ccstrace.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
