package main

import (
	"github.com/aretw0/ccstrace/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [file]",
	Short: "Export the visited states as a Mermaid diagram",
	Long:  `Traces the process silently and outputs a Mermaid diagram (graph LR) of the states it visited.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := runOptions(cmd, args)
		if err != nil {
			return err
		}
		return cli.Graph(opts)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
