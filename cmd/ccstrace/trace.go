package main

import (
	"github.com/aretw0/ccstrace/internal/cli"
	"github.com/spf13/cobra"
)

// traceCmd represents the trace command
var traceCmd = &cobra.Command{
	Use:   "trace [file]",
	Short: "Print the transitions of a CCS process",
	Long: `Derives transitions one at a time and prints each with its derivation.
Without a file the built-in example (α.nil + β.nil) | (!α.nil + γ.nil) is traced.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := runOptions(cmd, args)
		if err != nil {
			return err
		}
		return cli.Execute(opts)
	},
}

func addTraceFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("print-tree", "p", false, "Print the syntax tree of the input")
	cmd.Flags().Bool("hide-trace", false, "Do not trace the process")
	cmd.Flags().String("format", "", "Trace format: text or json")
}

func init() {
	rootCmd.AddCommand(traceCmd)
	addTraceFlags(traceCmd)

	// 'trace' is the default when no command is provided.
	addTraceFlags(rootCmd)
	rootCmd.Args = traceCmd.Args
	rootCmd.RunE = traceCmd.RunE
}
