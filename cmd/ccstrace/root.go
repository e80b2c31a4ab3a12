package main

import (
	"fmt"
	"os"

	"github.com/aretw0/ccstrace/internal/cli"
	"github.com/aretw0/ccstrace/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ccstrace [file]",
	Short: "ccstrace traces the transitions of a CCS process",
	Long: `ccstrace parses a term of Milner's Calculus of Communicating Systems and prints
every transition it takes, with the derivation behind each one, until the process
cannot move or revisits a state. Use "-" to read the term from standard input.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (default "+config.DefaultPath+" when present)")
	flags.StringP("verbosity", "v", "", "Log level: trace, debug, info, warn, error")
	flags.String("color", "", "Colour output: auto, always, never")
	flags.String("metrics-file", "", "Write Prometheus metrics to this textfile")
}

// runOptions resolves config file, environment and flags, in increasing order
// of precedence.
func runOptions(cmd *cobra.Command, args []string) (cli.RunOptions, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cli.RunOptions{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("verbosity") {
		cfg.Verbosity, _ = flags.GetString("verbosity")
	}
	if flags.Changed("color") {
		cfg.Color, _ = flags.GetString("color")
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile, _ = flags.GetString("metrics-file")
	}
	if f := flags.Lookup("print-tree"); f != nil && f.Changed {
		cfg.PrintTree, _ = flags.GetBool("print-tree")
	}
	if f := flags.Lookup("hide-trace"); f != nil && f.Changed {
		cfg.HideTrace, _ = flags.GetBool("hide-trace")
	}
	if f := flags.Lookup("format"); f != nil && f.Changed {
		cfg.Format, _ = flags.GetString("format")
	}

	opts := cli.RunOptions{
		Config: cfg,
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	}
	if len(args) > 0 {
		opts.Path = args[0]
	}
	return opts, nil
}
