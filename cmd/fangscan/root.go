// Package main provides the entry point for the fangscan CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for fangscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fangscan",
		Short: "Parallel scanner for vampire numbers",
		Long: `Fangscan searches numeric ranges for vampire numbers.

A vampire number has an even count of digits and factors into two fangs of
half its length whose combined digits are a rearrangement of its own.
Fang pairs where both fangs end in zero do not count.

By default fangscan prints one line per fang pair found. Use --summary,
--json, or --markdown for richer reports.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewScanCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
