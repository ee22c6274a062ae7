package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/teranos/girgen/cmd/girgen/commands"
	"github.com/teranos/girgen/errors"
	"github.com/teranos/girgen/logger"
)

var rootCmd = &cobra.Command{
	Use:   "girgen",
	Short: "girgen - Rust trait impls from a library's object model",
	Long: `girgen - Resolve type hierarchies and synthesize Rust trait impls.

girgen reads a library snapshot (types, functions, inheritance) and a
status file deciding what gets generated, then writes PartialEq, Ord,
Display and Hash impls backed by the library's native functions.

Available commands:
  generate   - Generate code for every type marked generate
  supertypes - Show the resolved ancestors of a type
  deps       - Show generation order and dependencies
  config     - Create, show and validate girgen.toml
  version    - Show version information

Examples:
  girgen config init            # Write a default girgen.toml
  girgen generate -o src/auto   # Generate one file per type
  girgen supertypes Button      # Show Gtk.Button's ancestors
  girgen deps -v                # Show generation order with info logs`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("log-json")
		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default: nearest girgen.toml)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")

	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.SupertypesCmd)
	rootCmd.AddCommand(commands.DepsCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		for _, detail := range errors.GetAllDetails(err) {
			fmt.Fprintln(os.Stderr, "Detail:", detail)
		}
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintln(os.Stderr, "Hint:", hint)
		}
		os.Exit(1)
	}
}
