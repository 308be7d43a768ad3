// Package cli wires the crateforge commands. Commands stay thin: flag
// parsing and presentation live here, the scaffolding semantics live in the
// internal packages.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crateforge/crateforge/internal/scaffold"
	"github.com/crateforge/crateforge/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "crateforge",
	Short: "Scaffold Rust CLI binary projects",
	Long: `crateforge scaffolds a new Rust command-line binary project on top of
cargo new. It generates an argument-parser skeleton (clap or docopt), license
files, a README, and merges dependency versions resolved from crates.io into
the generated Cargo.toml.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return fmt.Errorf("%w: %q", scaffold.ErrInvalidSubCommand, args[0])
		}
		return cmd.Help()
	},
}

// exitCode holds the process exit code for Execute. Commands that wrap an
// external tool set it to propagate the tool's code verbatim.
var exitCode int

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", StyleError.Render("error:"), err)
		if exitCode == 0 {
			exitCode = 1
		}
	}
	return exitCode
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("crateforge %s\n", version.GetFullVersion()))

	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only print warnings and errors")
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeatable)")
}
