package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/crateforge/crateforge/internal/config"
	"github.com/crateforge/crateforge/internal/registry"
	"github.com/crateforge/crateforge/internal/ui"
	"github.com/crateforge/crateforge/pkg/models"
)

var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Show the crate dependencies a scaffold would declare",
	Long: `Show the crates a scaffolded project depends on, together with the
version that would be written into Cargo.toml.

By default the latest versions are resolved from crates.io; --no-latest
prints the offline fallback versions instead.`,
	Args:    cobra.NoArgs,
	PreRunE: validateDepsFlags,
	RunE:    runDeps,
}

func init() {
	rootCmd.AddCommand(depsCmd)

	depsCmd.Flags().String("arg-parser", "", "Argument parser skeleton: clap or docopt")
	depsCmd.Flags().Bool("no-latest", false, "Skip the crates.io lookup and show fallback versions")
}

func validateDepsFlags(cmd *cobra.Command, _ []string) error {
	if parser := getStringFlag(cmd, "arg-parser"); parser != "" {
		if !models.ArgParser(parser).Valid() {
			return fmt.Errorf("invalid --arg-parser value %q: must be one of: clap, docopt", parser)
		}
	}
	return nil
}

func runDeps(cmd *cobra.Command, _ []string) error {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	defaults, err := config.NewLoader(logger).Load()
	if err != nil {
		return err
	}

	parser := models.ArgParser(defaults.Defaults.ArgParser)
	if flag := getStringFlag(cmd, "arg-parser"); flag != "" {
		parser = models.ArgParser(flag)
	}

	deps, err := templateDeps(parser)
	if err != nil {
		return err
	}

	var versions map[string]string
	if getBoolFlag(cmd, "no-latest") {
		versions = registry.FallbackVersions(deps)
	} else {
		resolver := newResolver(defaults.Registry, logger)
		err := ui.RunWithSpinner(cmd.Context(), "Resolving versions from crates.io...", func() error {
			versions = resolver.ResolveAll(cmd.Context(), deps)
			return nil
		})
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	for _, dep := range deps {
		fmt.Fprintf(out, "%s %s\n", StyleNoun.Render(dep.Name), StyleDim.Render(versions[dep.Name]))
	}
	return nil
}
