package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/crateforge/crateforge/internal/cargo"
	"github.com/crateforge/crateforge/internal/cli/wizard"
	"github.com/crateforge/crateforge/internal/config"
	"github.com/crateforge/crateforge/internal/registry"
	"github.com/crateforge/crateforge/internal/scaffold"
	"github.com/crateforge/crateforge/internal/template"
	"github.com/crateforge/crateforge/internal/ui"
	"github.com/crateforge/crateforge/pkg/models"
)

var newCmd = &cobra.Command{
	Use:   "new <path>",
	Short: "Scaffold a new Rust CLI binary project",
	Long: `Scaffold a new Rust CLI binary project at the given path.

The project is created with cargo new --bin, then the generated sources are
replaced with an argument-parser skeleton, license files and a README are
added, and dependency versions are merged into Cargo.toml.

Examples:
  crateforge new my-app                        Scaffold ./my-app with defaults
  crateforge new my-app --arg-parser docopt    Use the docopt skeleton
  crateforge new my-app --license mit          MIT license only
  crateforge new my-app --no-latest            Skip the crates.io lookup
  crateforge new my-app --interactive          Answer prompts instead of flags`,
	Args:    cobra.ExactArgs(1),
	PreRunE: validateNewFlags,
	RunE:    runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().String("arg-parser", "", "Argument parser skeleton: clap or docopt")
	newCmd.Flags().String("license", "", "License: both, mit, apache, or none")
	newCmd.Flags().Bool("no-readme", false, "Do not generate a README.md")
	newCmd.Flags().Bool("no-latest", false, "Skip the crates.io lookup and use fallback versions")
	newCmd.Flags().String("name", "", "Crate name (default: the path's last component)")
	newCmd.Flags().Bool("interactive", false, "Ask the scaffolding questions interactively")

	// Options forwarded to cargo new.
	newCmd.Flags().String("vcs", "", "Version control system passed to cargo new (git, hg, pijul, fossil, none)")
	newCmd.Flags().Bool("frozen", false, "Pass --frozen to cargo")
	newCmd.Flags().Bool("locked", false, "Pass --locked to cargo")
	newCmd.Flags().String("color", "", "Coloring passed to cargo: auto, always, never")
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// getCountFlag retrieves a count flag value from the command.
func getCountFlag(cmd *cobra.Command, name string) int {
	val, err := cmd.Flags().GetCount(name)
	if err != nil {
		return 0
	}
	return val
}

// validateNewFlags validates flag values before execution.
func validateNewFlags(cmd *cobra.Command, _ []string) error {
	if parser := getStringFlag(cmd, "arg-parser"); parser != "" {
		if !models.ArgParser(parser).Valid() {
			return fmt.Errorf("invalid --arg-parser value %q: must be one of: clap, docopt", parser)
		}
	}
	if license := getStringFlag(cmd, "license"); license != "" {
		if !models.License(license).Valid() {
			return fmt.Errorf("invalid --license value %q: must be one of: both, mit, apache, none", license)
		}
	}
	if color := getStringFlag(cmd, "color"); color != "" {
		validColors := []string{"auto", "always", "never"}
		if !slices.Contains(validColors, color) {
			return fmt.Errorf("invalid --color value %q: must be one of: auto, always, never", color)
		}
	}
	if vcs := getStringFlag(cmd, "vcs"); vcs != "" {
		validVCS := []string{"git", "hg", "pijul", "fossil", "none"}
		if !slices.Contains(validVCS, vcs) {
			return fmt.Errorf("invalid --vcs value %q: must be one of: git, hg, pijul, fossil, none", vcs)
		}
	}
	return nil
}

// runNew assembles the configuration from defaults, flags, and optionally the
// wizard, then hands off to the orchestrator.
func runNew(cmd *cobra.Command, args []string) error {
	quiet := getBoolFlag(cmd, "quiet")
	verbose := getCountFlag(cmd, "verbose")
	level := LevelFromFlags(quiet, verbose)
	logger := newLogger(level)

	defaults, err := config.NewLoader(logger).Load()
	if err != nil {
		return err
	}

	cfg, err := buildConfiguration(cmd, args[0], defaults)
	if err != nil {
		return err
	}
	cfg.Quiet = quiet
	cfg.Verbose = verbose

	reporter := NewConsoleReporter(cmd.OutOrStdout(), level)
	resolver := newResolver(defaults.Registry, logger)
	runner := cargo.NewRunner(logger)
	orchestrator := scaffold.NewOrchestrator(runner, resolver, reporter, logger)

	code, err := orchestrator.Run(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	if code != 0 {
		exitCode = code
		return fmt.Errorf("cargo new exited with code %d", code)
	}
	return nil
}

// buildConfiguration merges the defaults file, flags, and wizard answers into
// the run configuration. Flags win over the defaults file; the wizard, when
// requested, wins over both.
func buildConfiguration(cmd *cobra.Command, path string, defaults *config.Config) (models.Configuration, error) {
	cfg := models.Configuration{
		ArgParser:     models.ArgParser(defaults.Defaults.ArgParser),
		License:       models.License(defaults.Defaults.License),
		IncludeReadme: defaults.Defaults.Readme,
		QueryLatest:   defaults.Defaults.QueryLatest,
		Path:          path,
		VCS:           defaults.Cargo.VCS,
		Color:         defaults.Cargo.Color,
	}

	if parser := getStringFlag(cmd, "arg-parser"); parser != "" {
		cfg.ArgParser = models.ArgParser(parser)
	}
	if license := getStringFlag(cmd, "license"); license != "" {
		cfg.License = models.License(license)
	}
	if getBoolFlag(cmd, "no-readme") {
		cfg.IncludeReadme = false
	}
	if getBoolFlag(cmd, "no-latest") {
		cfg.QueryLatest = false
	}
	if vcs := getStringFlag(cmd, "vcs"); vcs != "" {
		cfg.VCS = vcs
	}
	if color := getStringFlag(cmd, "color"); color != "" {
		cfg.Color = color
	}
	cfg.Frozen = getBoolFlag(cmd, "frozen")
	cfg.Locked = getBoolFlag(cmd, "locked")

	cfg.Name = getStringFlag(cmd, "name")
	if cfg.Name == "" {
		cfg.Name = filepath.Base(filepath.Clean(path))
	}

	if getBoolFlag(cmd, "interactive") {
		if !ui.IsTTY() {
			return cfg, errors.New("--interactive requires a terminal")
		}
		answers, err := wizard.Run(wizard.Answers{
			ArgParser:     cfg.ArgParser,
			License:       cfg.License,
			IncludeReadme: cfg.IncludeReadme,
			QueryLatest:   cfg.QueryLatest,
		})
		if err != nil {
			return cfg, err
		}
		cfg.ArgParser = answers.ArgParser
		cfg.License = answers.License
		cfg.IncludeReadme = answers.IncludeReadme
		cfg.QueryLatest = answers.QueryLatest
	}

	return cfg, nil
}

// newLogger builds the slog logger for a run. Structured logs are diagnostic
// output and only appear at debug verbosity or below.
func newLogger(level Level) *slog.Logger {
	if level > LevelDebug {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	slogLevel := slog.LevelDebug
	if level == LevelTrace {
		// Trace shows everything slog can emit.
		slogLevel = slog.Level(-8)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slogLevel}))
}

// newResolver builds the crates.io resolver from the registry settings.
func newResolver(rc config.RegistryConfig, logger *slog.Logger) registry.Resolver {
	timeout := time.Duration(rc.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = registry.DefaultTimeout
	}
	client := &http.Client{Timeout: timeout}
	return registry.NewResolver(rc.BaseURL, client, logger)
}

// templateDeps returns the dependency list for a parser choice. Shared by the
// deps and templates commands.
func templateDeps(parser models.ArgParser) ([]models.Dependency, error) {
	set, err := template.Select(parser)
	if err != nil {
		return nil, err
	}
	return set.Dependencies, nil
}
