package scaffold

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/crateforge/crateforge/internal/cargo"
	"github.com/crateforge/crateforge/internal/defs"
	"github.com/crateforge/crateforge/internal/manifest"
	"github.com/crateforge/crateforge/internal/materialize"
	"github.com/crateforge/crateforge/internal/registry"
	"github.com/crateforge/crateforge/internal/template"
	"github.com/crateforge/crateforge/pkg/models"
)

// Orchestrator drives one scaffolding run end to end: template selection,
// cargo new invocation, file materialization, version resolution, and the
// manifest merge. The sequence is linear; the first failure aborts the run
// and nothing already written is rolled back.
type Orchestrator struct {
	runner   cargo.Runner
	resolver registry.Resolver
	reporter Reporter
	logger   *slog.Logger
}

// NewOrchestrator creates an Orchestrator with the given collaborators.
// A nil reporter discards events.
func NewOrchestrator(runner cargo.Runner, resolver registry.Resolver, reporter Reporter, logger *slog.Logger) *Orchestrator {
	if reporter == nil {
		reporter = NopReporter{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Orchestrator{
		runner:   runner,
		resolver: resolver,
		reporter: reporter,
		logger:   logger,
	}
}

// Run executes the scaffolding sequence and returns the process exit code.
// A non-zero exit from cargo new is returned verbatim with a nil error and
// short-circuits the run; any fatal core error returns exit code 1.
func (o *Orchestrator) Run(ctx context.Context, cfg models.Configuration) (int, error) {
	if err := validateConfiguration(cfg); err != nil {
		return 1, err
	}

	set, err := template.Select(cfg.ArgParser)
	if err != nil {
		return 1, fmt.Errorf("%w: %q", ErrInvalidArgParser, cfg.ArgParser)
	}
	licenses, err := template.SelectLicense(cfg.License)
	if err != nil {
		return 1, fmt.Errorf("%w: %q", ErrInvalidLicense, cfg.License)
	}

	o.logger.Info("scaffolding project",
		"name", cfg.Name,
		"path", cfg.Path,
		"parser", cfg.ArgParser,
		"license", cfg.License,
	)

	if err := ctx.Err(); err != nil {
		return 1, err
	}

	code, err := o.runner.Run(ctx, cargo.NewArgs(cfg))
	if err != nil {
		return 1, fmt.Errorf("%w: %v", ErrInvalidExitCode, err)
	}
	if code != 0 {
		o.logger.Warn("cargo new failed", "code", code)
		return code, nil
	}

	if err := ctx.Err(); err != nil {
		return 1, err
	}

	if err := o.materializeFiles(cfg, set, licenses); err != nil {
		return 1, err
	}

	if err := ctx.Err(); err != nil {
		return 1, err
	}

	if err := o.mergeManifest(ctx, cfg, set, licenses); err != nil {
		return 1, err
	}

	o.reporter.Summary(cfg.Name)
	o.logger.Info("project scaffolded", "name", cfg.Name)

	return 0, nil
}

// materializeFiles renders every template in the set and writes it under
// the project root, honoring the per-role policies and gates.
func (o *Orchestrator) materializeFiles(cfg models.Configuration, set template.Set, licenses template.LicenseAssets) error {
	assets, err := template.Assets()
	if err != nil {
		return fmt.Errorf("load embedded templates: %w", err)
	}
	renderer := template.NewRenderer(assets)
	tmplCtx := template.NewContext(cfg.Name)
	writer := materialize.NewWriter(cfg.Path, o.logger)

	// Generated sources carry the license header fragment when any
	// license was selected.
	var header []byte
	if licenses.HasLicense() {
		header, err = renderer.Render(licenses.Header, tmplCtx)
		if err != nil {
			return err
		}
	}

	sources := []struct {
		role  materialize.FileRole
		asset string
	}{
		{materialize.RoleEntryPoint, set.EntryPoint},
		{materialize.RoleRuntime, set.Runtime},
		{materialize.RoleErrorModule, set.ErrorModule},
	}
	for _, src := range sources {
		body, err := renderer.Render(src.asset, tmplCtx)
		if err != nil {
			return err
		}
		if err := o.write(writer, src.role, append(append([]byte{}, header...), body...)); err != nil {
			return err
		}
	}

	// License and README roles are gated: absent assets write nothing.
	var mitBody, apacheBody, readmeBody []byte
	if licenses.MITBody != nil {
		if mitBody, err = renderer.Render(*licenses.MITBody, tmplCtx); err != nil {
			return err
		}
	}
	if licenses.ApacheBody != nil {
		if apacheBody, err = renderer.Render(*licenses.ApacheBody, tmplCtx); err != nil {
			return err
		}
	}
	if cfg.IncludeReadme {
		if readmeBody, err = renderer.Render(template.AssetReadme, tmplCtx); err != nil {
			return err
		}
	}

	if err := o.write(writer, materialize.RoleLicenseMIT, mitBody); err != nil {
		return err
	}
	if err := o.write(writer, materialize.RoleLicenseApache, apacheBody); err != nil {
		return err
	}
	if err := o.write(writer, materialize.RoleReadme, readmeBody); err != nil {
		return err
	}

	return nil
}

// write materializes one role and forwards the event, if any.
func (o *Orchestrator) write(writer *materialize.Writer, role materialize.FileRole, content []byte) error {
	ev, err := writer.Write(role, content)
	if err != nil {
		return err
	}
	if ev != nil {
		o.reporter.FileWritten(*ev)
	}
	return nil
}

// mergeManifest resolves dependency versions and merges them, together with
// the license and readme metadata, into the Cargo.toml cargo new produced.
func (o *Orchestrator) mergeManifest(ctx context.Context, cfg models.Configuration, set template.Set, licenses template.LicenseAssets) error {
	var versions map[string]string
	if cfg.QueryLatest {
		versions = o.resolver.ResolveAll(ctx, set.Dependencies)
	} else {
		versions = registry.FallbackVersions(set.Dependencies)
	}

	writer := materialize.NewWriter(cfg.Path, o.logger)
	merger := manifest.NewMerger(o.logger)
	if err := merger.Merge(writer.PathFor(materialize.RoleManifest), versions, licenses.ManifestLicense, cfg.IncludeReadme); err != nil {
		return err
	}

	o.reporter.FileWritten(models.WriteEvent{Verb: models.VerbUpdated, Path: defs.CargoToml})
	return nil
}
