// Package wizard implements the interactive prompt flow for the new command.
package wizard

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/crateforge/crateforge/pkg/models"
)

// ErrCancelled indicates the user aborted the wizard.
var ErrCancelled = errors.New("wizard: cancelled by user")

// Answers holds the choices collected from the user.
type Answers struct {
	ArgParser     models.ArgParser
	License       models.License
	IncludeReadme bool
	QueryLatest   bool
}

// Run executes the wizard, pre-selecting the given defaults, and returns the
// collected answers. Aborting any prompt returns ErrCancelled.
func Run(defaults Answers) (*Answers, error) {
	answers := defaults

	parser := string(answers.ArgParser)
	license := string(answers.License)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Argument parser").
				Description("Library used for command-line parsing").
				Options(
					huh.NewOption("clap", string(models.ParserClap)),
					huh.NewOption("docopt", string(models.ParserDocopt)),
				).
				Value(&parser),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("License").
				Description("License files generated for the project").
				Options(
					huh.NewOption("MIT and Apache-2.0", string(models.LicenseBoth)),
					huh.NewOption("MIT", string(models.LicenseMIT)),
					huh.NewOption("Apache-2.0", string(models.LicenseApache)),
					huh.NewOption("none", string(models.LicenseNone)),
				).
				Value(&license),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Generate a README?").
				Value(&answers.IncludeReadme),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Query crates.io for latest dependency versions?").
				Description("Offline fallback versions are used otherwise").
				Value(&answers.QueryLatest),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrCancelled
		}
		return nil, fmt.Errorf("wizard error: %w", err)
	}

	answers.ArgParser = models.ArgParser(parser)
	answers.License = models.License(license)
	return &answers, nil
}
