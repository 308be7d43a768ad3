package template

import (
	"fmt"

	"github.com/crateforge/crateforge/pkg/models"
)

// Embedded asset names for the per-variant source templates.
const (
	assetClapMain    = "clap/main.rs.tmpl"
	assetClapRun     = "clap/run.rs.tmpl"
	assetClapError   = "clap/error.rs.tmpl"
	assetDocoptMain  = "docopt/main.rs.tmpl"
	assetDocoptRun   = "docopt/run.rs.tmpl"
	assetDocoptError = "docopt/error.rs.tmpl"

	// AssetReadme is the README template shared by both variants.
	AssetReadme = "README.md.tmpl"
)

// Set is the fixed triple of source templates associated with one parser
// variant, plus the dependency table the generated project requires.
type Set struct {
	// Variant is the parser selection this set belongs to.
	Variant models.ArgParser

	// EntryPoint, Runtime, and ErrorModule name the embedded templates for
	// src/main.rs, src/run.rs, and src/error.rs respectively.
	EntryPoint  string
	Runtime     string
	ErrorModule string

	// Dependencies lists the crates the generated project depends on, in
	// manifest order, each with its offline fallback version.
	Dependencies []models.Dependency
}

// catalog maps each parser variant to its template set. Exactly one set
// exists per variant; selection is a total, pure lookup.
var catalog = map[models.ArgParser]Set{
	models.ParserClap: {
		Variant:     models.ParserClap,
		EntryPoint:  assetClapMain,
		Runtime:     assetClapRun,
		ErrorModule: assetClapError,
		Dependencies: []models.Dependency{
			{Name: "clap", Fallback: "2.25.0"},
			{Name: "error-chain", Fallback: "0.10.0"},
		},
	},
	models.ParserDocopt: {
		Variant:     models.ParserDocopt,
		EntryPoint:  assetDocoptMain,
		Runtime:     assetDocoptRun,
		ErrorModule: assetDocoptError,
		Dependencies: []models.Dependency{
			{Name: "docopt", Fallback: "0.8.1"},
			{Name: "error-chain", Fallback: "0.10.0"},
			{Name: "serde", Fallback: "1.0.8"},
			{Name: "serde_derive", Fallback: "1.0.8"},
		},
	},
}

// Select returns the template set for the given parser variant.
func Select(variant models.ArgParser) (Set, error) {
	set, ok := catalog[variant]
	if !ok {
		return Set{}, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}
	return set, nil
}

// Variants returns the supported parser variants in display order.
func Variants() []models.ArgParser {
	return []models.ArgParser{models.ParserClap, models.ParserDocopt}
}

// DefaultVariant is used when no parser variant is specified.
const DefaultVariant = models.ParserClap
