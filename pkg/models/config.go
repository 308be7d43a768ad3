package models

// ArgParser selects which argument-parsing crate the generated project uses.
type ArgParser string

// Supported argument parsers.
const (
	ParserClap   ArgParser = "clap"
	ParserDocopt ArgParser = "docopt"
)

// Valid reports whether the value is a member of the closed enumeration.
func (p ArgParser) Valid() bool {
	return p == ParserClap || p == ParserDocopt
}

// License selects the licensing included in the generated project.
type License string

// Supported license choices.
const (
	LicenseBoth   License = "both"
	LicenseMIT    License = "mit"
	LicenseApache License = "apache"
	LicenseNone   License = "none"
)

// Valid reports whether the value is a member of the closed enumeration.
func (l License) Valid() bool {
	switch l {
	case LicenseBoth, LicenseMIT, LicenseApache, LicenseNone:
		return true
	}
	return false
}

// IncludesMIT reports whether the choice carries an MIT license file.
func (l License) IncludesMIT() bool {
	return l == LicenseBoth || l == LicenseMIT
}

// IncludesApache reports whether the choice carries an Apache license file.
func (l License) IncludesApache() bool {
	return l == LicenseBoth || l == LicenseApache
}

// Configuration is the validated input to a scaffolding run. It is produced
// by the CLI layer (flags, defaults file, wizard) and never mutated afterwards.
type Configuration struct {
	// ArgParser is the parser variant: clap or docopt.
	ArgParser ArgParser

	// License is the license choice: both, mit, apache, or none.
	License License

	// IncludeReadme controls README.md generation.
	IncludeReadme bool

	// QueryLatest controls the crates.io lookup for latest versions.
	// When false every dependency receives its fallback version.
	QueryLatest bool

	// Name is the package name of the generated project.
	Name string

	// Path is the target directory handed to cargo new.
	Path string

	// VCS is passed through to cargo new (git, hg, pijul, fossil, none).
	VCS string

	// Frozen and Locked are passed through to cargo new. Mutually exclusive.
	Frozen bool
	Locked bool

	// Color is passed through to cargo new (auto, always, never).
	Color string

	// Quiet suppresses output below the warning threshold and passes
	// --quiet to cargo new.
	Quiet bool

	// Verbose is the counted -v occurrences (0, 1, or 2+), passed through
	// to cargo new as -v / -vv.
	Verbose int
}
