package cli

import "github.com/charmbracelet/lipgloss"

// Color palette for the CLI. These are the single source of truth; never use
// inline lipgloss.Color literals in command code.
var (
	// ColorVerb is the bright green used for the aligned action verbs.
	ColorVerb = lipgloss.Color("82")

	// ColorError is used for error prefixes.
	ColorError = lipgloss.Color("196")

	// ColorNoun is used for identifiable nouns: project names, crate names.
	ColorNoun = lipgloss.Color("14")
)

// Semantic styles mapping output concepts to presentation.
var (
	// StyleVerb styles the action verb column (Created, Updated, Finished).
	StyleVerb = lipgloss.NewStyle().Bold(true).Foreground(ColorVerb)

	// StyleError styles the error prefix.
	StyleError = lipgloss.NewStyle().Bold(true).Foreground(ColorError)

	// StyleNoun styles project and crate names.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorNoun)

	// StyleDim styles secondary detail such as versions and paths.
	StyleDim = lipgloss.NewStyle().Faint(true)
)
