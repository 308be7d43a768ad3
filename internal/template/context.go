package template

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaser title-cases the project name for display in generated docs.
var titleCaser = cases.Title(language.English)

// Context is the substitution context for template rendering. One context
// is built per run and shared by every template in the set.
type Context struct {
	// Name is the package name of the generated project.
	Name string

	// TitleName is Name title-cased for headings.
	TitleName string

	// Year is the copyright year for license headers and bodies.
	Year int
}

// NewContext builds a rendering context for the given project name.
func NewContext(name string) *Context {
	return &Context{
		Name:      name,
		TitleName: titleCaser.String(name),
		Year:      time.Now().Year(),
	}
}
