// Package template holds the embedded template catalog, the license kit,
// and the strict renderer used to produce generated-project files.
package template

import "errors"

// Sentinel errors for template operations.
var (
	// ErrUnknownVariant indicates a parser variant outside the catalog.
	ErrUnknownVariant = errors.New("template: unknown parser variant")

	// ErrUnknownLicense indicates a license choice outside the kit.
	ErrUnknownLicense = errors.New("template: unknown license choice")

	// ErrTemplateNotFound indicates the named template is not embedded.
	ErrTemplateNotFound = errors.New("template: template not found")

	// ErrMissingTemplateKey indicates the context lacks a key the template
	// references. This is a programmer error in the catalog, not a runtime
	// condition.
	ErrMissingTemplateKey = errors.New("template: missing template key")

	// ErrUnexpandedToken indicates rendered output still contains a
	// placeholder token.
	ErrUnexpandedToken = errors.New("template: unexpanded token in rendered output")
)
