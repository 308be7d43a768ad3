package models

// Dependency names one crate the generated project requires, together with
// the version used when the registry is not queried or not reachable.
type Dependency struct {
	// Name is the crate name as published on the registry.
	Name string

	// Fallback is the hard-coded version used when the latest-version
	// lookup is disabled or fails.
	Fallback string
}

// Verb describes what a write did to the target path.
type Verb string

// Write verbs. Updated is reserved for the entry-point stub that cargo new
// already created; everything else is Created.
const (
	VerbCreated Verb = "Created"
	VerbUpdated Verb = "Updated"
)

// WriteEvent records one successful file write for the presentation layer.
type WriteEvent struct {
	Verb Verb
	Path string
}
