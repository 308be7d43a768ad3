// Package manifest merges resolved dependency versions and license/readme
// metadata into the Cargo.toml produced by cargo new.
//
// The manifest is decoded into a generic key-value tree so that fields the
// merger does not own survive the load-merge-store round trip verbatim.
// Known limitation: TOML comments and key ordering are not preserved by the
// underlying codec; keys and values always are.
package manifest

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/crateforge/crateforge/internal/defs"
)

// Sentinel errors for manifest operations.
var (
	// ErrManifestRead indicates the manifest file could not be read. The
	// external initializer is contractually required to have created it.
	ErrManifestRead = errors.New("manifest: cannot read Cargo.toml")

	// ErrManifestParse indicates the manifest is not valid TOML.
	ErrManifestParse = errors.New("manifest: cannot parse Cargo.toml")

	// ErrManifestWrite indicates the updated manifest could not be written.
	ErrManifestWrite = errors.New("manifest: cannot write Cargo.toml")
)

// Merger loads, updates, and stores a project manifest.
type Merger struct {
	logger *slog.Logger
}

// NewMerger creates a Merger.
func NewMerger(logger *slog.Logger) *Merger {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Merger{logger: logger}
}

// Merge reads the manifest at path, applies the dependency versions and
// package metadata, and writes it back. The in-memory tree is fully updated
// before any write occurs, so no partial merge is ever observable.
//
// Dependency entries are inserted or overwritten; pre-existing entries not
// present in deps are left untouched. package.readme is set only when
// includeReadme is true, package.license only when manifestLicense is
// non-nil; otherwise both stay exactly as the initializer produced them.
func (m *Merger) Merge(path string, deps map[string]string, manifestLicense *string, includeReadme bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrManifestRead, err)
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrManifestParse, err)
	}

	pkg, ok := doc["package"].(map[string]any)
	if !ok {
		return fmt.Errorf("%w: missing [package] table", ErrManifestParse)
	}

	dependencies, ok := doc["dependencies"].(map[string]any)
	if !ok {
		dependencies = make(map[string]any, len(deps))
	}
	for name, version := range deps {
		dependencies[name] = version
	}
	doc["dependencies"] = dependencies

	if includeReadme {
		pkg["readme"] = defs.ReadmeMD
	}
	if manifestLicense != nil {
		pkg["license"] = *manifestLicense
	}
	doc["package"] = pkg

	out, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrManifestWrite, err)
	}

	if err := os.WriteFile(path, out, defs.FilePerm); err != nil {
		return fmt.Errorf("%w: %v", ErrManifestWrite, err)
	}

	m.logger.Debug("manifest merged",
		"path", path,
		"dependencies", len(deps),
		"readme", includeReadme,
		"license", manifestLicense != nil,
	)

	return nil
}
