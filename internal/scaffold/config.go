package scaffold

import "github.com/crateforge/crateforge/pkg/models"

// validateConfiguration is the fail-fast backstop for a violated caller
// contract. The CLI layer validates selections before constructing a
// Configuration; an invalid value reaching the core is a programmer error
// and aborts the run.
func validateConfiguration(cfg models.Configuration) error {
	if !cfg.ArgParser.Valid() {
		return ErrInvalidArgParser
	}
	if !cfg.License.Valid() {
		return ErrInvalidLicense
	}
	if cfg.Path == "" || cfg.Name == "" {
		return ErrInvalidPath
	}
	return nil
}
