package config

import (
	"github.com/crateforge/crateforge/pkg/models"
)

// Validate checks the configuration for correctness.
func Validate(cfg *Config) error {
	if !models.ArgParser(cfg.Defaults.ArgParser).Valid() {
		return &ValidationError{
			Field:   "defaults.arg_parser",
			Message: "must be one of: clap, docopt",
			Value:   cfg.Defaults.ArgParser,
		}
	}
	if !models.License(cfg.Defaults.License).Valid() {
		return &ValidationError{
			Field:   "defaults.license",
			Message: "must be one of: both, mit, apache, none",
			Value:   cfg.Defaults.License,
		}
	}
	switch cfg.Cargo.Color {
	case "", "auto", "always", "never":
	default:
		return &ValidationError{
			Field:   "cargo.color",
			Message: "must be one of: auto, always, never",
			Value:   cfg.Cargo.Color,
		}
	}
	if cfg.Registry.TimeoutSeconds < 0 {
		return &ValidationError{
			Field:   "registry.timeout_seconds",
			Message: "must not be negative",
			Value:   cfg.Registry.TimeoutSeconds,
		}
	}
	return nil
}
