package config

import "github.com/crateforge/crateforge/pkg/models"

// Default value constants to avoid magic strings.
const (
	DefaultArgParser = string(models.ParserClap)
	DefaultLicense   = string(models.LicenseBoth)

	DefaultRegistryBaseURL = "https://crates.io/api/v1/crates"
	DefaultTimeoutSeconds  = 5
)

// NewDefaultConfig returns a Config populated with built-in defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			ArgParser:   DefaultArgParser,
			License:     DefaultLicense,
			Readme:      true,
			QueryLatest: true,
		},
		Cargo: CargoConfig{},
		Registry: RegistryConfig{
			BaseURL:        DefaultRegistryBaseURL,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
	}
}
