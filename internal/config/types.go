package config

// Config is the root configuration aggregate read from .crateforge.yaml.
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
	Cargo    CargoConfig    `yaml:"cargo"`
	Registry RegistryConfig `yaml:"registry"`
}

// DefaultsConfig holds default answers for the scaffolding prompts. Values
// set here pre-populate the corresponding flags of the new command.
type DefaultsConfig struct {
	ArgParser   string `yaml:"arg_parser"`
	License     string `yaml:"license"`
	Readme      bool   `yaml:"readme"`
	QueryLatest bool   `yaml:"query_latest"`
}

// CargoConfig holds options forwarded to cargo new.
type CargoConfig struct {
	VCS   string `yaml:"vcs"`
	Color string `yaml:"color"`
}

// RegistryConfig holds settings for the crates.io version lookup.
type RegistryConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}
