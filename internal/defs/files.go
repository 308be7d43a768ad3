package defs

import "io/fs"

// File names inside a generated project, relative to the project root.
const (
	// CargoToml is the package manifest created by cargo new.
	CargoToml = "Cargo.toml"

	// MainRS is the entry-point stub cargo new leaves behind.
	MainRS = "src/main.rs"

	// RunRS is the generated runtime module.
	RunRS = "src/run.rs"

	// ErrorRS is the generated error taxonomy module.
	ErrorRS = "src/error.rs"

	// LicenseMIT is the MIT license file.
	LicenseMIT = "LICENSE-MIT"

	// LicenseApache is the Apache-2.0 license file.
	LicenseApache = "LICENSE-APACHE"

	// ReadmeMD is the generated README.
	ReadmeMD = "README.md"
)

// ConfigYAML is the optional crateforge defaults file, looked up in the
// working directory and then in the user's home directory.
const ConfigYAML = ".crateforge.yaml"

// Permissions for generated files and directories.
const (
	FilePerm fs.FileMode = 0o644
	DirPerm  fs.FileMode = 0o755
)
