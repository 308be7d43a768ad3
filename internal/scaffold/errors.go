// Package scaffold orchestrates project generation: template selection,
// cargo new invocation, file materialization, and manifest merging.
package scaffold

import "errors"

// Sentinel errors for configuration-contract violations and external tool
// failures. All are fatal; none are retried.
var (
	// ErrInvalidArgParser indicates an unrecognized argument parser selection.
	ErrInvalidArgParser = errors.New("scaffold: invalid argument parser specified")

	// ErrInvalidLicense indicates an unrecognized license selection.
	ErrInvalidLicense = errors.New("scaffold: invalid license type specified")

	// ErrInvalidPath indicates a missing or unusable target path.
	ErrInvalidPath = errors.New("scaffold: invalid path specified")

	// ErrInvalidSubCommand indicates the CLI dispatched an unknown subcommand.
	ErrInvalidSubCommand = errors.New("scaffold: invalid subcommand specified")

	// ErrInvalidExitCode indicates cargo new terminated without an exit code
	// (killed by a signal).
	ErrInvalidExitCode = errors.New("scaffold: invalid exit code received from cargo new")
)
