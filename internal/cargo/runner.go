// Package cargo invokes the external project initializer (cargo new).
// The scaffolding core depends only on the narrow Runner contract, so tests
// substitute a stub that simulates success, failure, or missing output
// without spawning a real process.
package cargo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os/exec"
	"path/filepath"

	"github.com/crateforge/crateforge/pkg/models"
)

// ErrNoExitCode indicates the child process terminated without an exit code
// (killed by a signal).
var ErrNoExitCode = errors.New("cargo: process terminated without an exit code")

// Runner invokes cargo with the given arguments and reports its exit code.
type Runner interface {
	// Run blocks until the process exits. It returns the exit code when the
	// process ran to completion (zero or not), and an error only when the
	// process could not be run or produced no exit code.
	Run(ctx context.Context, args []string) (int, error)
}

// execRunner is the production Runner backed by os/exec.
type execRunner struct {
	logger *slog.Logger
}

// NewRunner creates the production Runner.
func NewRunner(logger *slog.Logger) Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &execRunner{logger: logger}
}

// Run executes cargo with stdout/stderr discarded; crateforge owns the
// terminal output for the whole run.
func (r *execRunner) Run(ctx context.Context, args []string) (int, error) {
	r.logger.Debug("invoking cargo", "args", args)

	cmd := exec.CommandContext(ctx, "cargo", args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			return 0, ErrNoExitCode
		}
		r.logger.Debug("cargo exited non-zero", "code", code)
		return code, nil
	}

	return 0, err
}

// NewArgs builds the cargo new argument list from a configuration, passing
// through the flags cargo new understands in the order the original command
// line would produce them.
func NewArgs(cfg models.Configuration) []string {
	args := []string{"new", "--bin"}

	if cfg.Frozen {
		args = append(args, "--frozen")
	}
	if cfg.Locked {
		args = append(args, "--locked")
	}

	if cfg.Quiet {
		args = append(args, "--quiet")
	} else if cfg.Verbose == 1 {
		args = append(args, "-v")
	} else if cfg.Verbose >= 2 {
		args = append(args, "-vv")
	}

	if cfg.Color != "" {
		args = append(args, "--color", cfg.Color)
	}
	if cfg.VCS != "" {
		args = append(args, "--vcs", cfg.VCS)
	}

	if cfg.Name != "" && cfg.Name != filepath.Base(cfg.Path) {
		args = append(args, "--name", cfg.Name)
	}
	args = append(args, cfg.Path)

	return args
}
