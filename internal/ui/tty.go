// Package ui provides small terminal helpers shared by the CLI commands.
package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTTY reports whether stdout is attached to a terminal. Interactive
// elements such as the wizard and spinners are suppressed otherwise.
func IsTTY() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
