package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/crateforge/crateforge/internal/scaffold"
	"github.com/crateforge/crateforge/pkg/models"
)

// Level controls how much progress output the reporter emits.
type Level int

// Verbosity levels, most verbose first.
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
)

// LevelFromFlags maps the --quiet and -v flag state to a Level. Quiet wins
// over any -v count.
func LevelFromFlags(quiet bool, verbose int) Level {
	switch {
	case quiet:
		return LevelWarn
	case verbose >= 2:
		return LevelTrace
	case verbose == 1:
		return LevelDebug
	default:
		return LevelInfo
	}
}

// consoleReporter prints cargo-style progress lines: a right-aligned bold
// green verb followed by the affected path.
type consoleReporter struct {
	mu    sync.Mutex
	out   io.Writer
	level Level
}

// NewConsoleReporter creates a reporter writing to out at the given level.
func NewConsoleReporter(out io.Writer, level Level) scaffold.Reporter {
	return &consoleReporter{out: out, level: level}
}

// FileWritten prints one per-file progress line. Individual file events are
// detail output and only show at debug verbosity or below.
func (r *consoleReporter) FileWritten(ev models.WriteEvent) {
	if r.level > LevelDebug {
		return
	}
	r.line(string(ev.Verb), ev.Path)
}

// Summary prints the final success line for the scaffolded project.
func (r *consoleReporter) Summary(name string) {
	if r.level > LevelInfo {
		return
	}
	r.line("Created", fmt.Sprintf("binary cli (application) `%s` project", name))
}

func (r *consoleReporter) line(verb, rest string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "%s %s\n", StyleVerb.Render(fmt.Sprintf("%12s", verb)), rest)
}
