package scaffold

import "github.com/crateforge/crateforge/pkg/models"

// Reporter receives write events and the final summary. Formatting, color,
// and verbosity gating are entirely the implementation's concern.
type Reporter interface {
	// FileWritten is called once per materialized file.
	FileWritten(ev models.WriteEvent)

	// Summary is called once after a fully successful run.
	Summary(name string)
}

// NopReporter discards all events. Used as the default when no reporter is
// configured and in tests that do not assert on output.
type NopReporter struct{}

// FileWritten implements Reporter.
func (NopReporter) FileWritten(models.WriteEvent) {}

// Summary implements Reporter.
func (NopReporter) Summary(string) {}
