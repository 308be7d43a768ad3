package materialize

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/crateforge/crateforge/internal/defs"
	"github.com/crateforge/crateforge/pkg/models"
)

// Sentinel errors for materialization.
var (
	// ErrUnknownRole indicates a role outside the fixed table.
	ErrUnknownRole = errors.New("materialize: unknown file role")

	// ErrTargetExists indicates a create-new-only target already exists.
	ErrTargetExists = errors.New("materialize: target file already exists")

	// ErrTargetMissing indicates an overwrite-existing target is absent,
	// meaning the external initializer violated its contract.
	ErrTargetMissing = errors.New("materialize: expected target file is missing")
)

// Writer materializes rendered content under a project root.
type Writer struct {
	basePath string
	logger   *slog.Logger
}

// NewWriter creates a Writer rooted at basePath.
func NewWriter(basePath string, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Writer{
		basePath: filepath.Clean(basePath),
		logger:   logger,
	}
}

// PathFor returns the absolute target path for a role.
func (w *Writer) PathFor(role FileRole) string {
	return filepath.Join(w.basePath, filepath.FromSlash(roles[role].relPath))
}

// Write applies the role's creation policy and writes content to the role's
// fixed path. A nil content means the role is gated off for this run: no
// file is touched and no event is emitted.
//
// The returned event carries the Updated verb only for the
// overwrite-existing policy; everything else reports Created.
func (w *Writer) Write(role FileRole, content []byte) (*models.WriteEvent, error) {
	spec, ok := roles[role]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRole, role)
	}

	if content == nil {
		return nil, nil
	}

	path := w.PathFor(role)

	var f *os.File
	var err error
	verb := models.VerbCreated
	switch spec.policy {
	case OverwriteExisting:
		f, err = os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrTargetMissing, spec.relPath)
			}
			return nil, fmt.Errorf("materialize: open %s: %w", spec.relPath, err)
		}
		verb = models.VerbUpdated
	case CreateNewOnly:
		f, err = os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, defs.FilePerm)
		if err != nil {
			if errors.Is(err, os.ErrExist) {
				return nil, fmt.Errorf("%w: %s", ErrTargetExists, spec.relPath)
			}
			return nil, fmt.Errorf("materialize: create %s: %w", spec.relPath, err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownRole, role)
	}

	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("materialize: write %s: %w", spec.relPath, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("materialize: close %s: %w", spec.relPath, err)
	}

	w.logger.Debug("file materialized", "path", spec.relPath, "verb", verb)

	return &models.WriteEvent{Verb: verb, Path: spec.relPath}, nil
}
