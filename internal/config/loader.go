package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/crateforge/crateforge/internal/defs"
)

// Loader reads the optional .crateforge.yaml defaults file.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a new Loader instance.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load reads .crateforge.yaml from the current working directory, falling
// back to the user's home directory, and returns the merged Config. A missing
// file yields the built-in defaults; an unreadable or invalid file is an error.
func (l *Loader) Load() (*Config, error) {
	cfg := NewDefaultConfig()

	path, ok := l.locate()
	if !ok {
		l.logger.Debug("no defaults file found, using built-in defaults")
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidYAML, path, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	l.logger.Debug("loaded defaults file", "path", path)
	return cfg, nil
}

// locate finds the defaults file, preferring the working directory over the
// home directory.
func (l *Loader) locate() (string, bool) {
	candidates := make([]string, 0, 2)
	if wd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(wd, defs.ConfigYAML))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, defs.ConfigYAML))
	}
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}
