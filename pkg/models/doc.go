// Package models defines the shared types passed between the CLI layer and
// the scaffolding core: the validated run configuration, dependency entries,
// and write events.
package models
