package scaffold

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"github.com/crateforge/crateforge/pkg/models"
)

// stubRunner simulates cargo new, materializing the manifest and entry-point
// stub the way cargo does before reporting the configured exit code.
type stubRunner struct {
	path  string
	code  int
	err   error
	calls [][]string
}

func (s *stubRunner) Run(_ context.Context, args []string) (int, error) {
	s.calls = append(s.calls, args)
	if s.err != nil || s.code != 0 {
		return s.code, s.err
	}
	if err := os.MkdirAll(filepath.Join(s.path, "src"), 0o755); err != nil {
		return 0, err
	}
	stub := []byte("fn main() {\n    println!(\"Hello, world!\");\n}\n")
	if err := os.WriteFile(filepath.Join(s.path, "src", "main.rs"), stub, 0o644); err != nil {
		return 0, err
	}
	manifest := []byte("[package]\nname = \"demo\"\nversion = \"0.1.0\"\nedition = \"2021\"\n\n[dependencies]\n")
	if err := os.WriteFile(filepath.Join(s.path, "Cargo.toml"), manifest, 0o644); err != nil {
		return 0, err
	}
	return 0, nil
}

// stubResolver serves canned versions without touching the network.
type stubResolver struct {
	versions map[string]string
	called   bool
}

func (s *stubResolver) ResolveLatest(_ context.Context, dep models.Dependency) string {
	s.called = true
	if v, ok := s.versions[dep.Name]; ok {
		return v
	}
	return dep.Fallback
}

func (s *stubResolver) ResolveAll(ctx context.Context, deps []models.Dependency) map[string]string {
	out := make(map[string]string, len(deps))
	for _, dep := range deps {
		out[dep.Name] = s.ResolveLatest(ctx, dep)
	}
	return out
}

// recordingReporter captures emitted events for assertions.
type recordingReporter struct {
	events    []models.WriteEvent
	summaries []string
}

func (r *recordingReporter) FileWritten(ev models.WriteEvent) { r.events = append(r.events, ev) }
func (r *recordingReporter) Summary(name string)              { r.summaries = append(r.summaries, name) }

func (r *recordingReporter) verbFor(path string) (models.Verb, bool) {
	for _, ev := range r.events {
		if ev.Path == path {
			return ev.Verb, true
		}
	}
	return "", false
}

func baseConfig(path string) models.Configuration {
	return models.Configuration{
		ArgParser:     models.ParserClap,
		License:       models.LicenseBoth,
		IncludeReadme: true,
		QueryLatest:   false,
		Name:          "demo",
		Path:          path,
	}
}

func readManifest(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(path, "Cargo.toml"))
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("parse manifest: %v", err)
	}
	return doc
}

func TestOrchestratorRun(t *testing.T) {
	t.Run("full run with both licenses and readme", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "demo")
		runner := &stubRunner{path: dir}
		reporter := &recordingReporter{}
		o := NewOrchestrator(runner, &stubResolver{}, reporter, nil)

		code, err := o.Run(context.Background(), baseConfig(dir))
		if err != nil {
			t.Fatalf("Run error: %v", err)
		}
		if code != 0 {
			t.Fatalf("code = %d, want 0", code)
		}

		for _, rel := range []string{"src/main.rs", "src/run.rs", "src/error.rs", "LICENSE-MIT", "LICENSE-APACHE", "README.md", "Cargo.toml"} {
			if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel))); err != nil {
				t.Errorf("expected %s to exist: %v", rel, err)
			}
		}

		// Generated sources carry the license header and real content.
		mainRS, _ := os.ReadFile(filepath.Join(dir, "src", "main.rs"))
		if !strings.HasPrefix(string(mainRS), "// Copyright") {
			t.Errorf("main.rs lacks license header: %q", string(mainRS[:40]))
		}
		if strings.Contains(string(mainRS), "Hello, world!") {
			t.Error("main.rs still contains the cargo stub")
		}

		// Manifest carries fallback versions and metadata.
		doc := readManifest(t, dir)
		deps := doc["dependencies"].(map[string]any)
		if deps["clap"] != "2.25.0" || deps["error-chain"] != "0.10.0" {
			t.Errorf("dependencies = %v", deps)
		}
		pkg := doc["package"].(map[string]any)
		if pkg["license"] != "MIT/Apache-2.0" {
			t.Errorf("package.license = %v", pkg["license"])
		}
		if pkg["readme"] != "README.md" {
			t.Errorf("package.readme = %v", pkg["readme"])
		}
		if pkg["name"] != "demo" {
			t.Errorf("package.name mangled: %v", pkg["name"])
		}

		// Events: main.rs and Cargo.toml are updates, the rest creations.
		if verb, ok := reporter.verbFor("src/main.rs"); !ok || verb != models.VerbUpdated {
			t.Errorf("main.rs verb = %v, %v", verb, ok)
		}
		if verb, ok := reporter.verbFor("Cargo.toml"); !ok || verb != models.VerbUpdated {
			t.Errorf("Cargo.toml verb = %v, %v", verb, ok)
		}
		if verb, ok := reporter.verbFor("src/run.rs"); !ok || verb != models.VerbCreated {
			t.Errorf("run.rs verb = %v, %v", verb, ok)
		}
		if len(reporter.events) != 7 {
			t.Errorf("got %d events, want 7", len(reporter.events))
		}
		if len(reporter.summaries) != 1 || reporter.summaries[0] != "demo" {
			t.Errorf("summaries = %v", reporter.summaries)
		}
	})

	t.Run("license none and no readme gates the writes", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "demo")
		runner := &stubRunner{path: dir}
		reporter := &recordingReporter{}
		o := NewOrchestrator(runner, &stubResolver{}, reporter, nil)

		cfg := baseConfig(dir)
		cfg.License = models.LicenseNone
		cfg.IncludeReadme = false

		if _, err := o.Run(context.Background(), cfg); err != nil {
			t.Fatalf("Run error: %v", err)
		}

		for _, rel := range []string{"LICENSE-MIT", "LICENSE-APACHE", "README.md"} {
			if _, err := os.Stat(filepath.Join(dir, rel)); !errors.Is(err, os.ErrNotExist) {
				t.Errorf("gated file %s was written", rel)
			}
		}

		mainRS, _ := os.ReadFile(filepath.Join(dir, "src", "main.rs"))
		if strings.HasPrefix(string(mainRS), "// Copyright") {
			t.Error("main.rs carries a license header although none was chosen")
		}

		pkg := readManifest(t, dir)["package"].(map[string]any)
		if _, ok := pkg["license"]; ok {
			t.Error("package.license was set")
		}
		if _, ok := pkg["readme"]; ok {
			t.Error("package.readme was set")
		}
	})

	t.Run("docopt variant resolves its own dependency table", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "demo")
		runner := &stubRunner{path: dir}
		o := NewOrchestrator(runner, &stubResolver{}, &recordingReporter{}, nil)

		cfg := baseConfig(dir)
		cfg.ArgParser = models.ParserDocopt

		if _, err := o.Run(context.Background(), cfg); err != nil {
			t.Fatalf("Run error: %v", err)
		}

		deps := readManifest(t, dir)["dependencies"].(map[string]any)
		want := map[string]string{
			"docopt":       "0.8.1",
			"error-chain":  "0.10.0",
			"serde":        "1.0.8",
			"serde_derive": "1.0.8",
		}
		for name, v := range want {
			if deps[name] != v {
				t.Errorf("dependencies[%q] = %v, want %q", name, deps[name], v)
			}
		}
	})

	t.Run("query latest consults the resolver", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "demo")
		runner := &stubRunner{path: dir}
		resolver := &stubResolver{versions: map[string]string{"clap": "2.33.4"}}
		o := NewOrchestrator(runner, resolver, &recordingReporter{}, nil)

		cfg := baseConfig(dir)
		cfg.QueryLatest = true

		if _, err := o.Run(context.Background(), cfg); err != nil {
			t.Fatalf("Run error: %v", err)
		}
		if !resolver.called {
			t.Error("resolver was never consulted")
		}
		deps := readManifest(t, dir)["dependencies"].(map[string]any)
		if deps["clap"] != "2.33.4" {
			t.Errorf("dependencies.clap = %v, want resolved 2.33.4", deps["clap"])
		}
		if deps["error-chain"] != "0.10.0" {
			t.Errorf("dependencies.error-chain = %v, want fallback", deps["error-chain"])
		}
	})

	t.Run("offline run never consults the resolver", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "demo")
		resolver := &stubResolver{versions: map[string]string{"clap": "9.9.9"}}
		o := NewOrchestrator(&stubRunner{path: dir}, resolver, &recordingReporter{}, nil)

		if _, err := o.Run(context.Background(), baseConfig(dir)); err != nil {
			t.Fatalf("Run error: %v", err)
		}
		if resolver.called {
			t.Error("resolver was consulted although query_latest is off")
		}
	})

	t.Run("rerun into a scaffolded directory fails instead of clobbering", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "demo")
		runner := &stubRunner{path: dir}
		o := NewOrchestrator(runner, &stubResolver{}, nil, nil)

		if _, err := o.Run(context.Background(), baseConfig(dir)); err != nil {
			t.Fatalf("first Run error: %v", err)
		}

		runRS, _ := os.ReadFile(filepath.Join(dir, "src", "run.rs"))

		code, err := o.Run(context.Background(), baseConfig(dir))
		if err == nil {
			t.Fatal("second Run succeeded, want create conflict")
		}
		if code != 1 {
			t.Errorf("code = %d, want 1", code)
		}
		got, _ := os.ReadFile(filepath.Join(dir, "src", "run.rs"))
		if string(got) != string(runRS) {
			t.Error("existing run.rs was modified on the failed rerun")
		}
	})

	t.Run("cargo failure propagates its exit code verbatim", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "demo")
		runner := &stubRunner{path: dir, code: 101}
		reporter := &recordingReporter{}
		o := NewOrchestrator(runner, &stubResolver{}, reporter, nil)

		code, err := o.Run(context.Background(), baseConfig(dir))
		if err != nil {
			t.Fatalf("Run error: %v", err)
		}
		if code != 101 {
			t.Errorf("code = %d, want 101", code)
		}
		if len(reporter.events) != 0 || len(reporter.summaries) != 0 {
			t.Errorf("events emitted after cargo failure: %v %v", reporter.events, reporter.summaries)
		}
		if _, err := os.Stat(dir); !errors.Is(err, os.ErrNotExist) {
			t.Error("files were written after cargo failure")
		}
	})

	t.Run("runner error maps to the exit code error", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "demo")
		runner := &stubRunner{path: dir, err: errors.New("cargo not found")}
		o := NewOrchestrator(runner, &stubResolver{}, nil, nil)

		code, err := o.Run(context.Background(), baseConfig(dir))
		if !errors.Is(err, ErrInvalidExitCode) {
			t.Errorf("err = %v, want ErrInvalidExitCode", err)
		}
		if code != 1 {
			t.Errorf("code = %d, want 1", code)
		}
	})

	t.Run("invalid parser fails before anything runs", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "demo")
		runner := &stubRunner{path: dir}
		o := NewOrchestrator(runner, &stubResolver{}, nil, nil)

		cfg := baseConfig(dir)
		cfg.ArgParser = "structopt"

		_, err := o.Run(context.Background(), cfg)
		if !errors.Is(err, ErrInvalidArgParser) {
			t.Errorf("err = %v, want ErrInvalidArgParser", err)
		}
		if len(runner.calls) != 0 {
			t.Error("cargo ran despite invalid configuration")
		}
	})

	t.Run("invalid license fails before anything runs", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "demo")
		runner := &stubRunner{path: dir}
		o := NewOrchestrator(runner, &stubResolver{}, nil, nil)

		cfg := baseConfig(dir)
		cfg.License = "gpl"

		_, err := o.Run(context.Background(), cfg)
		if !errors.Is(err, ErrInvalidLicense) {
			t.Errorf("err = %v, want ErrInvalidLicense", err)
		}
		if len(runner.calls) != 0 {
			t.Error("cargo ran despite invalid configuration")
		}
	})

	t.Run("empty path is rejected", func(t *testing.T) {
		o := NewOrchestrator(&stubRunner{}, &stubResolver{}, nil, nil)
		cfg := baseConfig("")
		_, err := o.Run(context.Background(), cfg)
		if !errors.Is(err, ErrInvalidPath) {
			t.Errorf("err = %v, want ErrInvalidPath", err)
		}
	})

	t.Run("cancelled context aborts", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "demo")
		o := NewOrchestrator(&stubRunner{path: dir}, &stubResolver{}, nil, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		code, err := o.Run(ctx, baseConfig(dir))
		if !errors.Is(err, context.Canceled) {
			t.Errorf("err = %v, want context.Canceled", err)
		}
		if code != 1 {
			t.Errorf("code = %d, want 1", code)
		}
	})
}
