// Package registry resolves latest published crate versions from the
// crates.io API with a deliberately fail-soft policy: scaffolding must
// succeed even when offline, so every failure degrades to the dependency's
// fallback version and no error reaches the caller.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/crateforge/crateforge/pkg/models"
	"github.com/crateforge/crateforge/pkg/version"
)

// DefaultBaseURL is the crates.io endpoint for per-crate metadata.
const DefaultBaseURL = "https://crates.io/api/v1/crates"

// DefaultTimeout bounds each registry lookup.
const DefaultTimeout = 5 * time.Second

// crateResponse is the subset of the crates.io response the resolver reads.
type crateResponse struct {
	Crate struct {
		MaxVersion string `json:"max_version"`
	} `json:"crate"`
}

// Resolver resolves the latest version for named dependencies.
type Resolver interface {
	// ResolveLatest returns the latest published version of the dependency,
	// or its fallback version on any lookup failure. It never returns an
	// error.
	ResolveLatest(ctx context.Context, dep models.Dependency) string

	// ResolveAll resolves every dependency concurrently and returns the
	// name-to-version mapping. Resolutions are independent; ordering of the
	// lookups is unspecified.
	ResolveAll(ctx context.Context, deps []models.Dependency) map[string]string
}

// resolver is the concrete implementation of Resolver.
type resolver struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewResolver creates a Resolver querying the given base URL. A nil client
// gets the default 5-second timeout; for testing, pass the httptest.Server
// URL directly.
func NewResolver(baseURL string, client *http.Client, logger *slog.Logger) Resolver {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &resolver{
		baseURL: baseURL,
		client:  client,
		logger:  logger,
	}
}

// ResolveLatest fetches crate metadata and returns max_version when it is a
// well-formed semver string, the fallback otherwise.
func (r *resolver) ResolveLatest(ctx context.Context, dep models.Dependency) string {
	latest, err := r.fetchMaxVersion(ctx, dep.Name)
	if err != nil {
		r.logger.Debug("registry lookup failed, using fallback",
			"crate", dep.Name,
			"fallback", dep.Fallback,
			"error", err,
		)
		return dep.Fallback
	}

	if _, err := semver.NewVersion(latest); err != nil {
		r.logger.Debug("registry returned non-semver version, using fallback",
			"crate", dep.Name,
			"value", latest,
			"fallback", dep.Fallback,
		)
		return dep.Fallback
	}

	return latest
}

// fetchMaxVersion performs the single outbound GET for one crate.
func (r *resolver) fetchMaxVersion(ctx context.Context, name string) (string, error) {
	url := fmt.Sprintf("%s/%s", r.baseURL, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "crateforge/"+version.GetVersion())

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var payload crateResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if payload.Crate.MaxVersion == "" {
		return "", fmt.Errorf("response missing max_version")
	}

	return payload.Crate.MaxVersion, nil
}

// ResolveAll fans out one lookup per dependency. Each resolution is
// self-contained, so failures never affect the others.
func (r *resolver) ResolveAll(ctx context.Context, deps []models.Dependency) map[string]string {
	versions := make(map[string]string, len(deps))

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, dep := range deps {
		wg.Add(1)
		go func(dep models.Dependency) {
			defer wg.Done()
			v := r.ResolveLatest(ctx, dep)
			mu.Lock()
			versions[dep.Name] = v
			mu.Unlock()
		}(dep)
	}
	wg.Wait()

	return versions
}

// FallbackVersions returns the documented fallback version for every
// dependency without touching the network. Used when the latest-version
// query is disabled, which also makes output deterministic for testing.
func FallbackVersions(deps []models.Dependency) map[string]string {
	versions := make(map[string]string, len(deps))
	for _, dep := range deps {
		versions[dep.Name] = dep.Fallback
	}
	return versions
}
