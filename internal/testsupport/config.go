// Package testsupport provides shared fixtures for package tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"watchlog/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Catalog.APIKey = "test"
	cfg.Paths.InputsDir = filepath.Join(base, "inputs")
	cfg.Paths.OutputsDir = filepath.Join(base, "outputs")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Cache.Enabled = false

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithAPIKey sets the catalog API key on the test config.
func WithAPIKey(key string) ConfigOption {
	return func(c *config.Config) {
		c.Catalog.APIKey = key
	}
}

// WithCache enables the catalog cache backed by a file under dir.
func WithCache(dir string) ConfigOption {
	return func(c *config.Config) {
		c.Cache.Enabled = true
		c.Cache.Path = filepath.Join(dir, "catalog.db")
	}
}

// WriteConfig marshals cfg to a TOML file under a temp directory and returns
// its path, for tests that drive the CLI through --config.
func WriteConfig(t testing.TB, cfg *config.Config) string {
	t.Helper()

	payload, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal test config: %v", err)
	}
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write test config: %v", err)
	}
	return path
}
