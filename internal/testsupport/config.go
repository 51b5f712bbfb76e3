package testsupport

import (
	"path/filepath"
	"testing"

	"podium/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Watch.Dir = filepath.Join(base, "drop")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithWatchDebounce overrides the watch debounce interval on the test config.
func WithWatchDebounce(ms int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Watch.DebounceMS = ms
	}
}

// WithFillerWords overrides the filler word list on the test config.
func WithFillerWords(words ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Analysis.FillerWords = words
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
