package testsupport

import (
	"path/filepath"
	"testing"

	"quorum/internal/config"
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

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithHistoryDisabled turns off run persistence on the test config.
func WithHistoryDisabled() ConfigOption {
	return func(cfg *config.Config) {
		cfg.History.Enabled = false
	}
}

// WithKeepRuns overrides the run retention count on the test config.
func WithKeepRuns(keep int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.History.KeepRuns = keep
	}
}
