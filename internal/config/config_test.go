package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"quorum/internal/config"
)

func TestLoadDefaultsAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantData := filepath.Join(tempHome, ".local", "share", "quorum")
	if cfg.Paths.DataDir != wantData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, wantData)
	}
	if cfg.Paths.LogDir != filepath.Join(wantData, "logs") {
		t.Fatalf("unexpected log dir: %q", cfg.Paths.LogDir)
	}
	if cfg.Reconcile.SimilarityThreshold != 0.80 {
		t.Fatalf("unexpected similarity threshold: %v", cfg.Reconcile.SimilarityThreshold)
	}
	if cfg.Reconcile.WordDistanceMax != 3 || cfg.Reconcile.WordLengthGapMax != 3 {
		t.Fatalf("unexpected word caps: %d, %d", cfg.Reconcile.WordDistanceMax, cfg.Reconcile.WordLengthGapMax)
	}
	if !cfg.History.Enabled || cfg.History.KeepRuns != 200 {
		t.Fatalf("unexpected history defaults: %+v", cfg.History)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}

	for _, dir := range []string{cfg.Paths.DataDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
	if cfg.DatabasePath() != filepath.Join(wantData, "quorum.db") {
		t.Fatalf("unexpected database path: %q", cfg.DatabasePath())
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "quorum.toml")

	type payload struct {
		Reconcile struct {
			SimilarityThreshold float64 `toml:"similarity_threshold"`
			WordDistanceMax     int     `toml:"word_distance_max"`
		} `toml:"reconcile"`
		Scoring struct {
			Workers int `toml:"workers"`
		} `toml:"scoring"`
		History struct {
			Enabled  bool `toml:"enabled"`
			KeepRuns int  `toml:"keep_runs"`
		} `toml:"history"`
	}
	custom := payload{}
	custom.Reconcile.SimilarityThreshold = 0.9
	custom.Reconcile.WordDistanceMax = 2
	custom.Scoring.Workers = 4
	custom.History.Enabled = false
	custom.History.KeepRuns = 50
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Reconcile.SimilarityThreshold != 0.9 {
		t.Fatalf("expected threshold override, got %v", cfg.Reconcile.SimilarityThreshold)
	}
	if cfg.Reconcile.WordDistanceMax != 2 {
		t.Fatalf("expected word distance override, got %d", cfg.Reconcile.WordDistanceMax)
	}
	if cfg.Reconcile.WordLengthGapMax != 3 {
		t.Fatalf("expected default length gap, got %d", cfg.Reconcile.WordLengthGapMax)
	}
	if cfg.Scoring.Workers != 4 {
		t.Fatalf("expected 4 workers, got %d", cfg.Scoring.Workers)
	}
	if cfg.History.Enabled {
		t.Fatal("expected history disabled")
	}
	if cfg.History.KeepRuns != 50 {
		t.Fatalf("expected keep_runs 50, got %d", cfg.History.KeepRuns)
	}
}

func TestLoadMissingCustomPathUsesDefaults(t *testing.T) {
	cfg, _, exists, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected exists to be false")
	}
	if cfg.Reconcile.SimilarityThreshold != 0.80 {
		t.Fatalf("expected default threshold, got %v", cfg.Reconcile.SimilarityThreshold)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if cfg.Reconcile.SimilarityThreshold != 0.80 {
		t.Fatalf("sample threshold = %v, want 0.80", cfg.Reconcile.SimilarityThreshold)
	}
	if cfg.History.KeepRuns != 200 {
		t.Fatalf("sample keep_runs = %d, want 200", cfg.History.KeepRuns)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.Reconcile.SimilarityThreshold = 1.5
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for threshold above 1")
	}

	cfg = config.Default()
	cfg.Reconcile.MinLengthRatio = -0.1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative length ratio")
	}

	cfg = config.Default()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}
