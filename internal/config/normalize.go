package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeReconcile()
	c.normalizeScoring()
	c.normalizeHistory()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeReconcile() {
	if c.Reconcile.SimilarityThreshold == 0 {
		c.Reconcile.SimilarityThreshold = defaultSimilarityThreshold
	}
	if c.Reconcile.WordDistanceMax <= 0 {
		c.Reconcile.WordDistanceMax = defaultWordDistanceMax
	}
	if c.Reconcile.WordLengthGapMax <= 0 {
		c.Reconcile.WordLengthGapMax = defaultWordLengthGapMax
	}
	if c.Reconcile.MinLengthRatio == 0 {
		c.Reconcile.MinLengthRatio = defaultMinLengthRatio
	}
}

func (c *Config) normalizeScoring() {
	if c.Scoring.Workers < 0 {
		c.Scoring.Workers = 0
	}
}

func (c *Config) normalizeHistory() {
	if c.History.KeepRuns <= 0 {
		c.History.KeepRuns = defaultHistoryKeepRuns
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
