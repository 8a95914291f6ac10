package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateReconcile(); err != nil {
		return err
	}
	if err := c.validateHistory(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateReconcile() error {
	if c.Reconcile.SimilarityThreshold < 0 || c.Reconcile.SimilarityThreshold > 1 {
		return errors.New("reconcile.similarity_threshold must be between 0 and 1")
	}
	if c.Reconcile.MinLengthRatio < 0 || c.Reconcile.MinLengthRatio > 1 {
		return errors.New("reconcile.min_length_ratio must be between 0 and 1")
	}
	return nil
}

func (c *Config) validateHistory() error {
	if c.History.Enabled && c.History.KeepRuns < 1 {
		return errors.New("history.keep_runs must be at least 1 when history is enabled")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
}
