package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"quorum/internal/config"
	"quorum/internal/reconcile"
	"quorum/internal/similarity"
	"quorum/internal/transcripts"
)

func reconcileOptions(cfg *config.Config) reconcile.Options {
	opts := reconcile.DefaultOptions()
	if cfg == nil {
		return opts
	}
	opts.SimilarityThreshold = cfg.Reconcile.SimilarityThreshold
	opts.WordDistanceMax = cfg.Reconcile.WordDistanceMax
	opts.WordLengthGapMax = cfg.Reconcile.WordLengthGapMax
	opts.MinLengthRatio = cfg.Reconcile.MinLengthRatio
	return opts
}

// formatScore renders a score using the metric's convention: three decimals
// for percentage metrics, four for fractional ones.
func formatScore(metric similarity.Metric, score float64) string {
	if metric.Fractional() {
		return strconv.FormatFloat(score, 'f', 4, 64)
	}
	return strconv.FormatFloat(score, 'f', 3, 64)
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// loadTranscripts resolves the positional file arguments or the --dir flag
// into labeled transcripts.
func loadTranscripts(args []string, dir string) ([]reconcile.Transcript, error) {
	if dir != "" {
		if len(args) > 0 {
			return nil, errors.New("pass transcript files or --dir, not both")
		}
		return transcripts.LoadDir(dir)
	}
	if len(args) == 0 {
		return nil, errors.New("no transcripts given; pass files or --dir")
	}
	return transcripts.Load(args)
}

func parseMetricFlag(value string) ([]similarity.Metric, error) {
	if value == "" {
		return similarity.AllMetrics, nil
	}
	metric, err := similarity.ParseMetric(value)
	if err != nil {
		return nil, fmt.Errorf("--metric: %w", err)
	}
	return []similarity.Metric{metric}, nil
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
