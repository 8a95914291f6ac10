package main

import (
	"github.com/spf13/cobra"

	"quorum/internal/scoring"
	"quorum/internal/transcripts"
)

type compareReport struct {
	Metric    string      `json:"metric"`
	Labels    []string    `json:"labels"`
	Scores    [][]float64 `json:"scores"`
	BestLabel string      `json:"best_label,omitempty"`
	BestScore float64     `json:"best_score,omitempty"`
}

func newCompareCommand(cmdCtx *commandContext) *cobra.Command {
	var referencePath string
	var metricFlag string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "compare candidate...",
		Short: "Build similarity matrices between a reference and candidate transcripts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := cmdCtx.ensureLogger()
			if err != nil {
				return err
			}

			metrics, err := parseMetricFlag(metricFlag)
			if err != nil {
				return err
			}

			reference, err := transcripts.Load([]string{referencePath})
			if err != nil {
				return err
			}
			candidateInputs, err := transcripts.Load(args)
			if err != nil {
				return err
			}

			referenceText := scoring.Text{Label: reference[0].Label, Content: reference[0].Text}
			candidates := make([]scoring.Text, len(candidateInputs))
			for i, candidate := range candidateInputs {
				candidates[i] = scoring.Text{Label: candidate.Label, Content: candidate.Text}
			}

			builder := scoring.NewBuilder(cfg.Scoring.Workers, logger)
			var reports []compareReport
			for _, metric := range metrics {
				matrix, err := builder.BuildMatrix(cmd.Context(), referenceText, candidates, metric)
				if err != nil {
					return err
				}
				report := compareReport{
					Metric: matrix.Metric.String(),
					Labels: matrix.Labels,
					Scores: matrix.Scores,
				}
				report.BestLabel, report.BestScore = matrix.Best()
				reports = append(reports, report)

				if !jsonOut {
					printMatrix(cmd, matrix)
				}
			}

			if jsonOut {
				return writeJSON(cmd, reports)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&referencePath, "reference", "r", "", "Reference transcript file")
	cmd.Flags().StringVarP(&metricFlag, "metric", "m", "", "Single metric to compute (default: all)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit matrices as JSON")
	_ = cmd.MarkFlagRequired("reference")
	return cmd
}

func printMatrix(cmd *cobra.Command, matrix scoring.Matrix) {
	headers := append([]string{matrix.Metric.String()}, matrix.Labels...)
	rows := make([][]string, len(matrix.Scores))
	aligns := make([]columnAlignment, len(headers))
	for i := 1; i < len(aligns); i++ {
		aligns[i] = alignRight
	}
	for i, scoreRow := range matrix.Scores {
		row := make([]string, 0, len(headers))
		row = append(row, matrix.Labels[i])
		for _, score := range scoreRow {
			row = append(row, formatScore(matrix.Metric, score))
		}
		rows[i] = row
	}

	printf(cmd, "%s\n", renderTable(headers, rows, aligns))
	if label, score := matrix.Best(); label != "" {
		printf(cmd, "best match (%s): %s (%s)\n", matrix.Metric, label, formatScore(matrix.Metric, score))
	}
}
