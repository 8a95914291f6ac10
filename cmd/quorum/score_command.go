package main

import (
	"github.com/spf13/cobra"

	"quorum/internal/transcripts"
)

type scoreReport struct {
	Metric string  `json:"metric"`
	Score  float64 `json:"score"`
}

func newScoreCommand(cmdCtx *commandContext) *cobra.Command {
	var metricFlag string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "score file_a file_b",
		Short: "Score the similarity of two transcript files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			metrics, err := parseMetricFlag(metricFlag)
			if err != nil {
				return err
			}

			pair, err := transcripts.Load(args)
			if err != nil {
				return err
			}

			var reports []scoreReport
			rows := make([][]string, 0, len(metrics))
			for _, metric := range metrics {
				score := metric.Score(pair[0].Text, pair[1].Text)
				reports = append(reports, scoreReport{Metric: metric.String(), Score: score})
				rows = append(rows, []string{metric.String(), formatScore(metric, score)})
			}

			if jsonOut {
				return writeJSON(cmd, reports)
			}
			printf(cmd, "%s vs %s\n", pair[0].Label, pair[1].Label)
			printf(cmd, "%s\n", renderTable([]string{"metric", "score"}, rows, []columnAlignment{alignLeft, alignRight}))
			return nil
		},
	}

	cmd.Flags().StringVarP(&metricFlag, "metric", "m", "", "Single metric to compute (default: all)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit scores as JSON")
	return cmd
}
