package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"quorum/internal/config"
	"quorum/internal/logging"
	"quorum/internal/reconcile"
	"quorum/internal/scoring"
	"quorum/internal/store"
)

type reconcileReport struct {
	RunID        string           `json:"run_id,omitempty"`
	Text         string           `json:"text"`
	Kept         []string         `json:"kept"`
	Dropped      []string         `json:"dropped,omitempty"`
	ClusterCount int              `json:"cluster_count"`
	Scores       []reconcileScore `json:"scores,omitempty"`
}

type reconcileScore struct {
	Metric string  `json:"metric"`
	Label  string  `json:"label"`
	Score  float64 `json:"score"`
}

func newReconcileCommand(cmdCtx *commandContext) *cobra.Command {
	var dirFlag string
	var jsonOut bool
	var noSave bool

	cmd := &cobra.Command{
		Use:   "reconcile [file...]",
		Short: "Merge transcript files into a single reconciled transcript",
		Long: `Reconcile merges several transcriptions of the same source document into
one best-effort transcript by clustering matching sentences and voting on
each word position. Inputs that look like recognition failures (empty, or
far shorter than the rest) are dropped first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := cmdCtx.ensureLogger()
			if err != nil {
				return err
			}

			inputs, err := loadTranscripts(args, dirFlag)
			if err != nil {
				return err
			}

			run := store.NewRun()
			ctx := logging.WithRunID(cmd.Context(), run.ID)

			engine := reconcile.NewEngine(reconcileOptions(cfg), logger)
			result, err := engine.Reconcile(ctx, inputs)
			if err != nil {
				return err
			}

			scores, err := scoreAgainstOutput(ctx, cfg, logger, inputs, result)
			if err != nil {
				return err
			}

			report := reconcileReport{
				Text:         result.Text,
				Kept:         result.Kept,
				Dropped:      result.Dropped,
				ClusterCount: result.ClusterCount,
				Scores:       scores,
			}

			if !noSave && cfg.History.Enabled {
				if err := persistRun(ctx, cfg, run, inputs, result, scores); err != nil {
					return fmt.Errorf("save run: %w", err)
				}
				report.RunID = run.ID
			}

			if jsonOut {
				return writeJSON(cmd, report)
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dirFlag, "dir", "d", "", "Directory of .txt transcripts to reconcile")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the full result as JSON")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Skip recording this run in history")
	return cmd
}

// scoreAgainstOutput scores every surviving input against the reconciled
// text under all metrics. With no output or no survivors the result is
// empty.
func scoreAgainstOutput(ctx context.Context, cfg *config.Config, logger *slog.Logger, inputs []reconcile.Transcript, result reconcile.Result) ([]reconcileScore, error) {
	if result.Text == "" || len(result.Kept) == 0 {
		return nil, nil
	}

	keptSet := make(map[string]struct{}, len(result.Kept))
	for _, label := range result.Kept {
		keptSet[label] = struct{}{}
	}
	candidates := make([]scoring.Text, 0, len(result.Kept))
	for _, input := range inputs {
		if _, ok := keptSet[input.Label]; ok {
			candidates = append(candidates, scoring.Text{Label: input.Label, Content: input.Text})
		}
	}

	builder := scoring.NewBuilder(cfg.Scoring.Workers, logger)
	matrices, err := builder.BuildAll(ctx, scoring.Text{Label: "reconciled", Content: result.Text}, candidates)
	if err != nil {
		return nil, err
	}

	var scores []reconcileScore
	for _, matrix := range matrices {
		for k := range candidates {
			scores = append(scores, reconcileScore{
				Metric: matrix.Metric.String(),
				Label:  matrix.Labels[k+1],
				Score:  matrix.Scores[0][k+1],
			})
		}
	}
	return scores, nil
}

func persistRun(ctx context.Context, cfg *config.Config, run *store.Run, inputs []reconcile.Transcript, result reconcile.Result, scores []reconcileScore) error {
	st, err := store.Open(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	keptSet := make(map[string]struct{}, len(result.Kept))
	for _, label := range result.Kept {
		keptSet[label] = struct{}{}
	}

	run.SourceCount = len(inputs)
	run.KeptCount = len(result.Kept)
	run.ClusterCount = result.ClusterCount
	run.Output = result.Text
	for i, input := range inputs {
		_, kept := keptSet[input.Label]
		run.Sources = append(run.Sources, store.RunSource{Position: i, Label: input.Label, Kept: kept})
	}
	for _, score := range scores {
		run.Scores = append(run.Scores, store.RunScore{
			Metric: score.Metric,
			Label:  score.Label,
			Score:  score.Score,
		})
	}

	if err := st.SaveRun(ctx, run); err != nil {
		return err
	}
	if _, err := st.Prune(ctx, cfg.History.KeepRuns); err != nil {
		return err
	}
	return nil
}
