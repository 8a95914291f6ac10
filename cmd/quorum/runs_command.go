package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"quorum/internal/store"
)

func newRunsCommand(cmdCtx *commandContext) *cobra.Command {
	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect reconciliation run history",
	}

	runsCmd.AddCommand(newRunsListCommand(cmdCtx))
	runsCmd.AddCommand(newRunsShowCommand(cmdCtx))
	runsCmd.AddCommand(newRunsPruneCommand(cmdCtx))

	return runsCmd
}

func newRunsListCommand(cmdCtx *commandContext) *cobra.Command {
	var limit int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			st, err := store.Open(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			runs, err := st.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, runs)
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.ID,
					run.CreatedAt.Local().Format(time.DateTime),
					strconv.Itoa(run.SourceCount),
					strconv.Itoa(run.KeptCount),
					strconv.Itoa(run.ClusterCount),
					previewText(run.Output, 48),
				})
			}
			printf(cmd, "%s\n", renderTable(
				[]string{"id", "created", "sources", "kept", "clusters", "output"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum runs to list (0 for all)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit runs as JSON")
	return cmd
}

func newRunsShowCommand(cmdCtx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show run_id",
		Short: "Show one run with its sources and scores",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			st, err := store.Open(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			run, err := st.GetRun(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if run == nil {
				return fmt.Errorf("run %s not found", args[0])
			}

			if jsonOut {
				return writeJSON(cmd, run)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run:      %s\n", run.ID)
			fmt.Fprintf(out, "Created:  %s\n", run.CreatedAt.Local().Format(time.DateTime))
			fmt.Fprintf(out, "Sources:  %d (%d kept)\n", run.SourceCount, run.KeptCount)
			fmt.Fprintf(out, "Clusters: %d\n", run.ClusterCount)

			if len(run.Sources) > 0 {
				rows := make([][]string, 0, len(run.Sources))
				for _, source := range run.Sources {
					rows = append(rows, []string{strconv.Itoa(source.Position), source.Label, yesNo(source.Kept)})
				}
				fmt.Fprintf(out, "%s\n", renderTable(
					[]string{"#", "source", "kept"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft},
				))
			}

			if len(run.Scores) > 0 {
				rows := make([][]string, 0, len(run.Scores))
				for _, score := range run.Scores {
					rows = append(rows, []string{score.Metric, score.Label, strconv.FormatFloat(score.Score, 'f', -1, 64)})
				}
				fmt.Fprintf(out, "%s\n", renderTable(
					[]string{"metric", "source", "score vs output"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight},
				))
			}

			fmt.Fprintln(out, "Output:")
			fmt.Fprintln(out, run.Output)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the run as JSON")
	return cmd
}

func newRunsPruneCommand(cmdCtx *commandContext) *cobra.Command {
	var keep int
	var all bool

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete old runs beyond the retention count",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			if keep < 0 {
				return errors.New("--keep must not be negative")
			}
			target := keep
			if all {
				target = 0
			} else if target == 0 {
				target = cfg.History.KeepRuns
			}

			st, err := store.Open(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			removed, err := st.Prune(cmd.Context(), target)
			if err != nil {
				return err
			}
			printf(cmd, "Removed %d run(s)\n", removed)
			return nil
		},
	}

	cmd.Flags().IntVar(&keep, "keep", 0, "Runs to keep (default: history.keep_runs from config)")
	cmd.Flags().BoolVar(&all, "all", false, "Delete all recorded runs")
	return cmd
}

func previewText(text string, max int) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max-1]) + "…"
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
