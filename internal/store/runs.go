package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewRun returns a Run with a fresh identifier and creation timestamp, ready
// to be filled in and saved.
func NewRun() *Run {
	return &Run{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
}

// SaveRun persists a run along with its sources and scores in one
// transaction.
func (s *Store) SaveRun(ctx context.Context, run *Run) error {
	if run == nil {
		return errors.New("run is nil")
	}
	ctx = ensureContext(ctx)

	return retryOnBusy(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin run tx: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		_, err = tx.ExecContext(ctx,
			`INSERT INTO runs (id, created_at, source_count, kept_count, cluster_count, output)
             VALUES (?, ?, ?, ?, ?, ?)`,
			run.ID,
			run.CreatedAt.UTC().Format(time.RFC3339Nano),
			run.SourceCount,
			run.KeptCount,
			run.ClusterCount,
			run.Output,
		)
		if err != nil {
			return fmt.Errorf("insert run: %w", err)
		}

		for _, source := range run.Sources {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO run_sources (run_id, position, label, kept) VALUES (?, ?, ?, ?)`,
				run.ID, source.Position, source.Label, boolToInt(source.Kept),
			)
			if err != nil {
				return fmt.Errorf("insert run source: %w", err)
			}
		}

		for _, score := range run.Scores {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO run_scores (run_id, metric, label, score) VALUES (?, ?, ?, ?)`,
				run.ID, score.Metric, score.Label, score.Score,
			)
			if err != nil {
				return fmt.Errorf("insert run score: %w", err)
			}
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit run: %w", err)
		}
		return nil
	})
}

// GetRun fetches a run with its sources and scores. Returns nil when the run
// does not exist.
func (s *Store) GetRun(ctx context.Context, id string) (*Run, error) {
	ctx = ensureContext(ctx)

	row := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, source_count, kept_count, cluster_count, output FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT position, label, kept FROM run_sources WHERE run_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("query run sources: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var source RunSource
		var kept int
		if err := rows.Scan(&source.Position, &source.Label, &kept); err != nil {
			return nil, err
		}
		source.Kept = kept != 0
		run.Sources = append(run.Sources, source)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	scoreRows, err := s.db.QueryContext(ctx,
		`SELECT metric, label, score FROM run_scores WHERE run_id = ? ORDER BY metric, label`, id)
	if err != nil {
		return nil, fmt.Errorf("query run scores: %w", err)
	}
	defer scoreRows.Close()
	for scoreRows.Next() {
		var score RunScore
		if err := scoreRows.Scan(&score.Metric, &score.Label, &score.Score); err != nil {
			return nil, err
		}
		run.Scores = append(run.Scores, score)
	}
	return run, scoreRows.Err()
}

// ListRuns returns runs newest first, up to limit. A limit below 1 returns
// all runs.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]*Run, error) {
	ctx = ensureContext(ctx)

	query := `SELECT id, created_at, source_count, kept_count, cluster_count, output
              FROM runs ORDER BY created_at DESC, id DESC`
	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = s.db.QueryContext(ctx, query+` LIMIT ?`, limit)
	} else {
		rows, err = s.db.QueryContext(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Prune deletes the oldest runs beyond keep. A keep below 1 deletes
// everything. Returns the number of runs removed.
func (s *Store) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 1 {
		res, err := s.execWithRetry(ctx, `DELETE FROM runs`)
		if err != nil {
			return 0, fmt.Errorf("prune runs: %w", err)
		}
		return res.RowsAffected()
	}

	res, err := s.execWithRetry(ctx,
		`DELETE FROM runs WHERE id NOT IN (
            SELECT id FROM runs ORDER BY created_at DESC, id DESC LIMIT ?
        )`, keep)
	if err != nil {
		return 0, fmt.Errorf("prune runs: %w", err)
	}
	return res.RowsAffected()
}

func scanRun(scanner interface{ Scan(dest ...any) error }) (*Run, error) {
	var (
		run        Run
		createdRaw string
	)
	if err := scanner.Scan(&run.ID, &createdRaw, &run.SourceCount, &run.KeptCount, &run.ClusterCount, &run.Output); err != nil {
		return nil, err
	}
	if created, err := time.Parse(time.RFC3339Nano, createdRaw); err == nil {
		run.CreatedAt = created
	}
	return &run, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
