package scoring

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"quorum/internal/logging"
	"quorum/internal/similarity"
)

// Matrix holds pairwise scores for one metric. Scores is square with the
// reference at index 0 and candidates at indexes 1..n. BestIndex is the
// index into the candidate list of the candidate scoring highest against the
// reference, ties broken by first occurrence, or -1 when there are no
// candidates.
type Matrix struct {
	Metric    similarity.Metric
	Labels    []string
	Scores    [][]float64
	BestIndex int
}

// Best returns the label and reference score of the best candidate. With no
// candidates it returns an empty label and zero.
func (m Matrix) Best() (string, float64) {
	if m.BestIndex < 0 {
		return "", 0
	}
	return m.Labels[m.BestIndex+1], m.Scores[0][m.BestIndex+1]
}

// Text pairs a source label with its content for scoring.
type Text struct {
	Label   string
	Content string
}

// Builder fills similarity matrices using a bounded worker pool.
type Builder struct {
	workers int
	logger  *slog.Logger
}

// NewBuilder returns a Builder running up to workers concurrent scorers. A
// workers value below 1 defaults to the CPU count. A nil logger disables
// logging.
func NewBuilder(workers int, logger *slog.Logger) *Builder {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Builder{
		workers: workers,
		logger:  logging.NewComponentLogger(logger, "scoring"),
	}
}

type cell struct {
	row int
	col int
}

// BuildMatrix scores every ordered pair among the reference and candidates
// under one metric. Workers write to distinct cells, so the matrix needs no
// locking. Returns the context error if the context is canceled before all
// cells are scored.
func (b *Builder) BuildMatrix(ctx context.Context, reference Text, candidates []Text, metric similarity.Metric) (Matrix, error) {
	texts := append([]Text{reference}, candidates...)
	n := len(texts)

	matrix := Matrix{
		Metric:    metric,
		Labels:    make([]string, n),
		Scores:    make([][]float64, n),
		BestIndex: -1,
	}
	for i, text := range texts {
		matrix.Labels[i] = text.Label
		matrix.Scores[i] = make([]float64, n)
	}

	jobs := make(chan cell)
	var wg sync.WaitGroup
	for w := 0; w < b.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range jobs {
				matrix.Scores[c.row][c.col] = metric.Score(texts[c.row].Content, texts[c.col].Content)
			}
		}()
	}

	var err error
fill:
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err = ctx.Err(); err != nil {
				break fill
			}
			jobs <- cell{row: i, col: j}
		}
	}
	close(jobs)
	wg.Wait()
	if err != nil {
		return Matrix{}, err
	}

	for k := range candidates {
		if matrix.BestIndex < 0 || matrix.Scores[0][k+1] > matrix.Scores[0][matrix.BestIndex+1] {
			matrix.BestIndex = k
		}
	}

	b.logger.Debug("built similarity matrix",
		logging.String("metric", metric.String()),
		logging.Int("candidate_count", len(candidates)),
		logging.Int("best_index", matrix.BestIndex))
	return matrix, nil
}

// BuildAll builds one matrix per metric, metrics in parallel.
func (b *Builder) BuildAll(ctx context.Context, reference Text, candidates []Text) ([]Matrix, error) {
	matrices := make([]Matrix, len(similarity.AllMetrics))
	errs := make([]error, len(similarity.AllMetrics))

	var wg sync.WaitGroup
	for i, metric := range similarity.AllMetrics {
		wg.Add(1)
		go func(i int, metric similarity.Metric) {
			defer wg.Done()
			matrices[i], errs[i] = b.BuildMatrix(ctx, reference, candidates, metric)
		}(i, metric)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return matrices, nil
}
