package reconcile

import (
	"context"
	"log/slog"
	"strings"

	"quorum/internal/logging"
	"quorum/internal/textnorm"
)

// Transcript is one transcription of the source document.
type Transcript struct {
	Label string
	Text  string
}

// Options bound the fuzzy matching used during clustering and voting.
type Options struct {
	// SimilarityThreshold is the minimum edit similarity fraction, in
	// [0, 1], for two sentences to share a cluster.
	SimilarityThreshold float64
	// WordDistanceMax is the maximum edit distance for two spellings to
	// count as the same word.
	WordDistanceMax int
	// WordLengthGapMax is the maximum length difference for two spellings
	// to count as the same word.
	WordLengthGapMax int
	// MinLengthRatio drops transcripts shorter than this fraction of the
	// mean input length before reconciliation.
	MinLengthRatio float64
}

// DefaultOptions returns the tuning used when no configuration overrides it.
func DefaultOptions() Options {
	return Options{
		SimilarityThreshold: 0.80,
		WordDistanceMax:     3,
		WordLengthGapMax:    3,
		MinLengthRatio:      0.5,
	}
}

// Result carries the reconciled transcript along with which inputs survived
// the length filter.
type Result struct {
	Text         string
	Kept         []string
	Dropped      []string
	ClusterCount int
}

// Engine reconciles transcript sets. One Engine handles any number of runs;
// each run is independent.
type Engine struct {
	opts   Options
	logger *slog.Logger
}

// NewEngine returns an Engine with the given options. A nil logger disables
// logging.
func NewEngine(opts Options, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Engine{
		opts:   opts,
		logger: logging.NewComponentLogger(logger, "reconcile"),
	}
}

// Reconcile merges transcripts into a single transcript. Inputs that are
// empty after normalization, or shorter than the configured fraction of the
// mean raw length, are dropped first. With no surviving inputs the result
// text is empty.
func (e *Engine) Reconcile(ctx context.Context, transcripts []Transcript) (Result, error) {
	kept, result := e.filter(transcripts)
	if len(kept) == 0 {
		e.logger.WarnContext(ctx, "no usable transcripts",
			logging.Int("input_count", len(transcripts)))
		return result, nil
	}

	var sentences []Sentence
	for source, transcript := range kept {
		normalized := textnorm.Normalize(transcript.Text)
		for ordinal, text := range SplitSentences(normalized) {
			sentences = append(sentences, Sentence{Text: text, Source: source, Ordinal: ordinal})
		}
	}

	clusters := NewClusterer(e.opts.SimilarityThreshold).Cluster(sentences)
	result.ClusterCount = len(clusters)

	merged := make([]string, 0, len(clusters))
	for _, cluster := range clusters {
		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		sentence := reconcileCluster(cluster, e.opts.WordDistanceMax, e.opts.WordLengthGapMax)
		if sentence != "" {
			merged = append(merged, sentence)
		}
	}
	result.Text = strings.Join(merged, " ")

	e.logger.InfoContext(ctx, "reconciled transcripts",
		logging.Int("input_count", len(transcripts)),
		logging.Int("kept_count", len(kept)),
		logging.Int("cluster_count", result.ClusterCount),
		logging.Int("output_length", len(result.Text)))
	return result, nil
}

// filter drops transcripts that are empty after normalization or whose raw
// length falls below MinLengthRatio of the mean raw length of all inputs.
func (e *Engine) filter(transcripts []Transcript) ([]Transcript, Result) {
	var result Result
	if len(transcripts) == 0 {
		return nil, result
	}

	total := 0
	for _, transcript := range transcripts {
		total += len(transcript.Text)
	}
	mean := float64(total) / float64(len(transcripts))
	cutoff := mean * e.opts.MinLengthRatio

	kept := make([]Transcript, 0, len(transcripts))
	for _, transcript := range transcripts {
		label := transcript.Label
		if textnorm.Normalize(transcript.Text) == "" {
			e.logger.Debug("dropping empty transcript", logging.String("source", label))
			result.Dropped = append(result.Dropped, label)
			continue
		}
		if float64(len(transcript.Text)) < cutoff {
			e.logger.Debug("dropping short transcript",
				logging.String("source", label),
				logging.Int("length", len(transcript.Text)),
				logging.Float64("cutoff", cutoff))
			result.Dropped = append(result.Dropped, label)
			continue
		}
		kept = append(kept, transcript)
		result.Kept = append(result.Kept, label)
	}
	return kept, result
}
