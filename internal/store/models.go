package store

import "time"

// Run is one persisted reconciliation run.
type Run struct {
	ID           string
	CreatedAt    time.Time
	SourceCount  int
	KeptCount    int
	ClusterCount int
	Output       string
	Sources      []RunSource
	Scores       []RunScore
}

// RunSource records one input transcript and whether it survived the length
// filter.
type RunSource struct {
	Position int
	Label    string
	Kept     bool
}

// RunScore records the similarity of one input against the reconciled output
// under one metric.
type RunScore struct {
	Metric string
	Label  string
	Score  float64
}
