package similarity

import "fmt"

// Metric identifies one of the similarity scoring functions.
type Metric int

const (
	// MetricEdit is Levenshtein-based similarity on [0,100].
	MetricEdit Metric = iota
	// MetricCosine is word-frequency cosine similarity on [0,100].
	MetricCosine
	// MetricJaccard is word-set Jaccard similarity on [0,1].
	MetricJaccard
	// MetricJaroWinkler is prefix-weighted character similarity on [0,1].
	MetricJaroWinkler
)

// AllMetrics lists every metric in display order.
var AllMetrics = []Metric{MetricEdit, MetricCosine, MetricJaccard, MetricJaroWinkler}

// String returns the canonical metric name used in flags, logs, and storage.
func (m Metric) String() string {
	switch m {
	case MetricEdit:
		return "edit"
	case MetricCosine:
		return "cosine"
	case MetricJaccard:
		return "jaccard"
	case MetricJaroWinkler:
		return "jarowinkler"
	default:
		return fmt.Sprintf("metric(%d)", int(m))
	}
}

// ParseMetric resolves a metric name as accepted on the command line.
func ParseMetric(name string) (Metric, error) {
	switch name {
	case "edit", "levenshtein":
		return MetricEdit, nil
	case "cosine":
		return MetricCosine, nil
	case "jaccard":
		return MetricJaccard, nil
	case "jarowinkler", "jaro-winkler", "jw":
		return MetricJaroWinkler, nil
	default:
		return 0, fmt.Errorf("unknown metric %q (expected edit, cosine, jaccard, or jarowinkler)", name)
	}
}

// Score applies the metric to a pair of texts. Every metric is total and
// symmetric; see the individual functions for their conventions on empty
// input.
func (m Metric) Score(a, b string) float64 {
	switch m {
	case MetricCosine:
		return CosineSimilarity(a, b)
	case MetricJaccard:
		return JaccardSimilarity(a, b)
	case MetricJaroWinkler:
		return JaroWinkler(a, b)
	default:
		return EditSimilarity(a, b)
	}
}

// Fractional reports whether the metric's scores live on [0,1] rather than
// the percentage scale.
func (m Metric) Fractional() bool {
	return m == MetricJaccard || m == MetricJaroWinkler
}
