package similarity

import "testing"

func TestParseMetricRoundTrip(t *testing.T) {
	for _, metric := range AllMetrics {
		parsed, err := ParseMetric(metric.String())
		if err != nil {
			t.Fatalf("ParseMetric(%q) returned error: %v", metric.String(), err)
		}
		if parsed != metric {
			t.Errorf("ParseMetric(%q) = %v, want %v", metric.String(), parsed, metric)
		}
	}
}

func TestParseMetricAliases(t *testing.T) {
	aliases := map[string]Metric{
		"levenshtein":  MetricEdit,
		"jaro-winkler": MetricJaroWinkler,
		"jw":           MetricJaroWinkler,
	}
	for name, want := range aliases {
		got, err := ParseMetric(name)
		if err != nil {
			t.Fatalf("ParseMetric(%q) returned error: %v", name, err)
		}
		if got != want {
			t.Errorf("ParseMetric(%q) = %v, want %v", name, got, want)
		}
	}
	if _, err := ParseMetric("hamming"); err == nil {
		t.Error("expected error for unknown metric name")
	}
}

func TestMetricScoreIdentity(t *testing.T) {
	text := "the engine reconciles transcripts"
	for _, metric := range AllMetrics {
		got := metric.Score(text, text)
		want := 100.0
		if metric.Fractional() {
			want = 1.0
		}
		if got != want {
			t.Errorf("%s.Score(identical) = %v, want %v", metric, got, want)
		}
	}
}
