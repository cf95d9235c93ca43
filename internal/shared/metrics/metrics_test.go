package metrics

import (
	"strings"
	"testing"
)

func TestRenderIncludesScoreMetrics(t *testing.T) {
	IncScoreComputed()
	IncScoreAIAssisted()
	ObserveScoreDurationMs(42)

	out := Render()
	for _, name := range []string{
		"ats_scores_computed_total",
		"ats_scores_failed_total",
		"ats_scores_ai_assisted_total",
		"ats_scores_fallback_total",
		"ats_score_duration_ms_bucket",
		"ats_score_duration_ms_sum",
		"ats_score_duration_ms_count",
	} {
		if !strings.Contains(out, name) {
			t.Fatalf("expected metric %s in output", name)
		}
	}
}

func TestHistogramCumulativeBuckets(t *testing.T) {
	h := newHistogram([]float64{10, 100, 1000})
	h.Observe(5)
	h.Observe(50)
	h.Observe(5000)

	snap := h.Snapshot()
	if snap.count != 3 {
		t.Fatalf("expected count 3, got %d", snap.count)
	}
	// Per-bucket counts; render accumulates them.
	if snap.counts[0] != 1 || snap.counts[1] != 1 || snap.counts[2] != 0 {
		t.Fatalf("unexpected bucket counts: %v", snap.counts)
	}
}
