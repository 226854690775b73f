package pipeline

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"ladderview/internal/record"
)

func itemsN(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "ladder_" + strconv.Itoa(i)
	}
	return out
}

func TestRetention(t *testing.T) {
	m := ComputeMetrics(stagesOf(itemsN(100), itemsN(50), itemsN(25)))
	if m.RetentionPercent != 25 {
		t.Fatalf("retention = %v, want 25", m.RetentionPercent)
	}
	if m.TotalInitial != 100 || m.TotalFinal != 25 {
		t.Fatalf("totals = %d/%d, want 100/25", m.TotalInitial, m.TotalFinal)
	}
	if m.TotalRemoved != 75 {
		t.Fatalf("total removed = %d, want 75", m.TotalRemoved)
	}
	if diff := cmp.Diff([]float64{100, 50, 25}, m.Percentages); diff != "" {
		t.Fatalf("percentages mismatch (-want +got):\n%s", diff)
	}
}

func TestRetentionEmptyFirstStage(t *testing.T) {
	m := ComputeMetrics(stagesOf(nil, []string{"a"}))
	if m.RetentionPercent != 0 {
		t.Fatalf("retention = %v, want 0", m.RetentionPercent)
	}
	if diff := cmp.Diff([]float64{100, 0}, m.Percentages); diff != "" {
		t.Fatalf("percentages mismatch (-want +got):\n%s", diff)
	}
}

func TestMetricsNoStages(t *testing.T) {
	m := ComputeMetrics(nil)
	if m.StageCount != 0 || m.TotalInitial != 0 || m.RetentionPercent != 0 || len(m.Percentages) != 0 {
		t.Fatalf("unexpected metrics for empty pipeline: %+v", m)
	}
}

func TestAnalyzeRecord(t *testing.T) {
	rec, err := record.Parse([]byte(`{
		"vid": "v1",
		"ladders_before_filter_adaptive_video": ["a", "b", "c", "d"],
		"ladders_after_filter_adaptive_video": "[\"a\",\"b\",\"c\"]",
		"ladders_after_filter_ladder_based_on_strategy_info": "[]",
		"ladders_after_filter_irregular_bitrate_ladder": ["a"]
	}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	f := Analyze(rec)
	if len(f.Stages) != len(Definitions) {
		t.Fatalf("stages = %d, want %d", len(f.Stages), len(Definitions))
	}
	if f.Stages[0].Name != "Before Adaptive Video Filter" || f.Stages[0].Count != 4 {
		t.Fatalf("unexpected first stage: %+v", f.Stages[0])
	}
	if f.Stages[1].Percentage != 75 {
		t.Fatalf("second stage percentage = %v, want 75", f.Stages[1].Percentage)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, f.Removed[2]); diff != "" {
		t.Fatalf("strategy filter removed mismatch (-want +got):\n%s", diff)
	}
	if f.Metrics.TotalFinal != 1 || f.Metrics.RetentionPercent != 25 {
		t.Fatalf("unexpected metrics: %+v", f.Metrics)
	}
	// The final stage re-adds "a" after empty stages; additions are not removals.
	if f.Metrics.TotalRemoved != 4 {
		t.Fatalf("total removed = %d, want 4", f.Metrics.TotalRemoved)
	}
}

func TestIsStageField(t *testing.T) {
	if !IsStageField("ladders_after_filter_video_play_qualities") {
		t.Fatal("expected reserved field to match")
	}
	if IsStageField("ladders_unknown") {
		t.Fatal("unexpected match for unreserved field")
	}
}
