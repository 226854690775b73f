package pipeline

import "ladderview/internal/record"

// Funnel bundles the stages of one record with what each stage removed and
// the derived metrics.
type Funnel struct {
	Stages  []Stage    `json:"stages"`
	Removed [][]string `json:"removed"`
	Metrics Metrics    `json:"metrics"`
}

// Analyze builds the full funnel for rec.
func Analyze(rec record.Record) Funnel {
	stages := Build(rec)
	return Funnel{
		Stages:  stages,
		Removed: Removed(stages),
		Metrics: ComputeMetrics(stages),
	}
}
