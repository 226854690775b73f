package pipeline

// Metrics summarizes a funnel.
type Metrics struct {
	Percentages      []float64 `json:"percentages"`
	TotalInitial     int       `json:"total_initial"`
	TotalFinal       int       `json:"total_final"`
	StageCount       int       `json:"stage_count"`
	RetentionPercent float64   `json:"retention_percent"`
	TotalRemoved     int       `json:"total_removed"`
}

// Percentages returns each stage's count relative to the first stage.
// The first stage is always 100; when the first stage is empty every later
// stage is 0.
func Percentages(stages []Stage) []float64 {
	out := make([]float64, len(stages))
	if len(stages) == 0 {
		return out
	}
	out[0] = 100
	for i := 1; i < len(stages); i++ {
		out[i] = ratio(stages[i].Count, stages[0].Count)
	}
	return out
}

// ComputeMetrics derives the funnel summary for stages.
func ComputeMetrics(stages []Stage) Metrics {
	m := Metrics{
		Percentages: Percentages(stages),
		StageCount:  len(stages),
	}
	if len(stages) == 0 {
		return m
	}
	first, last := stages[0], stages[len(stages)-1]
	m.TotalInitial = first.Count
	m.TotalFinal = last.Count
	m.RetentionPercent = ratio(last.Count, first.Count)
	for _, removed := range Removed(stages) {
		m.TotalRemoved += len(removed)
	}
	return m
}

func ratio(count, base int) float64 {
	if base == 0 {
		return 0
	}
	return float64(count) / float64(base) * 100
}
