package pipeline

import "ladderview/internal/record"

// Definition binds a reserved record field to its stage label.
type Definition struct {
	Field string `json:"field"`
	Label string `json:"label"`
}

// Definitions lists the filtering stages in pipeline order.
var Definitions = []Definition{
	{Field: "ladders_before_filter_adaptive_video", Label: "Before Adaptive Video Filter"},
	{Field: "ladders_after_filter_adaptive_video", Label: "After Adaptive Video Filter"},
	{Field: "ladders_after_filter_ladder_based_on_strategy_info", Label: "After Strategy Based Filter"},
	{Field: "ladders_after_filter_ladder_based_on_create_time", Label: "After Create Time Filter"},
	{Field: "ladders_after_filter_ab_test_encode_user_tag", Label: "After Encode User Tags Filter"},
	{Field: "ladders_after_filter_video_play_qualities", Label: "After Video Play Qualities Filter"},
	{Field: "ladders_after_filter_irregular_bitrate_ladder_group", Label: "After Irregular Bitrate Group Filter"},
	{Field: "ladders_after_filter_irregular_bitrate_ladder", Label: "Final Result"},
}

// IsStageField reports whether name is one of the reserved stage fields.
func IsStageField(name string) bool {
	for _, d := range Definitions {
		if d.Field == name {
			return true
		}
	}
	return false
}

// Stage is one point in the filtering pipeline.
type Stage struct {
	Name        string   `json:"name"`
	SourceField string   `json:"source_field"`
	Items       []string `json:"items"`
	Count       int      `json:"count"`
	Percentage  float64  `json:"percentage"`
}

// NewStage builds a stage from already normalized items.
func NewStage(name, field string, items []string) Stage {
	if items == nil {
		items = []string{}
	}
	return Stage{Name: name, SourceField: field, Items: items, Count: len(items)}
}

// Build reads every reserved stage field of rec in order. Absent fields
// produce empty stages. Percentages are filled in relative to the first
// stage.
func Build(rec record.Record) []Stage {
	stages := make([]Stage, 0, len(Definitions))
	for _, d := range Definitions {
		stages = append(stages, NewStage(d.Label, d.Field, record.Normalize(rec.Value(d.Field))))
	}
	for i, p := range Percentages(stages) {
		stages[i].Percentage = p
	}
	return stages
}
