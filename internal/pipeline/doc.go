// Package pipeline reconstructs the codec ladder filtering funnel of a record.
//
// The eight reserved stage fields are read in a fixed order and normalized
// into item lists. Removed computes what each filter dropped using per-value
// occurrence counts, and ComputeMetrics derives percentages and retention.
// Everything here is a pure function of its input.
package pipeline
