package ladder

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"ladderview/internal/record"
)

// Result holds the classified candidates of one ladder info value.
type Result struct {
	Selected []Candidate `json:"selected"`
	Rejected []Candidate `json:"rejected"`
	// Total counts every parsed candidate.
	Total int `json:"total"`
	// Unclassified counts candidates whose status is neither selected nor
	// rejected. They appear in no group.
	Unclassified int `json:"unclassified"`
}

// Classify parses v and splits the candidates by status, ordering each group.
func Classify(v record.Value, opts ...Option) Result {
	return Split(Parse(v, opts...))
}

// Split partitions candidates by status and sorts both groups. The input
// slice is not reordered.
func Split(candidates []Candidate) Result {
	res := Result{
		Selected: []Candidate{},
		Rejected: []Candidate{},
		Total:    len(candidates),
	}
	for _, c := range candidates {
		switch {
		case c.IsSelected():
			res.Selected = append(res.Selected, c)
		case c.IsRejected():
			res.Rejected = append(res.Rejected, c)
		default:
			res.Unclassified++
		}
	}
	slices.SortStableFunc(res.Selected, CompareBitrateDesc)
	slices.SortStableFunc(res.Rejected, NewRejectedOrder().Compare)
	return res
}

// CompareBitrateDesc orders higher bitrates first.
func CompareBitrateDesc(a, b Candidate) int {
	return cmp.Compare(b.Bitrate, a.Bitrate)
}

// RejectedOrder sorts rejected candidates by case-insensitive reason and then
// by bitrate descending. A RejectedOrder must not be shared across goroutines.
type RejectedOrder struct {
	collator *collate.Collator
}

// NewRejectedOrder returns an ordering using root-locale collation.
func NewRejectedOrder() *RejectedOrder {
	return &RejectedOrder{collator: collate.New(language.Und)}
}

// Compare implements the rejected-candidate ordering.
func (o *RejectedOrder) Compare(a, b Candidate) int {
	if c := o.collator.CompareString(reasonKey(a), reasonKey(b)); c != 0 {
		return c
	}
	return CompareBitrateDesc(a, b)
}
