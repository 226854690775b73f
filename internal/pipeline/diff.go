package pipeline

// occurrences counts each distinct item and remembers the order in which
// distinct values first appear.
type occurrences struct {
	order  []string
	counts map[string]int
}

func countOccurrences(items []string) occurrences {
	occ := occurrences{counts: make(map[string]int, len(items))}
	for _, item := range items {
		if _, seen := occ.counts[item]; !seen {
			occ.order = append(occ.order, item)
		}
		occ.counts[item]++
	}
	return occ
}

// RemovedBetween returns the items whose occurrence count dropped from prev
// to curr. Each value is repeated once per lost occurrence, grouped in the
// order values first appear in prev. Items present only in curr are ignored.
func RemovedBetween(prev, curr []string) []string {
	before := countOccurrences(prev)
	after := countOccurrences(curr)
	removed := []string{}
	for _, item := range before.order {
		lost := before.counts[item] - after.counts[item]
		for i := 0; i < lost; i++ {
			removed = append(removed, item)
		}
	}
	return removed
}

// Removed computes the removed items for every stage. The result has the
// same length as stages; the first entry is always empty.
func Removed(stages []Stage) [][]string {
	out := make([][]string, len(stages))
	for i := range stages {
		if i == 0 {
			out[i] = []string{}
			continue
		}
		out[i] = RemovedBetween(stages[i-1].Items, stages[i].Items)
	}
	return out
}
