package schedule

import (
	"sort"

	"crewly/models"
)

// StackIndexes assigns each interval a vertical stacking slot so overlapping
// blocks on one lane never draw on top of each other. Intervals are placed
// in start order; each one's index is the count of earlier-placed intervals
// it overlaps. The returned slice is aligned with the input.
//
// This is a greedy single pass, not a minimal-height interval coloring: it
// trades optimality for deterministic O(n²) placement, which is fine for the
// handful of same-day jobs a lane ever holds.
func StackIndexes(intervals []models.Interval) []int {
	order := make([]int, len(intervals))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		ia, ib := intervals[order[a]], intervals[order[b]]
		if ia.Start != ib.Start {
			return ia.Start < ib.Start
		}
		if ia.End != ib.End {
			return ia.End < ib.End
		}
		return order[a] < order[b]
	})

	indexes := make([]int, len(intervals))
	for pos, idx := range order {
		count := 0
		for _, placed := range order[:pos] {
			if Overlaps(intervals[idx], intervals[placed]) {
				count++
			}
		}
		indexes[idx] = count
	}
	return indexes
}
