package schedule

import (
	"sort"

	"crewly/models"
)

// Overlaps reports whether two same-day intervals share any time. It is
// symmetric, and a zero-length interval never overlaps anything.
func Overlaps(a, b models.Interval) bool {
	if a.Start >= a.End || b.Start >= b.End {
		return false
	}
	return a.Start < b.End && a.End > b.Start
}

// Contains reports whether inner lies entirely within outer.
func Contains(outer, inner models.Interval) bool {
	return inner.Start >= outer.Start && inner.End <= outer.End
}

// Duration returns the interval's length in minutes. Overnight and malformed
// intervals report zero; they must not reach duration arithmetic.
func Duration(iv models.Interval) int {
	if iv.End <= iv.Start {
		return 0
	}
	return iv.End - iv.Start
}

// Merge sorts the intervals by start and collapses touching or overlapping
// ones into a minimal covering set. The input slice is not modified.
func Merge(intervals []models.Interval) []models.Interval {
	if len(intervals) == 0 {
		return nil
	}
	sorted := make([]models.Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	merged := []models.Interval{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if iv.Start <= last.End {
			if iv.End > last.End {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}
