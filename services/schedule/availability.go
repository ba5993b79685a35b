package schedule

import (
	"time"

	"crewly/models"
)

// ResolveAvailability computes a worker's effective availability for one
// date from their recurring weekly rules and the date's exception, if any.
//
// An exception is a full override, never an addition:
//   - all-day unavailable: the result is empty, whatever the recurring rules say;
//   - replacement interval: the result is exactly that interval;
//   - otherwise the recurring rules whose weekday matches the date apply.
//
// Malformed intervals (end at or before start) are dropped rather than
// propagated; a worker with no usable intervals is simply unavailable that
// day, which is a valid state, not an error. The result is sorted by start
// with no overlaps.
func ResolveAvailability(rules []models.WorkingHoursRule, exc *models.AvailabilityException, date time.Time) []models.Interval {
	if exc != nil {
		if exc.AllDayUnavailable {
			return nil
		}
		if exc.Override != nil {
			if exc.Override.Overnight() {
				return nil
			}
			return []models.Interval{*exc.Override}
		}
	}

	var intervals []models.Interval
	weekday := date.Weekday()
	for _, rule := range rules {
		if rule.Weekday != weekday || rule.Interval.Overnight() {
			continue
		}
		intervals = append(intervals, rule.Interval)
	}
	return Merge(intervals)
}
