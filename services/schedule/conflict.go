package schedule

import "crewly/models"

// Check decides whether a candidate interval is schedulable against a
// worker's effective availability and existing bookings for the same date.
//
// A same-day candidate is schedulable iff some availability interval fully
// contains it and no booked interval overlaps it. Availability failure is
// reported before booking overlap, so user-facing messaging is stable.
//
// A candidate that crosses midnight (end at or before start) is refused
// outright with ReasonOvernightUnsupported: validating it would require
// splitting it across two dates, each with its own availability and
// bookings, and that decision is deferred to the server-side authority.
// The distinct reason lets callers surface "needs manual review" instead
// of a genuine conflict.
func Check(candidate models.Interval, availability, booked []models.Interval) models.ConflictResult {
	if candidate.Overnight() {
		return models.ConflictResult{Schedulable: false, Reason: models.ReasonOvernightUnsupported}
	}

	inside := false
	for _, a := range availability {
		if Contains(a, candidate) {
			inside = true
			break
		}
	}
	if !inside {
		return models.ConflictResult{Schedulable: false, Reason: models.ReasonOutsideAvailability}
	}

	for _, b := range booked {
		if Overlaps(b, candidate) {
			return models.ConflictResult{Schedulable: false, Reason: models.ReasonOverlapsBooking}
		}
	}
	return models.ConflictResult{Schedulable: true, Reason: models.ReasonNone}
}
