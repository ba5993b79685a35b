package schedule

import (
	"testing"

	"crewly/models"
)

func TestCheck(t *testing.T) {
	nineToFive := []models.Interval{iv(540, 1020)}

	tests := []struct {
		name         string
		candidate    models.Interval
		availability []models.Interval
		booked       []models.Interval
		want         models.ConflictResult
	}{
		{
			"free slot inside availability",
			iv(600, 660), nineToFive, nil,
			models.ConflictResult{Schedulable: true, Reason: models.ReasonNone},
		},
		{
			"before availability opens",
			iv(480, 540), nineToFive, nil,
			models.ConflictResult{Schedulable: false, Reason: models.ReasonOutsideAvailability},
		},
		{
			"overlapping an existing booking",
			iv(600, 660), nineToFive, []models.Interval{iv(630, 690)},
			models.ConflictResult{Schedulable: false, Reason: models.ReasonOverlapsBooking},
		},
		{
			"no availability at all",
			iv(600, 660), nil, nil,
			models.ConflictResult{Schedulable: false, Reason: models.ReasonOutsideAvailability},
		},
		{
			"straddling two availability blocks",
			iv(700, 800),
			[]models.Interval{iv(540, 720), iv(780, 1020)},
			nil,
			models.ConflictResult{Schedulable: false, Reason: models.ReasonOutsideAvailability},
		},
		{
			"availability failure reported before booking overlap",
			iv(480, 540), nineToFive, []models.Interval{iv(480, 540)},
			models.ConflictResult{Schedulable: false, Reason: models.ReasonOutsideAvailability},
		},
		{
			"adjacent booking is not a conflict",
			iv(600, 660), nineToFive, []models.Interval{iv(660, 720)},
			models.ConflictResult{Schedulable: true, Reason: models.ReasonNone},
		},
		{
			"overnight candidate deferred",
			iv(1380, 120), nineToFive, nil,
			models.ConflictResult{Schedulable: false, Reason: models.ReasonOvernightUnsupported},
		},
		{
			// Degenerate booked rows can arrive from writes outside the
			// adapter path; they occupy no time and must not block anything.
			"zero-length booking is not a conflict",
			iv(540, 660), nineToFive, []models.Interval{iv(600, 600)},
			models.ConflictResult{Schedulable: true, Reason: models.ReasonNone},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Check(tt.candidate, tt.availability, tt.booked)
			if got != tt.want {
				t.Errorf("Check(%v) = %+v, want %+v", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestCheckContainmentMonotonicity(t *testing.T) {
	// Any candidate contained by an availability interval, with no bookings,
	// must be schedulable.
	outer := iv(480, 1080)
	for start := 480; start+30 <= 1080; start += 90 {
		candidate := iv(start, start+30)
		if !Contains(outer, candidate) {
			t.Fatalf("fixture broken: %v not contained by %v", candidate, outer)
		}
		got := Check(candidate, []models.Interval{outer}, nil)
		if !got.Schedulable {
			t.Errorf("Check(%v) not schedulable: %+v", candidate, got)
		}
	}
}

func TestCheckAllDayUnavailable(t *testing.T) {
	// A worker with an all-day exception resolves to empty availability, so
	// every candidate fails as outside availability regardless of recurring
	// hours.
	got := Check(iv(600, 660), ResolveAvailability(
		[]models.WorkingHoursRule{rule(monday.Weekday(), 540, 1020)},
		&models.AvailabilityException{Date: "2025-03-03", AllDayUnavailable: true},
		monday,
	), nil)
	want := models.ConflictResult{Schedulable: false, Reason: models.ReasonOutsideAvailability}
	if got != want {
		t.Errorf("Check = %+v, want %+v", got, want)
	}
}
