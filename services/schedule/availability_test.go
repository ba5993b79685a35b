package schedule

import (
	"reflect"
	"testing"
	"time"

	"crewly/models"
)

// 2025-03-03 is a Monday.
var monday = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

func rule(day time.Weekday, start, end int) models.WorkingHoursRule {
	return models.WorkingHoursRule{Weekday: day, Interval: iv(start, end)}
}

func TestResolveAvailabilityRecurring(t *testing.T) {
	rules := []models.WorkingHoursRule{
		rule(time.Monday, 540, 1020),  // 09:00-17:00
		rule(time.Tuesday, 480, 960),  // different weekday, ignored
		rule(time.Monday, 1080, 1140), // evening block
	}

	got := ResolveAvailability(rules, nil, monday)
	want := []models.Interval{iv(540, 1020), iv(1080, 1140)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ResolveAvailability = %v, want %v", got, want)
	}
}

func TestResolveAvailabilityOverlappingRulesMerged(t *testing.T) {
	rules := []models.WorkingHoursRule{
		rule(time.Monday, 540, 780),
		rule(time.Monday, 720, 1020),
	}
	got := ResolveAvailability(rules, nil, monday)
	want := []models.Interval{iv(540, 1020)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("overlapping rules = %v, want merged %v", got, want)
	}
}

func TestResolveAvailabilityExceptionPrecedence(t *testing.T) {
	rules := []models.WorkingHoursRule{rule(time.Monday, 540, 1020)} // 09:00-17:00

	t.Run("all-day unavailable empties the day", func(t *testing.T) {
		exc := &models.AvailabilityException{Date: "2025-03-03", AllDayUnavailable: true}
		if got := ResolveAvailability(rules, exc, monday); len(got) != 0 {
			t.Errorf("expected empty availability, got %v", got)
		}
	})

	t.Run("override replaces, never unions", func(t *testing.T) {
		override := iv(720, 840) // 12:00-14:00
		exc := &models.AvailabilityException{Date: "2025-03-03", Override: &override}
		got := ResolveAvailability(rules, exc, monday)
		want := []models.Interval{override}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("override availability = %v, want exactly %v", got, want)
		}
	})

	t.Run("empty exception falls back to recurring", func(t *testing.T) {
		exc := &models.AvailabilityException{Date: "2025-03-03"}
		got := ResolveAvailability(rules, exc, monday)
		want := []models.Interval{iv(540, 1020)}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("availability = %v, want %v", got, want)
		}
	})
}

func TestResolveAvailabilityDropsMalformedIntervals(t *testing.T) {
	rules := []models.WorkingHoursRule{
		rule(time.Monday, 1020, 540), // inverted, dropped
		rule(time.Monday, 600, 600),  // zero-length, dropped
	}
	if got := ResolveAvailability(rules, nil, monday); len(got) != 0 {
		t.Errorf("malformed rules should yield zero availability, got %v", got)
	}

	bad := iv(1020, 540)
	exc := &models.AvailabilityException{Date: "2025-03-03", Override: &bad}
	if got := ResolveAvailability(rules, exc, monday); len(got) != 0 {
		t.Errorf("malformed override should yield zero availability, got %v", got)
	}
}

func TestResolveAvailabilityNoRules(t *testing.T) {
	// No data is a valid day-off state, not an error.
	if got := ResolveAvailability(nil, nil, monday); len(got) != 0 {
		t.Errorf("expected zero availability, got %v", got)
	}
}
