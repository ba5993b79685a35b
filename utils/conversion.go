package utils

import (
	"fmt"
	"strconv"
	"strings"

	"crewly/models"
)

// ParseClock converts an "HH:MM" wall-clock string to minutes from midnight.
// Unparsable input returns an error so callers can treat the interval as
// absent instead of crashing the view.
func ParseClock(s string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time %q out of range", s)
	}
	return hour*60 + minute, nil
}

// FormatClock renders minutes from midnight as a 12-hour label, e.g.
// "9:00 AM". Out-of-range values fall back to a display placeholder.
func FormatClock(minutes int) string {
	if minutes < 0 || minutes >= models.MinutesPerDay {
		return "Invalid Time"
	}
	hour := minutes / 60
	minute := minutes % 60
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minute, suffix)
}

// FormatIntervalLabel renders an interval as "9:00 AM - 10:30 AM".
func FormatIntervalLabel(iv models.Interval) string {
	return fmt.Sprintf("%s - %s", FormatClock(iv.Start), FormatClock(iv.End))
}
