package schedule

import "crewly/models"

// Grid window bounds. The window selector never renders a 24-hour grid when
// all activity is 9–5, but pads and clamps so outliers are never clipped.
const (
	defaultStartHour = 7
	defaultEndHour   = 19
	windowFloorHour  = 6
	windowCeilHour   = 22
	windowPadHours   = 1
)

// OptimalWindow derives the minimal grid window that covers every shift and
// every job scheduled for the day, with one hour of padding on each side,
// clamped to [6, 22]. With no shifts and no jobs it falls back to the fixed
// default 07:00–19:00 window.
func OptimalWindow(shifts, jobs []models.Interval) models.TimeWindow {
	if len(shifts) == 0 && len(jobs) == 0 {
		return models.TimeWindow{StartHour: defaultStartHour, EndHour: defaultEndHour}
	}

	earliest := defaultStartHour
	for _, s := range shifts {
		if h := s.Start / 60; h < earliest {
			earliest = h
		}
	}

	latest := defaultEndHour
	for _, s := range shifts {
		if h := ceilHour(s.End); h > latest {
			latest = h
		}
	}
	for _, j := range jobs {
		if h := ceilHour(j.End); h > latest {
			latest = h
		}
	}

	earliest -= windowPadHours
	latest += windowPadHours
	if earliest < windowFloorHour {
		earliest = windowFloorHour
	}
	if latest > windowCeilHour {
		latest = windowCeilHour
	}
	return models.TimeWindow{StartHour: earliest, EndHour: latest}
}

func ceilHour(minutes int) int {
	if minutes%60 == 0 {
		return minutes / 60
	}
	return minutes/60 + 1
}
