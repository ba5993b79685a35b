package schedule

import (
	"math"

	"crewly/models"
)

// minVisualMinutes is the floor applied to a block's rendered duration so
// very short jobs remain clickable on the timeline.
const minVisualMinutes = 15

// TimeToPosition maps a wall-clock time to a fraction of the window width,
// clamped to [0, 1] so out-of-window times pin to the grid edges.
func TimeToPosition(hour, minute int, w models.TimeWindow) float64 {
	if w.TotalHours() <= 0 {
		return 0
	}
	pos := (float64(hour-w.StartHour) + float64(minute)/60) / float64(w.TotalHours())
	return clamp01(pos)
}

// DurationToWidth maps a duration in minutes to a fraction of the window
// width, floored at the minimum visual width.
func DurationToWidth(durationMinutes int, w models.TimeWindow) float64 {
	if w.TotalHours() <= 0 {
		return 0
	}
	if durationMinutes < minVisualMinutes {
		durationMinutes = minVisualMinutes
	}
	return clamp01((float64(durationMinutes) / 60) / float64(w.TotalHours()))
}

// PositionToTime is the inverse of TimeToPosition, used for hit-testing
// ("user clicked here, what time is that?"). It rounds to the nearest
// minute, so it round-trips with TimeToPosition within one minute.
func PositionToTime(pos float64, w models.TimeWindow) (hour, minute int) {
	totalMinutes := int(math.Round(clamp01(pos) * float64(w.TotalHours()) * 60))
	hour = w.StartHour + totalMinutes/60
	minute = totalMinutes % 60
	return hour, minute
}

// Place computes the grid geometry for one same-day interval.
func Place(iv models.Interval, w models.TimeWindow) models.GridPosition {
	return models.GridPosition{
		Left:  TimeToPosition(iv.Start/60, iv.Start%60, w),
		Width: DurationToWidth(Duration(iv), w),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
