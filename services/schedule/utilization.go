package schedule

import "crewly/models"

// Utilization aggregates booked vs. available minutes into a percentage and
// a severity band. Zero available minutes yields 0%, never NaN or Infinity.
// Percentage is clamped to 100 for display; the raw ratio is kept so callers
// can still alert on over-booking.
func Utilization(booked, available []models.Interval) models.UtilizationMetric {
	bookedMinutes := 0
	for _, iv := range booked {
		bookedMinutes += Duration(iv)
	}
	availableMinutes := 0
	for _, iv := range available {
		availableMinutes += Duration(iv)
	}

	var ratio float64
	if availableMinutes > 0 {
		ratio = float64(bookedMinutes) / float64(availableMinutes)
	}
	percentage := ratio * 100
	if percentage > 100 {
		percentage = 100
	}

	return models.UtilizationMetric{
		BookedMinutes:    bookedMinutes,
		AvailableMinutes: availableMinutes,
		Percentage:       percentage,
		Ratio:            ratio,
		Band:             bandFor(percentage),
	}
}

// Band thresholds are fixed, not configurable.
func bandFor(percentage float64) models.UtilizationBand {
	switch {
	case percentage >= 100:
		return models.UtilizationFull
	case percentage >= 70:
		return models.UtilizationHigh
	case percentage >= 30:
		return models.UtilizationModerate
	default:
		return models.UtilizationLow
	}
}
