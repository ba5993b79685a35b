package models

// TimeWindow is the visible hour bounds of one timeline view. It is derived
// from the day's shifts and jobs, never persisted.
type TimeWindow struct {
	StartHour int `json:"startHour"`
	EndHour   int `json:"endHour"`
}

// TotalHours returns the window's span in hours.
func (w TimeWindow) TotalHours() int {
	return w.EndHour - w.StartHour
}

// ConflictReason classifies why a candidate booking is not schedulable.
type ConflictReason string

const (
	// ReasonNone means the candidate is schedulable.
	ReasonNone ConflictReason = "none"
	// ReasonOutsideAvailability means no availability interval contains the
	// candidate.
	ReasonOutsideAvailability ConflictReason = "outside_availability"
	// ReasonOverlapsBooking means an existing booking overlaps the candidate.
	ReasonOverlapsBooking ConflictReason = "overlaps_booking"
	// ReasonOvernightUnsupported means the candidate crosses midnight, which
	// this engine deliberately refuses to validate client-side; the booking
	// needs manual review rather than being a genuine conflict.
	ReasonOvernightUnsupported ConflictReason = "overnight_unsupported"
)

// ConflictResult is the outcome of validating a candidate booking.
type ConflictResult struct {
	Schedulable bool           `json:"schedulable"`
	Reason      ConflictReason `json:"reason"`
}

// GridPosition places an interval on the timeline in resolution-independent
// fractions of the window width. Callers multiply by a pixel-per-grid scale
// to rasterize.
type GridPosition struct {
	Left  float64 `json:"left"`
	Width float64 `json:"width"`
}

// UtilizationBand buckets a utilization percentage for display severity.
type UtilizationBand string

const (
	UtilizationLow      UtilizationBand = "low"      // < 30%
	UtilizationModerate UtilizationBand = "moderate" // 30–69%
	UtilizationHigh     UtilizationBand = "high"     // 70–99%
	UtilizationFull     UtilizationBand = "full"     // >= 100%
)

// WorkerUtilization pairs a worker with their utilization for one period
// (a single date or an inclusive date range).
type WorkerUtilization struct {
	WorkerID   string            `json:"workerId"`
	WorkerName string            `json:"workerName"`
	From       string            `json:"from"`
	To         string            `json:"to"`
	Metric     UtilizationMetric `json:"metric"`
}

// UtilizationMetric aggregates booked vs. available minutes for one worker
// over a period. Percentage is clamped to 100 for display; Ratio keeps the
// raw value so over-booking can still be detected.
type UtilizationMetric struct {
	BookedMinutes    int             `json:"bookedMinutes"`
	AvailableMinutes int             `json:"availableMinutes"`
	Percentage       float64         `json:"percentage"`
	Ratio            float64         `json:"-"`
	Band             UtilizationBand `json:"band"`
}
