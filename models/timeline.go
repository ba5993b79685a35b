package models

// ScheduleBlock is one pixel-ready job block on a worker's lane: the booked
// interval plus its grid geometry and vertical stacking slot.
type ScheduleBlock struct {
	JobID      string       `json:"jobId"`
	Title      string       `json:"title"`
	Interval   Interval     `json:"interval"`
	Position   GridPosition `json:"position"`
	StackIndex int          `json:"stackIndex"`
}

// AvailabilityBlock is one availability interval with its grid geometry,
// rendered behind the job blocks on a lane.
type AvailabilityBlock struct {
	Interval Interval     `json:"interval"`
	Position GridPosition `json:"position"`
}

// WorkerLane is one worker's row on the day timeline.
type WorkerLane struct {
	WorkerID     string              `json:"workerId"`
	WorkerName   string              `json:"workerName"`
	Availability []AvailabilityBlock `json:"availability"`
	Blocks       []ScheduleBlock     `json:"blocks"`
	Utilization  UtilizationMetric   `json:"utilization"`
}

// DayTimeline is the full rendering-ready schedule view for one date:
// the optimal window, every worker's lane, and the current-time indicator
// position (nil when now is outside the window or the date is not today).
type DayTimeline struct {
	Date         string       `json:"date"`
	Window       TimeWindow   `json:"window"`
	Lanes        []WorkerLane `json:"lanes"`
	NowIndicator *float64     `json:"nowIndicator,omitempty"`
}
