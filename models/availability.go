package models

import "time"

// WorkingHoursRule is one block of a worker's recurring weekly availability,
// tagged by weekday. A worker may carry several rules for the same weekday
// (e.g., a split shift).
type WorkingHoursRule struct {
	Weekday  time.Weekday `bson:"weekday" json:"weekday"`
	Interval Interval     `bson:"interval" json:"interval"`
}

// AvailabilityException is a date-specific override of a worker's recurring
// availability. It fully supersedes the recurring rules for that date: either
// the worker is unavailable all day, or the override interval is the only
// availability. It is never additive.
type AvailabilityException struct {
	Date              string    `bson:"date" json:"date"` // e.g., "2025-02-25"
	AllDayUnavailable bool      `bson:"allDayUnavailable" json:"allDayUnavailable"`
	Override          *Interval `bson:"override,omitempty" json:"override,omitempty"`
	Reason            string    `bson:"reason,omitempty" json:"reason,omitempty"`
}

// EffectiveAvailability is the resolved availability of one worker for one
// date: recurring rules merged with the date's exception. It is always
// recomputed from its inputs and never persisted.
type EffectiveAvailability struct {
	WorkerID  string     `json:"workerId"`
	Date      string     `json:"date"`
	Intervals []Interval `json:"intervals"`
}
