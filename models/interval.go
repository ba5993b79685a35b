package models

// MinutesPerDay is the number of minutes in one calendar day.
const MinutesPerDay = 1440

// Interval represents a continuous block of time within one day.
// Start and End are minutes from local midnight (e.g., 540 for 9:00 AM),
// so interval algebra stays timezone-free.
type Interval struct {
	Start int `bson:"start" json:"start"`
	End   int `bson:"end" json:"end"`
}

// Overnight reports whether the interval crosses midnight, i.e. its end
// time-of-day is numerically at or before its start. Overnight intervals
// must go through the overnight policy in the scheduling engine and are
// never valid for naive duration arithmetic.
func (iv Interval) Overnight() bool {
	return iv.End <= iv.Start
}
