package models

import "time"

// Job statuses.
const (
	JobStatusScheduled  = "scheduled"
	JobStatusInProgress = "in_progress"
	JobStatusCompleted  = "completed"
	JobStatusCancelled  = "cancelled"
)

// Job is a scheduled unit of work assigned to one worker on one date.
type Job struct {
	ID         string    `bson:"id" json:"id"`
	Title      string    `bson:"title" json:"title"`
	WorkerID   string    `bson:"workerId" json:"workerId"`
	ClientID   string    `bson:"clientId,omitempty" json:"clientId,omitempty"`
	ClientName string    `bson:"clientName,omitempty" json:"clientName,omitempty"`
	Date       string    `bson:"date" json:"date"`   // e.g., "2025-02-25"
	Start      int       `bson:"start" json:"start"` // minutes from midnight
	End        int       `bson:"end" json:"end"`
	Status     string    `bson:"status" json:"status"`
	Address    string    `bson:"address,omitempty" json:"address,omitempty"`
	Notes      string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Interval returns the job's time-of-day interval.
func (j *Job) Interval() Interval {
	return Interval{Start: j.Start, End: j.End}
}

// BookedInterval is an already-scheduled job's interval plus identity, for
// one worker and date. This is the authoritative overlap data the conflict
// detector works against.
type BookedInterval struct {
	JobID    string   `json:"jobId"`
	Title    string   `json:"title"`
	Interval Interval `json:"interval"`
}

// CandidateBooking is a proposed interval a caller wants validated before
// committing a job. ExcludeJobID, when set, drops that job from the overlap
// check so rescheduling a job does not conflict with its own current slot.
type CandidateBooking struct {
	WorkerID     string   `json:"workerId"`
	Date         string   `json:"date"`
	Interval     Interval `json:"interval"`
	ExcludeJobID string   `json:"excludeJobId,omitempty"`
}
