package models

import "time"

// Worker represents a dispatchable field worker. Recurring working hours and
// date-specific exceptions are embedded on the worker document so a single
// fetch carries everything the availability resolver needs.
type Worker struct {
	ID           string                  `bson:"id" json:"id"`
	Name         string                  `bson:"name" json:"name"`
	Email        string                  `bson:"email,omitempty" json:"email,omitempty"`
	Phone        string                  `bson:"phone,omitempty" json:"phone,omitempty"`
	Skills       []string                `bson:"skills,omitempty" json:"skills,omitempty"`
	WorkingHours []WorkingHoursRule      `bson:"workingHours,omitempty" json:"workingHours,omitempty"`
	Exceptions   []AvailabilityException `bson:"exceptions,omitempty" json:"exceptions,omitempty"`
	Active       bool                    `bson:"active" json:"active"`
	CreatedAt    time.Time               `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time               `bson:"updatedAt" json:"updatedAt"`
}

// ExceptionFor returns the worker's availability exception for the given
// date, or nil when none is recorded.
func (w *Worker) ExceptionFor(date string) *AvailabilityException {
	for i := range w.Exceptions {
		if w.Exceptions[i].Date == date {
			return &w.Exceptions[i]
		}
	}
	return nil
}
