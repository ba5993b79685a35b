package dispatch

import (
	"context"
	"errors"
	"time"

	"crewly/models"
	"crewly/services/schedule"
	"crewly/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// Recommendations fetches the externally ranked worker list for a job and
// overlays conflict detection so the dashboard can grey out entries that are
// ranked high but not actually bookable. The ranking itself is opaque and
// its order is preserved.
func (s *DefaultDispatchService) Recommendations(ctx context.Context, jobID string) ([]models.RankedWorker, error) {
	job, err := s.Jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	day, err := time.Parse(utils.DateLayout, job.Date)
	if err != nil {
		return nil, ErrInvalidDate(job.Date)
	}

	list, err := s.Recs.GetByJobID(ctx, jobID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoRecommendations
		}
		return nil, err
	}

	candidate := job.Interval()
	ranked := make([]models.RankedWorker, 0, len(list.Workers))
	for _, rw := range list.Workers {
		worker, err := s.Workers.GetByID(ctx, rw.WorkerID)
		if err != nil {
			// A vanished worker is unselectable, not an error for the whole list.
			rw.Schedulable = false
			rw.Reason = models.ReasonOutsideAvailability
			ranked = append(ranked, rw)
			continue
		}

		booked, err := s.Jobs.GetBookedIntervals(ctx, rw.WorkerID, job.Date)
		if err != nil {
			rw.Schedulable = false
			rw.Reason = models.ReasonOverlapsBooking
			ranked = append(ranked, rw)
			continue
		}
		bookedIntervals := make([]models.Interval, 0, len(booked))
		for _, b := range booked {
			if b.JobID == job.ID {
				continue // reassigning: the job's own slot is not a conflict
			}
			bookedIntervals = append(bookedIntervals, b.Interval)
		}

		availability := s.resolvedIntervals(ctx, worker, job.Date, day)
		result := schedule.Check(candidate, availability, bookedIntervals)
		rw.Schedulable = result.Schedulable
		rw.Reason = result.Reason
		ranked = append(ranked, rw)
	}
	return ranked, nil
}
