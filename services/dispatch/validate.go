package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crewly/models"
	"crewly/services/schedule"
	"crewly/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Validate runs the conflict detector for a candidate booking against the
// worker's effective availability and existing bookings for that date.
func (s *DefaultDispatchService) Validate(ctx context.Context, cand models.CandidateBooking) (models.ConflictResult, error) {
	day, err := time.Parse(utils.DateLayout, cand.Date)
	if err != nil {
		return models.ConflictResult{}, ErrInvalidDate(cand.Date)
	}

	worker, err := s.Workers.GetByID(ctx, cand.WorkerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.ConflictResult{}, ErrWorkerNotFound
		}
		return models.ConflictResult{}, err
	}

	booked, err := s.Jobs.GetBookedIntervals(ctx, cand.WorkerID, cand.Date)
	if err != nil {
		return models.ConflictResult{}, fmt.Errorf("failed to fetch booked intervals: %w", err)
	}
	bookedIntervals := make([]models.Interval, 0, len(booked))
	for _, b := range booked {
		if cand.ExcludeJobID != "" && b.JobID == cand.ExcludeJobID {
			continue
		}
		bookedIntervals = append(bookedIntervals, b.Interval)
	}

	availability := s.resolvedIntervals(ctx, worker, cand.Date, day)
	result := schedule.Check(cand.Interval, availability, bookedIntervals)

	// Overnight refusal is a policy deferral, not a conflict; log it apart
	// so operators can see how often manual review is triggered.
	if result.Reason == models.ReasonOvernightUnsupported {
		utils.GetLogger().Info("overnight candidate deferred to manual review",
			zap.String("workerID", cand.WorkerID),
			zap.String("date", cand.Date),
			zap.Int("start", cand.Interval.Start),
			zap.Int("end", cand.Interval.End))
	}
	return result, nil
}
