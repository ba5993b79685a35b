package dispatch

import (
	"context"

	jobRepo "crewly/database/repository/job"
	recommendationRepo "crewly/database/repository/recommendation"
	workerRepo "crewly/database/repository/worker"
	"crewly/models"
	"crewly/services/schedule"

	"github.com/go-redis/redis/v8"
)

// Service assembles dashboard schedule views on top of the pure scheduling
// engine. Every UI surface goes through this one service instead of
// reimplementing availability or conflict comparisons.
type Service interface {
	// Timeline runs the full pipeline for one date: optimal window,
	// per-worker lanes with stacked and positioned blocks, utilization, and
	// the current-time indicator.
	Timeline(ctx context.Context, date string) (*models.DayTimeline, error)
	// Availability resolves one worker's effective availability for a date.
	Availability(ctx context.Context, workerID, date string) (*models.EffectiveAvailability, error)
	// InvalidateAvailability drops cached availability for a worker after
	// their rules or exceptions change.
	InvalidateAvailability(ctx context.Context, workerID string)
	// Validate decides whether a candidate booking is schedulable and
	// classifies the failure when it is not.
	Validate(ctx context.Context, cand models.CandidateBooking) (models.ConflictResult, error)
	// DayUtilization computes every active worker's utilization for a date.
	DayUtilization(ctx context.Context, date string) ([]models.WorkerUtilization, error)
	// RangeUtilization computes one worker's utilization over an inclusive
	// date range.
	RangeUtilization(ctx context.Context, workerID, from, to string) (*models.WorkerUtilization, error)
	// Recommendations returns the externally ranked workers for a job with
	// conflict results overlaid to mark each entry selectable or not.
	Recommendations(ctx context.Context, jobID string) ([]models.RankedWorker, error)
}

// DefaultDispatchService is the production implementation.
type DefaultDispatchService struct {
	Workers workerRepo.WorkerRepository
	Jobs    jobRepo.JobRepository
	Recs    recommendationRepo.RecommendationRepository
	// Cache memoizes resolved availability keyed on (worker id, date). A nil
	// client disables memoization; correctness never depends on it.
	Cache *redis.Client
	Clock schedule.Clock
}

func (s *DefaultDispatchService) clock() schedule.Clock {
	if s.Clock != nil {
		return s.Clock
	}
	return schedule.SystemClock
}
