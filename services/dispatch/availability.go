package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"crewly/models"
	"crewly/services/schedule"
	"crewly/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func (s *DefaultDispatchService) Availability(ctx context.Context, workerID, date string) (*models.EffectiveAvailability, error) {
	day, err := time.Parse(utils.DateLayout, date)
	if err != nil {
		return nil, ErrInvalidDate(date)
	}

	worker, err := s.Workers.GetByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}

	intervals := s.resolvedIntervals(ctx, worker, date, day)
	return &models.EffectiveAvailability{
		WorkerID:  workerID,
		Date:      date,
		Intervals: intervals,
	}, nil
}

// resolvedIntervals returns the worker's effective availability for the
// date, consulting the memoization cache first. Resolution is deterministic
// for a (worker, date) key, so a cached value is always as good as a fresh
// one until the worker's rules or exceptions change.
func (s *DefaultDispatchService) resolvedIntervals(ctx context.Context, worker *models.Worker, date string, day time.Time) []models.Interval {
	if s.Cache != nil {
		if cached, ok := s.cachedAvailability(ctx, worker.ID, date); ok {
			return cached
		}
	}

	intervals := schedule.ResolveAvailability(worker.WorkingHours, worker.ExceptionFor(date), day)

	if s.Cache != nil {
		s.storeAvailability(ctx, worker.ID, date, intervals)
	}
	return intervals
}

func availabilityKey(workerID, date string) string {
	return utils.AvailabilityCachePrefix + workerID + ":" + date
}

func (s *DefaultDispatchService) cachedAvailability(ctx context.Context, workerID, date string) ([]models.Interval, bool) {
	raw, err := s.Cache.Get(ctx, availabilityKey(workerID, date)).Result()
	if err != nil {
		return nil, false
	}
	var intervals []models.Interval
	if err := json.Unmarshal([]byte(raw), &intervals); err != nil {
		utils.GetLogger().Warn("dropping unreadable availability cache entry",
			zap.String("workerID", workerID), zap.String("date", date), zap.Error(err))
		return nil, false
	}
	return intervals, true
}

func (s *DefaultDispatchService) storeAvailability(ctx context.Context, workerID, date string, intervals []models.Interval) {
	data, err := json.Marshal(intervals)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, availabilityKey(workerID, date), data, utils.AvailabilityCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache availability",
			zap.String("workerID", workerID), zap.String("date", date), zap.Error(err))
	}
}

// InvalidateAvailability drops every cached date for the worker. Called
// after working-hours or exception writes.
func (s *DefaultDispatchService) InvalidateAvailability(ctx context.Context, workerID string) {
	if s.Cache == nil {
		return
	}
	pattern := utils.AvailabilityCachePrefix + workerID + ":*"
	iter := s.Cache.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := s.Cache.Del(ctx, iter.Val()).Err(); err != nil {
			utils.GetLogger().Warn("failed to invalidate availability cache",
				zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		utils.GetLogger().Warn("availability cache scan failed",
			zap.String("workerID", workerID), zap.Error(err))
	}
}
