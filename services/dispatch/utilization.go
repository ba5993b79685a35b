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
)

// DayUtilization computes every active worker's booked-vs-available ratio
// for one date.
func (s *DefaultDispatchService) DayUtilization(ctx context.Context, date string) ([]models.WorkerUtilization, error) {
	day, err := time.Parse(utils.DateLayout, date)
	if err != nil {
		return nil, ErrInvalidDate(date)
	}

	workers, err := s.Workers.GetAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workers: %w", err)
	}
	jobs, err := s.Jobs.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch jobs: %w", err)
	}

	jobsByWorker := make(map[string][]models.Interval)
	for _, j := range jobs {
		jobsByWorker[j.WorkerID] = append(jobsByWorker[j.WorkerID], j.Interval())
	}

	result := make([]models.WorkerUtilization, 0, len(workers))
	for i := range workers {
		worker := &workers[i]
		available := s.resolvedIntervals(ctx, worker, date, day)
		result = append(result, models.WorkerUtilization{
			WorkerID:   worker.ID,
			WorkerName: worker.Name,
			From:       date,
			To:         date,
			Metric:     schedule.Utilization(jobsByWorker[worker.ID], available),
		})
	}
	return result, nil
}

// RangeUtilization aggregates one worker's booked and available minutes over
// an inclusive date range, e.g. a week.
func (s *DefaultDispatchService) RangeUtilization(ctx context.Context, workerID, from, to string) (*models.WorkerUtilization, error) {
	fromDay, err := time.Parse(utils.DateLayout, from)
	if err != nil {
		return nil, ErrInvalidDate(from)
	}
	toDay, err := time.Parse(utils.DateLayout, to)
	if err != nil {
		return nil, ErrInvalidDate(to)
	}
	if toDay.Before(fromDay) {
		return nil, ErrInvalidDate(to)
	}

	worker, err := s.Workers.GetByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}

	jobs, err := s.Jobs.GetByWorkerBetween(ctx, workerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch jobs: %w", err)
	}
	booked := make([]models.Interval, 0, len(jobs))
	for _, j := range jobs {
		booked = append(booked, j.Interval())
	}

	var available []models.Interval
	for day := fromDay; !day.After(toDay); day = day.AddDate(0, 0, 1) {
		date := day.Format(utils.DateLayout)
		available = append(available, s.resolvedIntervals(ctx, worker, date, day)...)
	}

	return &models.WorkerUtilization{
		WorkerID:   worker.ID,
		WorkerName: worker.Name,
		From:       from,
		To:         to,
		Metric:     schedule.Utilization(booked, available),
	}, nil
}
