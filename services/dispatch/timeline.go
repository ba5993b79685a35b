package dispatch

import (
	"context"
	"fmt"
	"time"

	"crewly/models"
	"crewly/services/schedule"
	"crewly/utils"
)

// Timeline recomputes the full day view from scratch: fetch workers and
// jobs, resolve availability, derive the optimal window, then stack and
// position every block. Nothing here caches results beyond the availability
// memoization; the view is a pure function of the day's data.
func (s *DefaultDispatchService) Timeline(ctx context.Context, date string) (*models.DayTimeline, error) {
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

	jobsByWorker := make(map[string][]models.Job)
	for _, j := range jobs {
		jobsByWorker[j.WorkerID] = append(jobsByWorker[j.WorkerID], j)
	}

	availability := make(map[string][]models.Interval, len(workers))
	var shiftIntervals, jobIntervals []models.Interval
	for i := range workers {
		resolved := s.resolvedIntervals(ctx, &workers[i], date, day)
		availability[workers[i].ID] = resolved
		shiftIntervals = append(shiftIntervals, resolved...)
	}
	for _, j := range jobs {
		jobIntervals = append(jobIntervals, j.Interval())
	}

	window := schedule.OptimalWindow(shiftIntervals, jobIntervals)

	lanes := make([]models.WorkerLane, 0, len(workers))
	for i := range workers {
		worker := &workers[i]
		lanes = append(lanes, s.buildLane(worker, availability[worker.ID], jobsByWorker[worker.ID], window))
	}

	today := s.clock()().Format(utils.DateLayout)
	return &models.DayTimeline{
		Date:         date,
		Window:       window,
		Lanes:        lanes,
		NowIndicator: schedule.NowIndicator(s.clock(), window, date == today),
	}, nil
}

func (s *DefaultDispatchService) buildLane(worker *models.Worker, available []models.Interval, jobs []models.Job, window models.TimeWindow) models.WorkerLane {
	availBlocks := make([]models.AvailabilityBlock, 0, len(available))
	for _, iv := range available {
		availBlocks = append(availBlocks, models.AvailabilityBlock{
			Interval: iv,
			Position: schedule.Place(iv, window),
		})
	}

	intervals := make([]models.Interval, len(jobs))
	for i, j := range jobs {
		intervals[i] = j.Interval()
	}
	stacks := schedule.StackIndexes(intervals)

	blocks := make([]models.ScheduleBlock, 0, len(jobs))
	for i, j := range jobs {
		blocks = append(blocks, models.ScheduleBlock{
			JobID:      j.ID,
			Title:      j.Title,
			Interval:   intervals[i],
			Position:   schedule.Place(intervals[i], window),
			StackIndex: stacks[i],
		})
	}

	return models.WorkerLane{
		WorkerID:     worker.ID,
		WorkerName:   worker.Name,
		Availability: availBlocks,
		Blocks:       blocks,
		Utilization:  schedule.Utilization(intervals, available),
	}
}
